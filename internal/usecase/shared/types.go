package shared

import "github.com/google/uuid"

// Write-side snapshots keep commands independent from query views.
type MenuItemSnapshot struct {
	ID        int64
	Title     string
	Price     string
	Inventory int
}

type UserSnapshot struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Roles        []string
	IsActive     bool
}
