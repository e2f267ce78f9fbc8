package queries

import (
	"time"

	"little-lemon/internal/domain/booking"

	"github.com/google/uuid"
)

// MenuItemView is a menu row as served to clients. Price keeps its two decimals.
type MenuItemView struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Price     string `json:"price"`
	Inventory int    `json:"inventory"`
}

type BookingView struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	NoOfGuests int    `json:"no_of_guests"`
	Date       string `json:"date"`
	Time       string `json:"time"`
}

// BookedSlot is the minimal projection the availability grid needs.
type BookedSlot struct {
	Date booking.Date
	Time booking.TimeOfDay
}

// BookingFilters are intersected; nil means no constraint.
type BookingFilters struct {
	NamePrefix *string
	Date       *time.Time
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     *string   `json:"email,omitempty"`
	Roles     []string  `json:"roles"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
