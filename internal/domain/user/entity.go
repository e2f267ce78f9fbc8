package user

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can obtain a token. Roles decide what it may do.
type User struct {
	id           uuid.UUID
	username     Username
	email        *Email
	passwordHash string
	roles        Roles
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username Username, email *Email, passwordHash string, roles Roles) *User {
	return &User{
		id:           uuid.New(),
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		roles:        roles,
		isActive:     true,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Username() Username   { return u.username }
func (u *User) Email() *Email        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Roles() Roles         { return u.roles }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
