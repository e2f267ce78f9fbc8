//go:build unit || e2e

package builder

import (
	"time"

	"little-lemon/internal/domain/user"
	"little-lemon/internal/usecase/queries"
	"little-lemon/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Username     string
	Email        string
	PasswordHash string
	Roles        []string
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Username:     "guest",
		Email:        "guest@example.com",
		PasswordHash: "hashed_password",
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	username, err := user.NewUsername(u.Username)
	if err != nil {
		return nil, err
	}

	email, err := user.NewOptionalEmail(u.Email)
	if err != nil {
		return nil, err
	}

	return user.NewUser(username, email, u.PasswordHash, user.Roles(u.Roles)), nil
}

func (u *UserBuilder) BuildSnapshot() *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:           uuid.New(),
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Roles:        u.Roles,
		IsActive:     u.IsActive,
	}
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	var email *string
	if u.Email != "" {
		e := u.Email
		email = &e
	}
	return &queries.AuthorizedUserView{
		ID:        uuid.New(),
		Username:  u.Username,
		Email:     email,
		Roles:     u.Roles,
		IsActive:  u.IsActive,
		CreatedAt: time.Now(),
	}
}

// Fluent builder methods
func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) AsManager() *UserBuilder {
	u.Roles = append(u.Roles, user.RoleManager)
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
