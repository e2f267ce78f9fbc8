package auth

import (
	"errors"
	"strings"

	"little-lemon/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("unable to log in with provided credentials")
)

// Credentials are checked only for presence; a wrong shape is just a failed login.
type Credentials struct {
	username string
	password string
}

func NewCredentials(username, password string) (Credentials, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return Credentials{}, ErrInvalidCredentials
	}
	return Credentials{username: username, password: password}, nil
}

func (c Credentials) Username() string { return c.username }
func (c Credentials) Password() string { return c.password }

// Principal is the authenticated caller for a single request.
type Principal struct {
	UserID   uuid.UUID
	Username string
	Roles    user.Roles
}

func (p Principal) IsManager() bool {
	return p.Roles.IsManager()
}
