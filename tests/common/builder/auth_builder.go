//go:build unit || e2e

package builder

import (
	reqdto "little-lemon/internal/handler/dto/request"
)

type AuthBuilder struct {
	Username string
	Password string
	Email    string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Username: "guest",
		Password: "password123",
		Email:    "guest@example.com",
	}
}

func (a *AuthBuilder) WithUsername(username string) *AuthBuilder {
	a.Username = username
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Username: a.Username,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Username: a.Username,
		Password: a.Password,
		Email:    a.Email,
	}
}
