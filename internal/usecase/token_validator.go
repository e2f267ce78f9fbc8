package usecase

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator.go -package=usecasemock

import (
	"context"

	"little-lemon/internal/domain/auth"
	"little-lemon/internal/domain/user"
	"little-lemon/internal/pkg/errs"
	"little-lemon/internal/pkg/jwt"
	"little-lemon/internal/usecase/queries"
)

var ErrUnauthenticated = errs.New("invalid or expired credentials")

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	// ValidateToken resolves the caller with the roles currently stored for them.
	ValidateToken(ctx context.Context, tokenString string) (*auth.Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
	users      queries.UserQueries
}

func NewTokenValidator(jwtService *jwt.Service, users queries.UserQueries) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
		users:      users,
	}
}

func (t *tokenValidatorImpl) ValidateToken(ctx context.Context, tokenString string) (*auth.Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, errs.Mark(err, ErrUnauthenticated)
	}

	u, err := t.users.GetCurrentUser(ctx, claims.UserID)
	if err != nil {
		if errs.Is(err, queries.ErrUserNotFound) || errs.Is(err, queries.ErrUserInactive) {
			return nil, errs.Mark(err, ErrUnauthenticated)
		}
		return nil, err
	}

	return &auth.Principal{
		UserID:   u.ID,
		Username: u.Username,
		Roles:    user.Roles(u.Roles),
	}, nil
}
