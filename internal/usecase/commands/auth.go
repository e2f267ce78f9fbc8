package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

import (
	"context"
	"log/slog"

	"little-lemon/internal/domain"
	"little-lemon/internal/domain/auth"
	"little-lemon/internal/domain/user"
	"little-lemon/internal/infra"
	"little-lemon/internal/pkg/errs"
	"little-lemon/internal/pkg/jwt"
	"little-lemon/internal/pkg/password"
	"little-lemon/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrUserInactive       = errs.New("user inactive")
	ErrDuplicateUsername  = errs.New("username already taken")
	ErrTokenGeneration    = errs.New("token generation failed")
)

const duplicateUsernameMessage = "A user with that username already exists."

type RegisterRequest struct {
	Username string
	Password string
	Email    string
}

type RegisterResult struct {
	UserID uuid.UUID
}

type LoginRequest struct {
	Username string
	Password string
}

type LoginResult struct {
	UserID uuid.UUID
	Token  string
}

type AuthCommands interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	// EnsureManager creates the account if needed and grants it the Manager role.
	EnsureManager(ctx context.Context, req RegisterRequest) error
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	logger     *slog.Logger
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	u, err := newUser(req, nil)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, tx.DB(), u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(domain.NewFieldError("username", duplicateUsernameMessage), ErrDuplicateUsername)
		}
		return nil, err
	}
	return &RegisterResult{UserID: u.ID()}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(req.Username, req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	snap, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	token, err := a.jwtService.GenerateToken(snap.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{UserID: snap.ID, Token: token}, nil
}

func (a *authCommandsImpl) EnsureManager(ctx context.Context, req RegisterRequest) error {
	u, err := newUser(req, user.Roles{user.RoleManager})
	if err != nil {
		return err
	}

	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, derr := tx.Reads().UserByUsername(ctx, u.Username().Value())
		switch {
		case derr == nil:
			a.logger.Info("manager account already exists", slog.String("username", u.Username().Value()))
			return tx.Users().AddRole(ctx, tx.DB(), u.Username().Value(), user.RoleManager)
		case infra.IsKind(derr, infra.KindNotFound):
			a.logger.Info("creating manager account", slog.String("username", u.Username().Value()))
			return tx.Users().Create(ctx, tx.DB(), u)
		default:
			return derr
		}
	})
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*shared.UserSnapshot, error) {
	snap, err := a.uow.CommandReads().UserByUsername(ctx, credentials.Username())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same answer as a wrong password to prevent user enumeration
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.ComparePassword(snap.PasswordHash, credentials.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !snap.IsActive {
		return nil, ErrUserInactive
	}

	return snap, nil
}

func newUser(req RegisterRequest, roles user.Roles) (*user.User, error) {
	v := domain.NewValidationError()

	username, err := user.NewUsername(req.Username)
	if err != nil {
		v.Add("username", "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters.")
	}
	email, err := user.NewOptionalEmail(req.Email)
	if err != nil {
		v.Add("email", "Enter a valid email address.")
	}
	pw, err := user.NewPassword(req.Password)
	if err != nil {
		v.Add("password", "This password is too short. It must contain at least 8 characters.")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		if errs.Is(err, password.ErrPasswordTooLong) {
			return nil, domain.NewFieldError("password", "Ensure this field has no more than 72 characters.")
		}
		return nil, errs.Wrap(err, "failed to hash password")
	}

	return user.NewUser(username, email, hash, roles), nil
}
