package repository

import (
	"context"
	"log/slog"

	"little-lemon/internal/domain/user"
	"little-lemon/internal/infra"
	"little-lemon/internal/infra/db"
)

const (
	insertUserSQL = `
INSERT INTO users (id, username, email, password_hash, roles, is_active)
VALUES ($1, $2, $3, $4, $5, $6)`

	addUserRoleSQL = `
UPDATE users
SET roles = array_append(roles, $2::text), updated_at = now()
WHERE username = $1 AND NOT ($2::text = ANY(roles))`
)

type UserRepository struct {
	logger *slog.Logger
}

func NewUserRepository(logger *slog.Logger) *UserRepository {
	return &UserRepository{logger: logger}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) error {
	var email *string
	if e := u.Email(); e != nil {
		v := e.Value()
		email = &v
	}

	roles := []string(u.Roles())
	if roles == nil {
		roles = []string{}
	}

	_, err := tx.Exec(ctx, insertUserSQL,
		u.ID(),
		u.Username().Value(),
		email,
		u.PasswordHash(),
		roles,
		u.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to create user", err)
	}
	return nil
}

// AddRole is a no-op when the user already holds role.
func (r *UserRepository) AddRole(ctx context.Context, tx db.DBTX, username, role string) error {
	_, err := tx.Exec(ctx, addUserRoleSQL, username, role)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to add user role", err)
	}
	return nil
}
