package readstore

import (
	"context"
	"log/slog"

	"little-lemon/internal/infra"
	"little-lemon/internal/infra/db"
	"little-lemon/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	userColumns = `id, username, email, roles, is_active, created_at`

	findUserByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

	findUserByUsernameSQL = `
SELECT ` + userColumns + `, password_hash
FROM users
WHERE username = $1`
)

type UserReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewUserReadStore(dbtx db.DBTX, logger *slog.Logger) *UserReadStore {
	return &UserReadStore{db: dbtx, logger: logger}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var v queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, findUserByIDSQL, id).
		Scan(&v.ID, &v.Username, &v.Email, &v.Roles, &v.IsActive, &v.CreatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to find user by ID", err)
	}
	return &v, nil
}

// FindByUsername also returns the password hash for credential checks.
func (r *UserReadStore) FindByUsername(ctx context.Context, username string) (*queries.AuthorizedUserView, string, error) {
	var (
		v    queries.AuthorizedUserView
		hash string
	)
	err := r.db.QueryRow(ctx, findUserByUsernameSQL, username).
		Scan(&v.ID, &v.Username, &v.Email, &v.Roles, &v.IsActive, &v.CreatedAt, &hash)
	if err != nil {
		return nil, "", infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to find user by username", err)
	}
	return &v, hash, nil
}
