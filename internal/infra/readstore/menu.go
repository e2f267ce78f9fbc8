package readstore

import (
	"context"
	"log/slog"

	"little-lemon/internal/infra"
	"little-lemon/internal/infra/db"
	"little-lemon/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

const (
	listMenuItemsSQL = `
SELECT id, title, price::text, inventory
FROM menu_items
ORDER BY title`

	findMenuItemByIDSQL = `
SELECT id, title, price::text, inventory
FROM menu_items
WHERE id = $1`
)

type MenuReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewMenuReadStore(dbtx db.DBTX, logger *slog.Logger) *MenuReadStore {
	return &MenuReadStore{db: dbtx, logger: logger}
}

func (r *MenuReadStore) List(ctx context.Context) ([]*queries.MenuItemView, error) {
	rows, err := r.db.Query(ctx, listMenuItemsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list menu items", err)
	}

	items, err := pgx.CollectRows(rows, rowTo(scanMenuItemView))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan menu items", err)
	}
	return items, nil
}

func (r *MenuReadStore) FindByID(ctx context.Context, id int64) (*queries.MenuItemView, error) {
	v, err := scanMenuItemView(r.db.QueryRow(ctx, findMenuItemByIDSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to find menu item by ID", err)
	}
	return v, nil
}

func scanMenuItemView(row rowScanner) (*queries.MenuItemView, error) {
	var v queries.MenuItemView
	if err := row.Scan(&v.ID, &v.Title, &v.Price, &v.Inventory); err != nil {
		return nil, err
	}
	return &v, nil
}
