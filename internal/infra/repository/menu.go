package repository

import (
	"context"
	"log/slog"

	"little-lemon/internal/domain/menu"
	"little-lemon/internal/infra"
	"little-lemon/internal/infra/db"
	"little-lemon/internal/pkg/pgconv"
)

const (
	insertMenuItemSQL = `
INSERT INTO menu_items (title, price, inventory)
VALUES ($1, $2, $3)
RETURNING id`

	updateMenuItemSQL = `
UPDATE menu_items
SET title = $2, price = $3, inventory = $4
WHERE id = $1`

	deleteMenuItemSQL = `DELETE FROM menu_items WHERE id = $1`
)

type MenuItemRepository struct {
	logger *slog.Logger
}

func NewMenuItemRepository(logger *slog.Logger) *MenuItemRepository {
	return &MenuItemRepository{logger: logger}
}

func (r *MenuItemRepository) Create(ctx context.Context, tx db.DBTX, item *menu.MenuItem) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, insertMenuItemSQL,
		item.Title(),
		pgconv.CentsToNumeric(item.Price().Cents()),
		item.Inventory(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to create menu item", err)
	}
	return id, nil
}

func (r *MenuItemRepository) Update(ctx context.Context, tx db.DBTX, item *menu.MenuItem) error {
	tag, err := tx.Exec(ctx, updateMenuItemSQL,
		item.ID(),
		item.Title(),
		pgconv.CentsToNumeric(item.Price().Cents()),
		item.Inventory(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to update menu item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "menu item not found", nil)
	}
	return nil
}

func (r *MenuItemRepository) Delete(ctx context.Context, tx db.DBTX, id int64) error {
	tag, err := tx.Exec(ctx, deleteMenuItemSQL, id)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete menu item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "menu item not found", nil)
	}
	return nil
}
