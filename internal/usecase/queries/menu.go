package queries

//go:generate mockgen -source=menu.go -destination=../../../tests/mock/queries/menu.go -package=queriesmock

import (
	"context"

	"little-lemon/internal/infra"
	"little-lemon/internal/pkg/errs"
)

var ErrMenuItemNotFound = errs.New("menu item not found")

type MenuReadStore interface {
	List(ctx context.Context) ([]*MenuItemView, error)
	FindByID(ctx context.Context, id int64) (*MenuItemView, error)
}

type MenuQueries interface {
	List(ctx context.Context) ([]*MenuItemView, error)
	GetByID(ctx context.Context, id int64) (*MenuItemView, error)
}

type menuQueriesImpl struct {
	repo MenuReadStore
}

func NewMenuQueries(repo MenuReadStore) MenuQueries {
	return &menuQueriesImpl{repo: repo}
}

func (q *menuQueriesImpl) List(ctx context.Context) ([]*MenuItemView, error) {
	return q.repo.List(ctx)
}

func (q *menuQueriesImpl) GetByID(ctx context.Context, id int64) (*MenuItemView, error) {
	item, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return item, nil
}
