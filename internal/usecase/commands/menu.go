package commands

//go:generate mockgen -source=menu.go -destination=../../../tests/mock/commands/menu.go -package=commandsmock

import (
	"context"

	"little-lemon/internal/domain"
	"little-lemon/internal/domain/menu"
	"little-lemon/internal/infra"
	"little-lemon/internal/pkg/errs"
	"little-lemon/internal/usecase/shared"
)

var (
	ErrMenuItemNotFound = errs.New("menu item not found")
	ErrDuplicateTitle   = errs.New("menu item title already exists")
)

const duplicateTitleMessage = "menu with this title already exists."

type CreateMenuItemRequest struct {
	Title     string
	Price     string
	Inventory int
}

// UpdateMenuItemRequest is partial: nil fields keep their current value.
type UpdateMenuItemRequest struct {
	Title     *string
	Price     *string
	Inventory *int
}

type CreateMenuItemResult struct {
	ID int64
}

type MenuCommands interface {
	Create(ctx context.Context, req CreateMenuItemRequest) (*CreateMenuItemResult, error)
	Update(ctx context.Context, id int64, req UpdateMenuItemRequest) error
	Delete(ctx context.Context, id int64) error
}

type menuCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewMenuCommands(uow shared.UnitOfWork) MenuCommands {
	return &menuCommandsImpl{uow: uow}
}

func (c *menuCommandsImpl) Create(ctx context.Context, req CreateMenuItemRequest) (*CreateMenuItemResult, error) {
	item, err := menu.NewMenuItem(req.Title, req.Price, req.Inventory)
	if err != nil {
		return nil, err
	}

	var id int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, derr := tx.MenuItems().Create(ctx, tx.DB(), item)
		if derr != nil {
			return translateMenuErr(derr)
		}
		id = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateMenuItemResult{ID: id}, nil
}

func (c *menuCommandsImpl) Update(ctx context.Context, id int64, req UpdateMenuItemRequest) error {
	p := menu.Patch{Title: req.Title, Price: req.Price, Inventory: req.Inventory}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().MenuItemByID(ctx, id)
		if derr != nil {
			return translateMenuErr(derr)
		}
		if p.IsEmpty() {
			return menu.ErrEmptyPatch
		}

		price, derr := menu.ParseMoney(snap.Price)
		if derr != nil {
			return errs.Wrap(derr, "stored menu price is unreadable")
		}

		item := menu.Reconstruct(snap.ID, snap.Title, price, snap.Inventory)
		if derr = item.Apply(p); derr != nil {
			return derr
		}

		if derr = tx.MenuItems().Update(ctx, tx.DB(), item); derr != nil {
			return translateMenuErr(derr)
		}
		return nil
	})
}

func (c *menuCommandsImpl) Delete(ctx context.Context, id int64) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.MenuItems().Delete(ctx, tx.DB(), id); derr != nil {
			return translateMenuErr(derr)
		}
		return nil
	})
}

// translateMenuErr maps repository kinds to errors the handler understands.
// A duplicate title is reported as a field error.
func translateMenuErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrMenuItemNotFound)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(domain.NewFieldError("title", duplicateTitleMessage), ErrDuplicateTitle)
	default:
		return err
	}
}
