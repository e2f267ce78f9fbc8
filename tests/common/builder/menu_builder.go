//go:build unit || e2e

package builder

import (
	"little-lemon/internal/domain/menu"
	reqdto "little-lemon/internal/handler/dto/request"
	"little-lemon/internal/usecase/queries"
	"little-lemon/internal/usecase/shared"
)

type MenuItemBuilder struct {
	ID        int64
	Title     string
	Price     string
	Inventory int
}

func NewMenuItemBuilder() *MenuItemBuilder {
	return &MenuItemBuilder{
		ID:        1,
		Title:     "Greek Salad",
		Price:     "12.50",
		Inventory: 10,
	}
}

func (b *MenuItemBuilder) With(mutate func(*MenuItemBuilder)) *MenuItemBuilder {
	mutate(b)
	return b
}

func (b *MenuItemBuilder) WithTitle(title string) *MenuItemBuilder {
	b.Title = title
	return b
}

func (b *MenuItemBuilder) WithPrice(price string) *MenuItemBuilder {
	b.Price = price
	return b
}

func (b *MenuItemBuilder) WithInventory(inventory int) *MenuItemBuilder {
	b.Inventory = inventory
	return b
}

func (b *MenuItemBuilder) BuildDomain() (*menu.MenuItem, error) {
	return menu.NewMenuItem(b.Title, b.Price, b.Inventory)
}

func (b *MenuItemBuilder) BuildDTO() reqdto.CreateMenuItemRequest {
	inv := b.Inventory
	return reqdto.CreateMenuItemRequest{
		Title:     b.Title,
		Price:     reqdto.Decimal(b.Price),
		Inventory: &inv,
	}
}

func (b *MenuItemBuilder) BuildSnapshot() *shared.MenuItemSnapshot {
	return &shared.MenuItemSnapshot{
		ID:        b.ID,
		Title:     b.Title,
		Price:     b.Price,
		Inventory: b.Inventory,
	}
}

func (b *MenuItemBuilder) BuildReadModel() *queries.MenuItemView {
	return &queries.MenuItemView{
		ID:        b.ID,
		Title:     b.Title,
		Price:     b.Price,
		Inventory: b.Inventory,
	}
}
