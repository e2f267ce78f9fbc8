package request

import "little-lemon/internal/usecase/commands"

type CreateMenuItemRequest struct {
	Title     string  `json:"title" binding:"required"`
	Price     Decimal `json:"price" binding:"required"`
	Inventory *int    `json:"inventory" binding:"required"`
}

func (r *CreateMenuItemRequest) ToCommand() commands.CreateMenuItemRequest {
	return commands.CreateMenuItemRequest{
		Title:     r.Title,
		Price:     r.Price.String(),
		Inventory: *r.Inventory,
	}
}

// UpdateMenuItemRequest serves PUT and PATCH alike; absent fields stay unchanged.
type UpdateMenuItemRequest struct {
	Title     *string  `json:"title"`
	Price     *Decimal `json:"price"`
	Inventory *int     `json:"inventory"`
}

func (r *UpdateMenuItemRequest) IsEmpty() bool {
	return r.Title == nil && r.Price == nil && r.Inventory == nil
}

func (r *UpdateMenuItemRequest) ToCommand() commands.UpdateMenuItemRequest {
	cmd := commands.UpdateMenuItemRequest{
		Title:     r.Title,
		Inventory: r.Inventory,
	}
	if r.Price != nil {
		p := r.Price.String()
		cmd.Price = &p
	}
	return cmd
}
