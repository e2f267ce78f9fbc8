package response

import (
	"little-lemon/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type MenuItemResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Price     string `json:"price"`
	Inventory int    `json:"inventory"`
}

type MenuItemEnvelope struct {
	Detail   string            `json:"detail"`
	MenuItem *MenuItemResponse `json:"menu_item"`
}

func FromMenuItemView(v *queries.MenuItemView) *MenuItemResponse {
	var res MenuItemResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromMenuItemList(items []*queries.MenuItemView) []*MenuItemResponse {
	res := make([]*MenuItemResponse, 0, len(items))
	_ = copier.Copy(&res, &items)
	return res
}
