package request

import (
	"food-preorder/internal/domain/menu"

	"github.com/google/uuid"
)

type CreateMenuItemRequest struct {
	CategoryID   uuid.UUID `json:"category_id" binding:"required"`
	Name         string    `json:"name" binding:"required"`
	Description  *string   `json:"description,omitempty"`
	PriceCents   int64     `json:"price_cents" binding:"required,min=0"`
	IsVegetarian bool      `json:"is_vegetarian"`
	PrepTimeMin  int32     `json:"prep_time_min" binding:"min=0"`
}

func (r CreateMenuItemRequest) ToDomain() (*menu.Item, error) {
	return menu.NewItem(r.CategoryID, r.Name, r.Description, r.PriceCents, r.IsVegetarian, r.PrepTimeMin)
}

type UpdateMenuItemRequest struct {
	CategoryID   *uuid.UUID `json:"category_id,omitempty"`
	Name         *string    `json:"name,omitempty"`
	Description  *string    `json:"description,omitempty"`
	PriceCents   *int64     `json:"price_cents,omitempty"`
	IsVegetarian *bool      `json:"is_vegetarian,omitempty"`
	IsAvailable  *bool      `json:"is_available,omitempty"`
	PrepTimeMin  *int32     `json:"prep_time_min,omitempty"`
}

func (r UpdateMenuItemRequest) ToPatch() menu.ItemPatch {
	return menu.ItemPatch{
		CategoryID:   r.CategoryID,
		Name:         r.Name,
		Description:  r.Description,
		PriceCents:   r.PriceCents,
		IsVegetarian: r.IsVegetarian,
		IsAvailable:  r.IsAvailable,
		PrepTimeMin:  r.PrepTimeMin,
	}
}
