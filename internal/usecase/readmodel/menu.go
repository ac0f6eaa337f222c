package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type MenuItemRM struct {
	ID           uuid.UUID `json:"id"`
	CategoryID   uuid.UUID `json:"category_id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	PriceCents   int64     `json:"price_cents"`
	IsVegetarian bool      `json:"is_vegetarian"`
	IsAvailable  bool      `json:"is_available"`
	PrepTimeMin  int32     `json:"prep_time_min"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type MenuCategoryRM struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Description  *string      `json:"description,omitempty"`
	DisplayOrder int32        `json:"display_order"`
	Items        []MenuItemRM `json:"items"`
}
