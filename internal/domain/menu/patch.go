package menu

import (
	"strings"

	"github.com/google/uuid"
)

// ItemPatch carries a partial update. Nil fields are untouched.
type ItemPatch struct {
	CategoryID   *uuid.UUID
	Name         *string
	Description  *string
	PriceCents   *int64
	IsVegetarian *bool
	IsAvailable  *bool
	PrepTimeMin  *int32
}

func (p ItemPatch) IsEmpty() bool {
	return p.CategoryID == nil &&
		p.Name == nil &&
		p.Description == nil &&
		p.PriceCents == nil &&
		p.IsVegetarian == nil &&
		p.IsAvailable == nil &&
		p.PrepTimeMin == nil
}

func (p ItemPatch) Validate() error {
	if p.IsEmpty() {
		return ErrEmptyPatch
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return ErrEmptyName
	}
	if p.PriceCents != nil && *p.PriceCents < 0 {
		return ErrNegativePrice
	}
	if p.PrepTimeMin != nil && *p.PrepTimeMin < 0 {
		return ErrInvalidPrep
	}
	return nil
}
