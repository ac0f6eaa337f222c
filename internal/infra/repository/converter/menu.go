package converter

import (
	"food-preorder/internal/domain/menu"
	"food-preorder/internal/infra/db"
	"food-preorder/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func MenuItemToCreateParams(m *menu.Item) db.CreateMenuItemParams {
	return db.CreateMenuItemParams{
		ID:           m.ID(),
		CategoryID:   m.CategoryID(),
		Name:         m.Name(),
		Description:  pgconv.StringPtrToPgtype(m.Description()),
		PriceCents:   m.PriceCents(),
		IsVegetarian: m.IsVegetarian(),
		IsAvailable:  m.IsAvailable(),
		PrepTimeMin:  m.PrepTimeMin(),
	}
}

func MenuItemPatchToUpdateParams(id uuid.UUID, patch menu.ItemPatch) db.UpdateMenuItemParams {
	params := db.UpdateMenuItemParams{ID: id}

	if patch.CategoryID != nil {
		params.CategoryID = pgtype.UUID{Bytes: *patch.CategoryID, Valid: true}
	}
	if patch.Name != nil {
		params.Name = pgtype.Text{String: *patch.Name, Valid: true}
	}
	if patch.Description != nil {
		params.Description = pgtype.Text{String: *patch.Description, Valid: true}
	}
	if patch.PriceCents != nil {
		params.PriceCents = pgtype.Int8{Int64: *patch.PriceCents, Valid: true}
	}
	if patch.IsVegetarian != nil {
		params.IsVegetarian = pgtype.Bool{Bool: *patch.IsVegetarian, Valid: true}
	}
	if patch.IsAvailable != nil {
		params.IsAvailable = pgtype.Bool{Bool: *patch.IsAvailable, Valid: true}
	}
	if patch.PrepTimeMin != nil {
		params.PrepTimeMin = pgtype.Int4{Int32: *patch.PrepTimeMin, Valid: true}
	}

	return params
}
