package repository

import (
	"context"

	"food-preorder/internal/domain/menu"
	"food-preorder/internal/infra"
	"food-preorder/internal/infra/db"
	"food-preorder/internal/infra/repository/converter"
	"food-preorder/internal/pkg/pgconv"
	"food-preorder/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type MenuQueries interface {
	ListActiveCategories(ctx context.Context, db db.DBTX) ([]db.MenuCategories, error)
	ListAvailableMenuItems(ctx context.Context, db db.DBTX) ([]db.MenuItems, error)
	FindMenuItemByID(ctx context.Context, db db.DBTX, id uuid.UUID) (db.MenuItems, error)
	ListMenuItemsByIDs(ctx context.Context, db db.DBTX, ids []uuid.UUID) ([]db.MenuItems, error)
	CreateMenuItem(ctx context.Context, db db.DBTX, arg db.CreateMenuItemParams) (db.MenuItems, error)
	UpdateMenuItem(ctx context.Context, db db.DBTX, arg db.UpdateMenuItemParams) (db.MenuItems, error)
	DeleteMenuItem(ctx context.Context, db db.DBTX, id uuid.UUID) (int64, error)
}

type MenuRepository struct {
	queries MenuQueries
	db      db.DBTX
}

func NewMenuRepository(queries *db.Queries, pool db.DBTX) *MenuRepository {
	return &MenuRepository{
		queries: queries,
		db:      pool,
	}
}

// ListCatalog returns active categories with their available items nested.
func (r *MenuRepository) ListCatalog(ctx context.Context) ([]readmodel.MenuCategoryRM, error) {
	cats, err := r.queries.ListActiveCategories(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu categories", err)
	}

	items, err := r.queries.ListAvailableMenuItems(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu items", err)
	}

	byCategory := make(map[uuid.UUID][]readmodel.MenuItemRM, len(cats))
	for _, row := range items {
		byCategory[row.CategoryID] = append(byCategory[row.CategoryID], *toMenuItemRM(row))
	}

	result := make([]readmodel.MenuCategoryRM, len(cats))
	for i, c := range cats {
		result[i] = readmodel.MenuCategoryRM{
			ID:           c.ID,
			Name:         c.Name,
			Description:  pgconv.StringPtrFromPgtype(c.Description),
			DisplayOrder: c.DisplayOrder,
			Items:        byCategory[c.ID],
		}
	}
	return result, nil
}

func (r *MenuRepository) FindItemByID(ctx context.Context, id uuid.UUID) (*readmodel.MenuItemRM, error) {
	row, err := r.queries.FindMenuItemByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("menu item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find menu item", err)
	}
	return toMenuItemRM(row), nil
}

// FindItemsByIDs is used under the order transaction so price snapshots come
// from the same statement visibility as the insert.
func (r *MenuRepository) FindItemsByIDs(ctx context.Context, tx db.DBTX, ids []uuid.UUID) ([]readmodel.MenuItemRM, error) {
	rows, err := r.queries.ListMenuItemsByIDs(ctx, tx, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu items by IDs", err)
	}

	result := make([]readmodel.MenuItemRM, len(rows))
	for i, row := range rows {
		result[i] = *toMenuItemRM(row)
	}
	return result, nil
}

func (r *MenuRepository) CreateItem(ctx context.Context, item *menu.Item) (*readmodel.MenuItemRM, error) {
	row, err := r.queries.CreateMenuItem(ctx, r.db, converter.MenuItemToCreateParams(item))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create menu item", err)
	}
	return toMenuItemRM(row), nil
}

func (r *MenuRepository) UpdateItem(ctx context.Context, id uuid.UUID, patch menu.ItemPatch) (*readmodel.MenuItemRM, error) {
	row, err := r.queries.UpdateMenuItem(ctx, r.db, converter.MenuItemPatchToUpdateParams(id, patch))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("menu item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update menu item", err)
	}
	return toMenuItemRM(row), nil
}

func (r *MenuRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.DeleteMenuItem(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete menu item", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("menu item not found", nil, infra.KindNotFound)
	}
	return nil
}

func toMenuItemRM(row db.MenuItems) *readmodel.MenuItemRM {
	return &readmodel.MenuItemRM{
		ID:           row.ID,
		CategoryID:   row.CategoryID,
		Name:         row.Name,
		Description:  pgconv.StringPtrFromPgtype(row.Description),
		PriceCents:   row.PriceCents,
		IsVegetarian: row.IsVegetarian,
		IsAvailable:  row.IsAvailable,
		PrepTimeMin:  row.PrepTimeMin,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
