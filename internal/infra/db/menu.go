package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const menuItemColumns = `id, category_id, name, description, price_cents, is_vegetarian, is_available, prep_time_min, created_at, updated_at`

func scanMenuItem(row interface{ Scan(dest ...any) error }) (MenuItems, error) {
	var m MenuItems
	err := row.Scan(
		&m.ID,
		&m.CategoryID,
		&m.Name,
		&m.Description,
		&m.PriceCents,
		&m.IsVegetarian,
		&m.IsAvailable,
		&m.PrepTimeMin,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func (q *Queries) ListActiveCategories(ctx context.Context, db DBTX) ([]MenuCategories, error) {
	rows, err := db.Query(ctx, `
		SELECT id, name, description, display_order, is_active
		FROM menu_categories
		WHERE is_active = true
		ORDER BY display_order, name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []MenuCategories
	for rows.Next() {
		var c MenuCategories
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.DisplayOrder, &c.IsActive); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func (q *Queries) ListAvailableMenuItems(ctx context.Context, db DBTX) ([]MenuItems, error) {
	rows, err := db.Query(ctx, `
		SELECT `+menuItemColumns+`
		FROM menu_items
		WHERE is_available = true
		ORDER BY name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []MenuItems
	for rows.Next() {
		m, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (q *Queries) FindMenuItemByID(ctx context.Context, db DBTX, id uuid.UUID) (MenuItems, error) {
	row := db.QueryRow(ctx, `
		SELECT `+menuItemColumns+`
		FROM menu_items
		WHERE id = $1`,
		id,
	)
	return scanMenuItem(row)
}

func (q *Queries) ListMenuItemsByIDs(ctx context.Context, db DBTX, ids []uuid.UUID) ([]MenuItems, error) {
	rows, err := db.Query(ctx, `
		SELECT `+menuItemColumns+`
		FROM menu_items
		WHERE id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []MenuItems
	for rows.Next() {
		m, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

type CreateMenuItemParams struct {
	ID           uuid.UUID
	CategoryID   uuid.UUID
	Name         string
	Description  pgtype.Text
	PriceCents   int64
	IsVegetarian bool
	IsAvailable  bool
	PrepTimeMin  int32
}

func (q *Queries) CreateMenuItem(ctx context.Context, db DBTX, arg CreateMenuItemParams) (MenuItems, error) {
	row := db.QueryRow(ctx, `
		INSERT INTO menu_items (id, category_id, name, description, price_cents, is_vegetarian, is_available, prep_time_min)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+menuItemColumns,
		arg.ID, arg.CategoryID, arg.Name, arg.Description, arg.PriceCents, arg.IsVegetarian, arg.IsAvailable, arg.PrepTimeMin,
	)
	return scanMenuItem(row)
}

type UpdateMenuItemParams struct {
	ID           uuid.UUID
	CategoryID   pgtype.UUID
	Name         pgtype.Text
	Description  pgtype.Text
	PriceCents   pgtype.Int8
	IsVegetarian pgtype.Bool
	IsAvailable  pgtype.Bool
	PrepTimeMin  pgtype.Int4
}

func (q *Queries) UpdateMenuItem(ctx context.Context, db DBTX, arg UpdateMenuItemParams) (MenuItems, error) {
	row := db.QueryRow(ctx, `
		UPDATE menu_items
		SET category_id   = COALESCE($2, category_id),
		    name          = COALESCE($3, name),
		    description   = COALESCE($4, description),
		    price_cents   = COALESCE($5, price_cents),
		    is_vegetarian = COALESCE($6, is_vegetarian),
		    is_available  = COALESCE($7, is_available),
		    prep_time_min = COALESCE($8, prep_time_min),
		    updated_at    = now()
		WHERE id = $1
		RETURNING `+menuItemColumns,
		arg.ID, arg.CategoryID, arg.Name, arg.Description, arg.PriceCents, arg.IsVegetarian, arg.IsAvailable, arg.PrepTimeMin,
	)
	return scanMenuItem(row)
}

func (q *Queries) DeleteMenuItem(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
