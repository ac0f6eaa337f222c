package menu

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("item name cannot be empty")
	ErrNegativePrice = errors.New("item price cannot be negative")
	ErrInvalidPrep   = errors.New("preparation time cannot be negative")
	ErrEmptyPatch    = errors.New("no fields to update")
)

type Category struct {
	id           uuid.UUID
	name         string
	description  *string
	displayOrder int32
	isActive     bool
}

func ReconstructCategory(id uuid.UUID, name string, description *string, displayOrder int32, isActive bool) *Category {
	return &Category{
		id:           id,
		name:         name,
		description:  description,
		displayOrder: displayOrder,
		isActive:     isActive,
	}
}

func (c *Category) ID() uuid.UUID        { return c.id }
func (c *Category) Name() string         { return c.name }
func (c *Category) Description() *string { return c.description }
func (c *Category) DisplayOrder() int32  { return c.displayOrder }
func (c *Category) IsActive() bool       { return c.isActive }

type Item struct {
	id           uuid.UUID
	categoryID   uuid.UUID
	name         string
	description  *string
	priceCents   int64
	isVegetarian bool
	isAvailable  bool
	prepTimeMin  int32
	createdAt    time.Time
	updatedAt    time.Time
}

func NewItem(categoryID uuid.UUID, name string, description *string, priceCents int64, isVegetarian bool, prepTimeMin int32) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	if prepTimeMin < 0 {
		return nil, ErrInvalidPrep
	}
	return &Item{
		id:           uuid.New(),
		categoryID:   categoryID,
		name:         name,
		description:  description,
		priceCents:   priceCents,
		isVegetarian: isVegetarian,
		isAvailable:  true,
		prepTimeMin:  prepTimeMin,
	}, nil
}

func ReconstructItem(
	id, categoryID uuid.UUID,
	name string,
	description *string,
	priceCents int64,
	isVegetarian, isAvailable bool,
	prepTimeMin int32,
	createdAt, updatedAt time.Time,
) *Item {
	return &Item{
		id:           id,
		categoryID:   categoryID,
		name:         name,
		description:  description,
		priceCents:   priceCents,
		isVegetarian: isVegetarian,
		isAvailable:  isAvailable,
		prepTimeMin:  prepTimeMin,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (i *Item) ID() uuid.UUID         { return i.id }
func (i *Item) CategoryID() uuid.UUID { return i.categoryID }
func (i *Item) Name() string          { return i.name }
func (i *Item) Description() *string  { return i.description }
func (i *Item) PriceCents() int64     { return i.priceCents }
func (i *Item) IsVegetarian() bool    { return i.isVegetarian }
func (i *Item) IsAvailable() bool     { return i.isAvailable }
func (i *Item) PrepTimeMin() int32    { return i.prepTimeMin }
func (i *Item) CreatedAt() time.Time  { return i.createdAt }
func (i *Item) UpdatedAt() time.Time  { return i.updatedAt }
