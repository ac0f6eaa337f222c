package repository

import (
	"context"

	"food-preorder/internal/domain/slot"
	"food-preorder/internal/infra"
	"food-preorder/internal/infra/db"
	"food-preorder/internal/infra/repository/converter"
	"food-preorder/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SlotQueries interface {
	ListTimeSlots(ctx context.Context, db db.DBTX) ([]db.TimeSlots, error)
	FindTimeSlotByID(ctx context.Context, db db.DBTX, id uuid.UUID) (db.TimeSlots, error)
	GetTimeSlotForUpdate(ctx context.Context, db db.DBTX, id uuid.UUID) (db.TimeSlots, error)
	CreateTimeSlot(ctx context.Context, db db.DBTX, arg db.CreateTimeSlotParams) (db.TimeSlots, error)
	IncrementSlotOrders(ctx context.Context, db db.DBTX, id uuid.UUID) error
	DecrementSlotOrders(ctx context.Context, db db.DBTX, id uuid.UUID) error
}

type SlotRepository struct {
	queries SlotQueries
	db      db.DBTX
}

func NewSlotRepository(queries *db.Queries, pool db.DBTX) *SlotRepository {
	return &SlotRepository{
		queries: queries,
		db:      pool,
	}
}

func (r *SlotRepository) List(ctx context.Context) ([]*slot.TimeSlot, error) {
	rows, err := r.queries.ListTimeSlots(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list time slots", err)
	}

	result := make([]*slot.TimeSlot, len(rows))
	for i, row := range rows {
		result[i] = converter.TimeSlotFromRow(row)
	}
	return result, nil
}

func (r *SlotRepository) FindByID(ctx context.Context, id uuid.UUID) (*slot.TimeSlot, error) {
	row, err := r.queries.FindTimeSlotByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("time slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find time slot", err)
	}
	return converter.TimeSlotFromRow(row), nil
}

// LockByID loads the slot row FOR UPDATE inside tx.
func (r *SlotRepository) LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*slot.TimeSlot, error) {
	row, err := r.queries.GetTimeSlotForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("time slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock time slot", err)
	}
	return converter.TimeSlotFromRow(row), nil
}

func (r *SlotRepository) Create(ctx context.Context, s *slot.TimeSlot) (*slot.TimeSlot, error) {
	row, err := r.queries.CreateTimeSlot(ctx, r.db, converter.TimeSlotToCreateParams(s))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create time slot", err)
	}
	return converter.TimeSlotFromRow(row), nil
}

func (r *SlotRepository) IncrementOrders(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	if err := r.queries.IncrementSlotOrders(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to increment slot orders", err)
	}
	return nil
}

func (r *SlotRepository) DecrementOrders(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	if err := r.queries.DecrementSlotOrders(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to decrement slot orders", err)
	}
	return nil
}
