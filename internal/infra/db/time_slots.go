package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const timeSlotColumns = `id, slot_date, start_time, end_time, max_orders, current_orders, created_at`

func scanTimeSlot(row interface{ Scan(dest ...any) error }) (TimeSlots, error) {
	var s TimeSlots
	err := row.Scan(
		&s.ID,
		&s.SlotDate,
		&s.StartTime,
		&s.EndTime,
		&s.MaxOrders,
		&s.CurrentOrders,
		&s.CreatedAt,
	)
	return s, err
}

func (q *Queries) ListTimeSlots(ctx context.Context, db DBTX) ([]TimeSlots, error) {
	rows, err := db.Query(ctx, `
		SELECT `+timeSlotColumns+`
		FROM time_slots
		ORDER BY slot_date, start_time`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []TimeSlots
	for rows.Next() {
		s, err := scanTimeSlot(rows)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}

func (q *Queries) FindTimeSlotByID(ctx context.Context, db DBTX, id uuid.UUID) (TimeSlots, error) {
	row := db.QueryRow(ctx, `
		SELECT `+timeSlotColumns+`
		FROM time_slots
		WHERE id = $1`,
		id,
	)
	return scanTimeSlot(row)
}

// GetTimeSlotForUpdate takes a row lock so the capacity check and the counter
// update happen under one transaction.
func (q *Queries) GetTimeSlotForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (TimeSlots, error) {
	row := db.QueryRow(ctx, `
		SELECT `+timeSlotColumns+`
		FROM time_slots
		WHERE id = $1
		FOR UPDATE`,
		id,
	)
	return scanTimeSlot(row)
}

type CreateTimeSlotParams struct {
	ID        uuid.UUID
	SlotDate  pgtype.Date
	StartTime pgtype.Time
	EndTime   pgtype.Time
	MaxOrders int32
}

func (q *Queries) CreateTimeSlot(ctx context.Context, db DBTX, arg CreateTimeSlotParams) (TimeSlots, error) {
	row := db.QueryRow(ctx, `
		INSERT INTO time_slots (id, slot_date, start_time, end_time, max_orders, current_orders)
		VALUES ($1, $2, $3, $4, $5, 0)
		RETURNING `+timeSlotColumns,
		arg.ID, arg.SlotDate, arg.StartTime, arg.EndTime, arg.MaxOrders,
	)
	return scanTimeSlot(row)
}

func (q *Queries) IncrementSlotOrders(ctx context.Context, db DBTX, id uuid.UUID) error {
	_, err := db.Exec(ctx, `
		UPDATE time_slots
		SET current_orders = current_orders + 1
		WHERE id = $1`,
		id,
	)
	return err
}

func (q *Queries) DecrementSlotOrders(ctx context.Context, db DBTX, id uuid.UUID) error {
	_, err := db.Exec(ctx, `
		UPDATE time_slots
		SET current_orders = GREATEST(current_orders - 1, 0)
		WHERE id = $1`,
		id,
	)
	return err
}
