package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const orderColumns = `id, order_number, user_id, slot_id, total_cents, status, special_instructions, cancellation_deadline, created_at, cancelled_at`

func scanOrder(row interface{ Scan(dest ...any) error }) (Orders, error) {
	var o Orders
	err := row.Scan(
		&o.ID,
		&o.OrderNumber,
		&o.UserID,
		&o.SlotID,
		&o.TotalCents,
		&o.Status,
		&o.SpecialInstructions,
		&o.CancellationDeadline,
		&o.CreatedAt,
		&o.CancelledAt,
	)
	return o, err
}

// OrderdetailRows carry the order joined with its slot window and owner.
type OrderDetailRow struct {
	ID                   uuid.UUID
	OrderNumber          string
	UserID               uuid.UUID
	SlotID               uuid.UUID
	TotalCents           int64
	Status               string
	SpecialInstructions  pgtype.Text
	CancellationDeadline pgtype.Timestamptz
	CreatedAt            pgtype.Timestamptz
	CancelledAt          pgtype.Timestamptz
	SlotDate             pgtype.Date
	StartTime            pgtype.Time
	EndTime              pgtype.Time
	UserName             string
	UserEmail            string
}

const orderDetailQuery = `
	SELECT o.id, o.order_number, o.user_id, o.slot_id, o.total_cents, o.status,
	       o.special_instructions, o.cancellation_deadline, o.created_at, o.cancelled_at,
	       s.slot_date, s.start_time, s.end_time,
	       u.name AS user_name, u.email AS user_email
	FROM orders o
	JOIN time_slots s ON s.id = o.slot_id
	JOIN users u ON u.id = o.user_id`

func scanOrderDetail(row interface{ Scan(dest ...any) error }) (OrderDetailRow, error) {
	var o OrderDetailRow
	err := row.Scan(
		&o.ID,
		&o.OrderNumber,
		&o.UserID,
		&o.SlotID,
		&o.TotalCents,
		&o.Status,
		&o.SpecialInstructions,
		&o.CancellationDeadline,
		&o.CreatedAt,
		&o.CancelledAt,
		&o.SlotDate,
		&o.StartTime,
		&o.EndTime,
		&o.UserName,
		&o.UserEmail,
	)
	return o, err
}

func collectOrderDetails(ctx context.Context, db DBTX, query string, args ...any) ([]OrderDetailRow, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []OrderDetailRow
	for rows.Next() {
		o, err := scanOrderDetail(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

type CreateOrderParams struct {
	ID                   uuid.UUID
	OrderNumber          string
	UserID               uuid.UUID
	SlotID               uuid.UUID
	TotalCents           int64
	Status               string
	SpecialInstructions  pgtype.Text
	CancellationDeadline pgtype.Timestamptz
}

func (q *Queries) CreateOrder(ctx context.Context, db DBTX, arg CreateOrderParams) (Orders, error) {
	row := db.QueryRow(ctx, `
		INSERT INTO orders (id, order_number, user_id, slot_id, total_cents, status, special_instructions, cancellation_deadline)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+orderColumns,
		arg.ID, arg.OrderNumber, arg.UserID, arg.SlotID, arg.TotalCents, arg.Status, arg.SpecialInstructions, arg.CancellationDeadline,
	)
	return scanOrder(row)
}

type CreateOrderItemParams struct {
	ID             uuid.UUID
	OrderID        uuid.UUID
	MenuItemID     uuid.UUID
	ItemName       string
	Quantity       int32
	UnitPriceCents int64
	SubtotalCents  int64
	Notes          pgtype.Text
}

func (q *Queries) CreateOrderItem(ctx context.Context, db DBTX, arg CreateOrderItemParams) error {
	_, err := db.Exec(ctx, `
		INSERT INTO order_items (id, order_id, menu_item_id, item_name, quantity, unit_price_cents, subtotal_cents, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		arg.ID, arg.OrderID, arg.MenuItemID, arg.ItemName, arg.Quantity, arg.UnitPriceCents, arg.SubtotalCents, arg.Notes,
	)
	return err
}

func (q *Queries) GetOrderByID(ctx context.Context, db DBTX, id uuid.UUID) (OrderDetailRow, error) {
	row := db.QueryRow(ctx, orderDetailQuery+`
	WHERE o.id = $1`,
		id,
	)
	return scanOrderDetail(row)
}

func (q *Queries) GetOrderForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Orders, error) {
	row := db.QueryRow(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = $1
		FOR UPDATE`,
		id,
	)
	return scanOrder(row)
}

func (q *Queries) ListOrdersByUserID(ctx context.Context, db DBTX, userID uuid.UUID) ([]OrderDetailRow, error) {
	return collectOrderDetails(ctx, db, orderDetailQuery+`
	WHERE o.user_id = $1
	ORDER BY o.created_at DESC`,
		userID,
	)
}

func (q *Queries) ListAllOrders(ctx context.Context, db DBTX) ([]OrderDetailRow, error) {
	return collectOrderDetails(ctx, db, orderDetailQuery+`
	ORDER BY o.created_at DESC`,
	)
}

// ListActiveOrdersForDate returns the sweep candidates: orders still in the
// kitchen pipeline whose slot falls on the given date.
func (q *Queries) ListActiveOrdersForDate(ctx context.Context, db DBTX, date pgtype.Date) ([]OrderDetailRow, error) {
	return collectOrderDetails(ctx, db, orderDetailQuery+`
	WHERE s.slot_date = $1 AND o.status IN ('confirmed', 'in_making')
	ORDER BY s.start_time`,
		date,
	)
}

func (q *Queries) ListOrderItemsByOrderID(ctx context.Context, db DBTX, orderID uuid.UUID) ([]OrderItems, error) {
	return q.listOrderItems(ctx, db, `
		SELECT id, order_id, menu_item_id, item_name, quantity, unit_price_cents, subtotal_cents, notes
		FROM order_items
		WHERE order_id = $1`,
		orderID,
	)
}

func (q *Queries) ListOrderItemsByOrderIDs(ctx context.Context, db DBTX, orderIDs []uuid.UUID) ([]OrderItems, error) {
	return q.listOrderItems(ctx, db, `
		SELECT id, order_id, menu_item_id, item_name, quantity, unit_price_cents, subtotal_cents, notes
		FROM order_items
		WHERE order_id = ANY($1)`,
		orderIDs,
	)
}

func (q *Queries) listOrderItems(ctx context.Context, db DBTX, query string, args ...any) ([]OrderItems, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OrderItems
	for rows.Next() {
		var it OrderItems
		if err := rows.Scan(&it.ID, &it.OrderID, &it.MenuItemID, &it.ItemName, &it.Quantity, &it.UnitPriceCents, &it.SubtotalCents, &it.Notes); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

type UpdateOrderStatusParams struct {
	ID     uuid.UUID
	Status string
}

func (q *Queries) UpdateOrderStatus(ctx context.Context, db DBTX, arg UpdateOrderStatusParams) (int64, error) {
	tag, err := db.Exec(ctx, `
		UPDATE orders
		SET status = $2
		WHERE id = $1`,
		arg.ID, arg.Status,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type MarkOrderCancelledParams struct {
	ID          uuid.UUID
	CancelledAt pgtype.Timestamptz
}

func (q *Queries) MarkOrderCancelled(ctx context.Context, db DBTX, arg MarkOrderCancelledParams) error {
	_, err := db.Exec(ctx, `
		UPDATE orders
		SET status = 'cancelled', cancelled_at = $2
		WHERE id = $1`,
		arg.ID, arg.CancelledAt,
	)
	return err
}
