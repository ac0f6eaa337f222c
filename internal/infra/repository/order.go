package repository

import (
	"context"
	"time"

	"food-preorder/internal/domain/order"
	"food-preorder/internal/domain/slot"
	"food-preorder/internal/infra"
	"food-preorder/internal/infra/db"
	"food-preorder/internal/infra/repository/converter"
	"food-preorder/internal/pkg/pgconv"
	"food-preorder/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderQueries interface {
	CreateOrder(ctx context.Context, db db.DBTX, arg db.CreateOrderParams) (db.Orders, error)
	CreateOrderItem(ctx context.Context, db db.DBTX, arg db.CreateOrderItemParams) error
	GetOrderByID(ctx context.Context, db db.DBTX, id uuid.UUID) (db.OrderDetailRow, error)
	GetOrderForUpdate(ctx context.Context, db db.DBTX, id uuid.UUID) (db.Orders, error)
	ListOrdersByUserID(ctx context.Context, db db.DBTX, userID uuid.UUID) ([]db.OrderDetailRow, error)
	ListAllOrders(ctx context.Context, db db.DBTX) ([]db.OrderDetailRow, error)
	ListActiveOrdersForDate(ctx context.Context, db db.DBTX, date pgtype.Date) ([]db.OrderDetailRow, error)
	ListOrderItemsByOrderID(ctx context.Context, db db.DBTX, orderID uuid.UUID) ([]db.OrderItems, error)
	ListOrderItemsByOrderIDs(ctx context.Context, db db.DBTX, orderIDs []uuid.UUID) ([]db.OrderItems, error)
	UpdateOrderStatus(ctx context.Context, db db.DBTX, arg db.UpdateOrderStatusParams) (int64, error)
	MarkOrderCancelled(ctx context.Context, db db.DBTX, arg db.MarkOrderCancelledParams) error
}

type OrderRepository struct {
	queries OrderQueries
	db      db.DBTX
}

func NewOrderRepository(queries *db.Queries, pool db.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      pool,
	}
}

// Create inserts the order and its line items inside tx.
func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, o *order.Order) (*readmodel.OrderRM, error) {
	created, err := r.queries.CreateOrder(ctx, tx, converter.OrderToCreateParams(o))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create order", err)
	}

	for _, li := range o.Items() {
		if err := r.queries.CreateOrderItem(ctx, tx, converter.LineItemToCreateParams(created.ID, li)); err != nil {
			return nil, infra.WrapRepoErr("failed to create order item", err)
		}
	}

	row, err := r.queries.GetOrderByID(ctx, tx, created.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get created order", err)
	}

	items, err := r.queries.ListOrderItemsByOrderID(ctx, tx, created.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list created order items", err)
	}

	return toOrderRM(row, items), nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.OrderRM, error) {
	row, err := r.queries.GetOrderByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}

	items, err := r.queries.ListOrderItemsByOrderID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}

	return toOrderRM(row, items), nil
}

// LockByID loads the order row FOR UPDATE inside tx and rebuilds the entity
// so cancellation rules run against current state.
func (r *OrderRepository) LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetOrderForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock order", err)
	}
	return toOrderEntity(row), nil
}

func (r *OrderRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*readmodel.OrderRM, error) {
	rows, err := r.queries.ListOrdersByUserID(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by user", err)
	}
	return r.attachItems(ctx, rows)
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]*readmodel.OrderRM, error) {
	rows, err := r.queries.ListAllOrders(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	return r.attachItems(ctx, rows)
}

// FindActiveForDate returns sweep candidates without items attached.
func (r *OrderRepository) FindActiveForDate(ctx context.Context, date time.Time) ([]*readmodel.OrderRM, error) {
	rows, err := r.queries.ListActiveOrdersForDate(ctx, r.db, pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active orders", err)
	}

	result := make([]*readmodel.OrderRM, len(rows))
	for i, row := range rows {
		result[i] = toOrderRM(row, nil)
	}
	return result, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status) error {
	affected, err := r.queries.UpdateOrderStatus(ctx, r.db, db.UpdateOrderStatusParams{
		ID:     id,
		Status: status.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OrderRepository) MarkCancelled(ctx context.Context, tx db.DBTX, id uuid.UUID, cancelledAt time.Time) error {
	err := r.queries.MarkOrderCancelled(ctx, tx, db.MarkOrderCancelledParams{
		ID:          id,
		CancelledAt: pgconv.TimeToPgtype(cancelledAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark order cancelled", err)
	}
	return nil
}

func (r *OrderRepository) attachItems(ctx context.Context, rows []db.OrderDetailRow) ([]*readmodel.OrderRM, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}

	itemRows, err := r.queries.ListOrderItemsByOrderIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}

	byOrder := make(map[uuid.UUID][]db.OrderItems, len(rows))
	for _, it := range itemRows {
		byOrder[it.OrderID] = append(byOrder[it.OrderID], it)
	}

	result := make([]*readmodel.OrderRM, len(rows))
	for i, row := range rows {
		result[i] = toOrderRM(row, byOrder[row.ID])
	}
	return result, nil
}

func toOrderRM(row db.OrderDetailRow, itemRows []db.OrderItems) *readmodel.OrderRM {
	date := pgconv.DateFromPgtype(row.SlotDate)
	start := pgconv.TimeOfDayFromPgtype(row.StartTime)

	items := make([]readmodel.OrderItemRM, len(itemRows))
	for i, it := range itemRows {
		items[i] = readmodel.OrderItemRM{
			MenuItemID:     it.MenuItemID,
			ItemName:       it.ItemName,
			Quantity:       it.Quantity,
			UnitPriceCents: it.UnitPriceCents,
			SubtotalCents:  it.SubtotalCents,
			Notes:          pgconv.StringPtrFromPgtype(it.Notes),
		}
	}

	return &readmodel.OrderRM{
		ID:                   row.ID,
		OrderNumber:          row.OrderNumber,
		UserID:               row.UserID,
		UserName:             row.UserName,
		UserEmail:            row.UserEmail,
		SlotID:               row.SlotID,
		SlotDate:             date,
		SlotStartTime:        slot.FormatTimeOfDay(start),
		SlotEndTime:          slot.FormatTimeOfDay(pgconv.TimeOfDayFromPgtype(row.EndTime)),
		PickupAt:             date.Add(start),
		Items:                items,
		TotalCents:           row.TotalCents,
		Status:               row.Status,
		SpecialInstructions:  pgconv.StringPtrFromPgtype(row.SpecialInstructions),
		CancellationDeadline: pgconv.TimeFromPgtype(row.CancellationDeadline),
		CreatedAt:            pgconv.TimeFromPgtype(row.CreatedAt),
		CancelledAt:          pgconv.TimePtrFromPgtype(row.CancelledAt),
	}
}

func toOrderEntity(row db.Orders) *order.Order {
	return order.ReconstructOrder(
		row.ID,
		row.OrderNumber,
		row.UserID,
		row.SlotID,
		nil,
		order.NewMoney(row.TotalCents),
		order.Status(row.Status),
		pgconv.StringPtrFromPgtype(row.SpecialInstructions),
		pgconv.TimeFromPgtype(row.CancellationDeadline),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimePtrFromPgtype(row.CancelledAt),
	)
}
