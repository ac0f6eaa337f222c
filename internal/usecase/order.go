package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"food-preorder/internal/domain/order"
	"food-preorder/internal/domain/slot"
	"food-preorder/internal/domain/user"
	reqdto "food-preorder/internal/handler/dto/request"
	"food-preorder/internal/infra"
	"food-preorder/internal/infra/db"
	"food-preorder/internal/pkg/clock"
	"food-preorder/internal/pkg/config"
	"food-preorder/internal/pkg/errs"
	"food-preorder/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrSlotNotFound        = errors.New("time slot not found")
	ErrSlotFull            = errors.New("time slot is fully booked")
	ErrSlotExpired         = errors.New("time slot has already started")
	ErrMenuItemUnavailable = errors.New("menu item is not available")
	ErrForbidden           = errors.New("not allowed to access this order")
	ErrOrderCancelled      = errors.New("order is already cancelled")
	ErrOrderNotCancellable = errors.New("order can no longer be cancelled")
	ErrCancelTooLate       = errors.New("cancellation deadline has passed")
	ErrInvalidStatus       = errors.New("invalid order status")
)

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *order.Order) (*readmodel.OrderRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.OrderRM, error)
	LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*order.Order, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*readmodel.OrderRM, error)
	FindAll(ctx context.Context) ([]*readmodel.OrderRM, error)
	FindActiveForDate(ctx context.Context, date time.Time) ([]*readmodel.OrderRM, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status) error
	MarkCancelled(ctx context.Context, tx db.DBTX, id uuid.UUID, cancelledAt time.Time) error
}

type SlotRepository interface {
	List(ctx context.Context) ([]*slot.TimeSlot, error)
	FindByID(ctx context.Context, id uuid.UUID) (*slot.TimeSlot, error)
	LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*slot.TimeSlot, error)
	Create(ctx context.Context, s *slot.TimeSlot) (*slot.TimeSlot, error)
	IncrementOrders(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	DecrementOrders(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) (uuid.UUID, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, cause string) error
}

type OrderUseCase interface {
	PlaceOrder(ctx context.Context, req reqdto.CreateOrderRequest, userID uuid.UUID) (*readmodel.OrderRM, error)
	GetOrder(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) (*readmodel.OrderRM, error)
	ListOrders(ctx context.Context, actorID uuid.UUID, actorRole user.Role) ([]*readmodel.OrderRM, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*readmodel.OrderRM, error)
	CancelOrder(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) (*readmodel.OrderRM, error)
	PreviewSweep(ctx context.Context) ([]readmodel.SweepCandidateRM, error)
	ApplySweep(ctx context.Context) ([]readmodel.SweepResultRM, error)
}

type orderUseCaseImpl struct {
	orderRepo        OrderRepository
	slotRepo         SlotRepository
	menuRepo         MenuRepository
	notificationRepo NotificationRepository
	mailer           Mailer
	db               *pgxpool.Pool
	clock            clock.Clock
	cfg              config.OrderConfig
}

func NewOrderUseCase(
	orderRepo OrderRepository,
	slotRepo SlotRepository,
	menuRepo MenuRepository,
	notificationRepo NotificationRepository,
	mailer Mailer,
	db *pgxpool.Pool,
	clock clock.Clock,
	cfg config.OrderConfig,
) OrderUseCase {
	return &orderUseCaseImpl{
		orderRepo:        orderRepo,
		slotRepo:         slotRepo,
		menuRepo:         menuRepo,
		notificationRepo: notificationRepo,
		mailer:           mailer,
		db:               db,
		clock:            clock,
		cfg:              cfg,
	}
}

// PlaceOrder runs the capacity check, the price snapshot and the counter
// increment under one row-locked transaction. The confirmation email goes out
// after commit and never affects the result.
func (u *orderUseCaseImpl) PlaceOrder(ctx context.Context, req reqdto.CreateOrderRequest, userID uuid.UUID) (*readmodel.OrderRM, error) {
	now := u.clock.Now()

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	slotEntity, err := u.slotRepo.LockByID(ctx, tx, req.SlotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := slotEntity.Reserve(now); err != nil {
		switch {
		case errors.Is(err, slot.ErrSlotFull):
			return nil, ErrSlotFull
		case errors.Is(err, slot.ErrSlotExpired):
			return nil, ErrSlotExpired
		default:
			return nil, errs.Mark(err, ErrDomainValidationFailed)
		}
	}

	items, err := u.buildLineItems(ctx, tx, req)
	if err != nil {
		return nil, err
	}

	orderEntity, err := order.NewOrder(
		userID,
		req.SlotID,
		items,
		req.GetSpecialInstructions(),
		slotEntity.StartAt(),
		u.cfg.CancelGraceWindow,
		now,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	orderRM, err := u.orderRepo.Create(ctx, tx, orderEntity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := u.slotRepo.IncrementOrders(ctx, tx, req.SlotID); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	jobID, err := u.enqueueConfirmationJob(ctx, tx, orderRM, now)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.mailer.SendOrderConfirmation(jobID, orderRM)

	return orderRM, nil
}

func (u *orderUseCaseImpl) buildLineItems(ctx context.Context, tx db.DBTX, req reqdto.CreateOrderRequest) ([]order.LineItem, error) {
	menuItems, err := u.menuRepo.FindItemsByIDs(ctx, tx, req.MenuItemIDs())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	byID := make(map[uuid.UUID]readmodel.MenuItemRM, len(menuItems))
	for _, m := range menuItems {
		byID[m.ID] = m
	}

	items := make([]order.LineItem, 0, len(req.Items))
	for _, reqItem := range req.Items {
		m, ok := byID[reqItem.MenuItemID]
		if !ok || !m.IsAvailable {
			return nil, ErrMenuItemUnavailable
		}

		li, err := order.NewLineItem(m.ID, m.Name, reqItem.Quantity, order.NewMoney(m.PriceCents), reqItem.Notes)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidationFailed)
		}
		items = append(items, li)
	}

	return items, nil
}

func (u *orderUseCaseImpl) enqueueConfirmationJob(ctx context.Context, tx db.DBTX, rm *readmodel.OrderRM, now time.Time) (uuid.UUID, error) {
	payload, err := json.Marshal(map[string]any{
		"order_id":     rm.ID,
		"order_number": rm.OrderNumber,
		"user_email":   rm.UserEmail,
		"pickup_at":    rm.PickupAt,
		"total_cents":  rm.TotalCents,
	})
	if err != nil {
		return uuid.Nil, err
	}

	return u.notificationRepo.CreateJob(ctx, tx, "order_confirmation", rm.OrderNumber, payload, now)
}

func (u *orderUseCaseImpl) GetOrder(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) (*readmodel.OrderRM, error) {
	rm, err := u.orderRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Wrap(err, "failed to find order")
	}

	if !actorRole.IsKitchen() && rm.UserID != actorID {
		return nil, ErrForbidden
	}

	return rm, nil
}

func (u *orderUseCaseImpl) ListOrders(ctx context.Context, actorID uuid.UUID, actorRole user.Role) ([]*readmodel.OrderRM, error) {
	if actorRole.IsKitchen() {
		return u.orderRepo.FindAll(ctx)
	}
	return u.orderRepo.FindByUserID(ctx, actorID)
}

func (u *orderUseCaseImpl) UpdateStatus(ctx context.Context, id uuid.UUID, rawStatus string) (*readmodel.OrderRM, error) {
	status := order.Status(rawStatus)
	if !status.IsValid() || !status.IsStaffAssignable() {
		return nil, ErrInvalidStatus
	}

	if err := u.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return u.orderRepo.FindByID(ctx, id)
}

// CancelOrder releases the slot seat with the status flip in one transaction.
func (u *orderUseCaseImpl) CancelOrder(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) (*readmodel.OrderRM, error) {
	now := u.clock.Now()

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	orderEntity, err := u.orderRepo.LockByID(ctx, tx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := orderEntity.ValidateCancellation(actorID, actorRole, now); err != nil {
		switch {
		case errors.Is(err, order.ErrNotOwner):
			return nil, ErrForbidden
		case errors.Is(err, order.ErrAlreadyCancelled):
			return nil, ErrOrderCancelled
		case errors.Is(err, order.ErrNotCancellable):
			return nil, ErrOrderNotCancellable
		case errors.Is(err, order.ErrDeadlinePassed):
			return nil, ErrCancelTooLate
		default:
			return nil, errs.Mark(err, ErrDomainValidationFailed)
		}
	}

	if err := u.orderRepo.MarkCancelled(ctx, tx, id, now); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := u.slotRepo.DecrementOrders(ctx, tx, orderEntity.SlotID()); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return u.orderRepo.FindByID(ctx, id)
}

// PreviewSweep reports what ApplySweep would do, without writing.
func (u *orderUseCaseImpl) PreviewSweep(ctx context.Context) ([]readmodel.SweepCandidateRM, error) {
	now := u.clock.Now()

	rows, err := u.orderRepo.FindActiveForDate(ctx, now)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	candidates := make([]readmodel.SweepCandidateRM, 0, len(rows))
	for _, rm := range rows {
		minutes := int(rm.PickupAt.Sub(now).Minutes())

		candidate := readmodel.SweepCandidateRM{
			OrderID:         rm.ID,
			OrderNumber:     rm.OrderNumber,
			Status:          rm.Status,
			PickupAt:        rm.PickupAt,
			MinutesToPickup: minutes,
			Urgency:         order.Urgency(minutes),
		}
		if target, ok := order.SweepTarget(order.Status(rm.Status), minutes); ok {
			suggested := target.String()
			candidate.SuggestedStatus = &suggested
		}
		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

// ApplySweep promotes today's orders whose pickup is close enough.
func (u *orderUseCaseImpl) ApplySweep(ctx context.Context) ([]readmodel.SweepResultRM, error) {
	now := u.clock.Now()

	rows, err := u.orderRepo.FindActiveForDate(ctx, now)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	results := make([]readmodel.SweepResultRM, 0, len(rows))
	for _, rm := range rows {
		minutes := int(rm.PickupAt.Sub(now).Minutes())

		target, ok := order.SweepTarget(order.Status(rm.Status), minutes)
		if !ok {
			continue
		}

		if err := u.orderRepo.UpdateStatus(ctx, rm.ID, target); err != nil {
			slog.Warn("sweep failed to update order", "order_id", rm.ID, "error", err)
			continue
		}

		results = append(results, readmodel.SweepResultRM{
			OrderID:     rm.ID,
			OrderNumber: rm.OrderNumber,
			FromStatus:  rm.Status,
			ToStatus:    target.String(),
		})
	}

	return results, nil
}
