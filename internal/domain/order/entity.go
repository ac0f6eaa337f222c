package order

import (
	"errors"
	"time"

	"food-preorder/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCancelled = errors.New("order is already cancelled")
	ErrNotCancellable   = errors.New("order is ready or picked up and can no longer be cancelled")
	ErrDeadlinePassed   = errors.New("cancellation deadline has passed")
	ErrNotOwner         = errors.New("order belongs to another user")
)

// Order is created atomically with its line items and a slot-count increment.
// Payment is treated as settled at placement, so new orders start confirmed.
type Order struct {
	id                   uuid.UUID
	orderNumber          string
	userID               uuid.UUID
	slotID               uuid.UUID
	items                []LineItem
	total                Money
	status               Status
	specialInstructions  *string
	cancellationDeadline time.Time
	createdAt            time.Time
	cancelledAt          *time.Time
}

// NewOrder sums the snapshots into the order total and stamps the cancellation
// deadline at slot start minus the grace window.
func NewOrder(
	userID, slotID uuid.UUID,
	items []LineItem,
	specialInstructions *string,
	slotStartAt time.Time,
	graceWindow time.Duration,
	now time.Time,
) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	total := NewMoney(0)
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}

	return &Order{
		id:                   uuid.New(),
		orderNumber:          NewOrderNumber(now),
		userID:               userID,
		slotID:               slotID,
		items:                items,
		total:                total,
		status:               StatusConfirmed,
		specialInstructions:  specialInstructions,
		cancellationDeadline: slotStartAt.Add(-graceWindow),
	}, nil
}

func ReconstructOrder(
	id uuid.UUID,
	orderNumber string,
	userID, slotID uuid.UUID,
	items []LineItem,
	total Money,
	status Status,
	specialInstructions *string,
	cancellationDeadline time.Time,
	createdAt time.Time,
	cancelledAt *time.Time,
) *Order {
	return &Order{
		id:                   id,
		orderNumber:          orderNumber,
		userID:               userID,
		slotID:               slotID,
		items:                items,
		total:                total,
		status:               status,
		specialInstructions:  specialInstructions,
		cancellationDeadline: cancellationDeadline,
		createdAt:            createdAt,
		cancelledAt:          cancelledAt,
	}
}

func (o *Order) ID() uuid.UUID                   { return o.id }
func (o *Order) OrderNumber() string             { return o.orderNumber }
func (o *Order) UserID() uuid.UUID               { return o.userID }
func (o *Order) SlotID() uuid.UUID               { return o.slotID }
func (o *Order) Items() []LineItem               { return o.items }
func (o *Order) Total() Money                    { return o.total }
func (o *Order) Status() Status                  { return o.status }
func (o *Order) SpecialInstructions() *string    { return o.specialInstructions }
func (o *Order) CancellationDeadline() time.Time { return o.cancellationDeadline }
func (o *Order) CreatedAt() time.Time            { return o.createdAt }
func (o *Order) CancelledAt() *time.Time         { return o.cancelledAt }

func (o *Order) IsOwnedBy(userID uuid.UUID) bool {
	return o.userID == userID
}

// ValidateCancellation enforces the cancel policy: the owner may cancel while
// the order is neither terminal nor past its deadline; an admin bypasses the
// deadline but not the terminal states.
func (o *Order) ValidateCancellation(actorID uuid.UUID, actorRole user.Role, now time.Time) error {
	if actorRole != user.RoleAdmin && !o.IsOwnedBy(actorID) {
		return ErrNotOwner
	}
	switch o.status {
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusReady, StatusPickedUp:
		return ErrNotCancellable
	}
	if actorRole != user.RoleAdmin && !now.Before(o.cancellationDeadline) {
		return ErrDeadlinePassed
	}
	return nil
}

// Cancel stamps the cancellation. The caller releases slot capacity in the
// same transaction.
func (o *Order) Cancel(now time.Time) {
	o.status = StatusCancelled
	o.cancelledAt = &now
}
