//go:build unit || e2e

package builder

import (
	"time"

	"food-preorder/internal/domain/order"
	"food-preorder/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type OrderItemSpec struct {
	Name       string
	Quantity   int32
	PriceCents int64
}

type OrderBuilder struct {
	UserID              uuid.UUID
	SlotID              uuid.UUID
	Items               []OrderItemSpec
	SpecialInstructions *string
	SlotStartAt         time.Time
	GraceWindow         time.Duration
	Now                 time.Time
}

func NewOrderBuilder() *OrderBuilder {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return &OrderBuilder{
		UserID:      uuid.New(),
		SlotID:      uuid.New(),
		Items:       []OrderItemSpec{{Name: "Chicken Curry", Quantity: 2, PriceCents: 1250}},
		SlotStartAt: now.Add(2 * time.Hour),
		GraceWindow: 15 * time.Minute,
		Now:         now,
	}
}

func (o *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(o)
	return o
}

func (o *OrderBuilder) WithItems(items ...OrderItemSpec) *OrderBuilder {
	o.Items = items
	return o
}

func (o *OrderBuilder) WithSlotStartAt(t time.Time) *OrderBuilder {
	o.SlotStartAt = t
	return o
}

func (o *OrderBuilder) WithGraceWindow(d time.Duration) *OrderBuilder {
	o.GraceWindow = d
	return o
}

func (o *OrderBuilder) BuildDomain() (*order.Order, error) {
	items := make([]order.LineItem, 0, len(o.Items))
	for _, spec := range o.Items {
		li, err := order.NewLineItem(uuid.New(), spec.Name, spec.Quantity, order.NewMoney(spec.PriceCents), nil)
		if err != nil {
			return nil, err
		}
		items = append(items, li)
	}

	return order.NewOrder(o.UserID, o.SlotID, items, o.SpecialInstructions, o.SlotStartAt, o.GraceWindow, o.Now)
}

func (o *OrderBuilder) BuildReadModel(status string) *readmodel.OrderRM {
	var total int64
	items := make([]readmodel.OrderItemRM, len(o.Items))
	for i, spec := range o.Items {
		subtotal := spec.PriceCents * int64(spec.Quantity)
		total += subtotal
		items[i] = readmodel.OrderItemRM{
			MenuItemID:     uuid.New(),
			ItemName:       spec.Name,
			Quantity:       spec.Quantity,
			UnitPriceCents: spec.PriceCents,
			SubtotalCents:  subtotal,
		}
	}

	return &readmodel.OrderRM{
		ID:                   uuid.New(),
		OrderNumber:          order.NewOrderNumber(o.Now),
		UserID:               o.UserID,
		UserName:             "Taro Tester",
		UserEmail:            "test@example.com",
		SlotID:               o.SlotID,
		SlotDate:             o.SlotStartAt.Truncate(24 * time.Hour),
		SlotStartTime:        o.SlotStartAt.Format("15:04"),
		PickupAt:             o.SlotStartAt,
		Items:                items,
		TotalCents:           total,
		Status:               status,
		CancellationDeadline: o.SlotStartAt.Add(-o.GraceWindow),
		CreatedAt:            o.Now,
	}
}
