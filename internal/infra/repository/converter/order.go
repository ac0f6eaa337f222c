package converter

import (
	"food-preorder/internal/domain/order"
	"food-preorder/internal/infra/db"
	"food-preorder/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func OrderToCreateParams(o *order.Order) db.CreateOrderParams {
	return db.CreateOrderParams{
		ID:                   o.ID(),
		OrderNumber:          o.OrderNumber(),
		UserID:               o.UserID(),
		SlotID:               o.SlotID(),
		TotalCents:           o.Total().Cents(),
		Status:               o.Status().String(),
		SpecialInstructions:  pgconv.StringPtrToPgtype(o.SpecialInstructions()),
		CancellationDeadline: pgconv.TimeToPgtype(o.CancellationDeadline()),
	}
}

func LineItemToCreateParams(orderID uuid.UUID, li order.LineItem) db.CreateOrderItemParams {
	return db.CreateOrderItemParams{
		ID:             uuid.New(),
		OrderID:        orderID,
		MenuItemID:     li.MenuItemID(),
		ItemName:       li.ItemName(),
		Quantity:       li.Quantity(),
		UnitPriceCents: li.UnitPrice().Cents(),
		SubtotalCents:  li.Subtotal().Cents(),
		Notes:          pgconv.StringPtrToPgtype(li.Notes()),
	}
}
