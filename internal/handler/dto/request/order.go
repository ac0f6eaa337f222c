package request

import (
	"strings"

	"github.com/google/uuid"
)

type OrderItemRequest struct {
	MenuItemID uuid.UUID `json:"menu_item_id" binding:"required"`
	Quantity   int32     `json:"quantity" binding:"required,min=1"`
	Notes      *string   `json:"notes,omitempty"`
}

type CreateOrderRequest struct {
	SlotID              uuid.UUID          `json:"slot_id" binding:"required"`
	Items               []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	SpecialInstructions *string            `json:"special_instructions,omitempty"`
}

func (r CreateOrderRequest) GetSpecialInstructions() *string {
	if r.SpecialInstructions == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.SpecialInstructions)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// MenuItemIDs deduplicates the referenced menu items for the lookup query.
func (r CreateOrderRequest) MenuItemIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(r.Items))
	ids := make([]uuid.UUID, 0, len(r.Items))
	for _, item := range r.Items {
		if _, ok := seen[item.MenuItemID]; ok {
			continue
		}
		seen[item.MenuItemID] = struct{}{}
		ids = append(ids, item.MenuItemID)
	}
	return ids
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
