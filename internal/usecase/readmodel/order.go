package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type OrderItemRM struct {
	MenuItemID     uuid.UUID `json:"menu_item_id"`
	ItemName       string    `json:"item_name"`
	Quantity       int32     `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	SubtotalCents  int64     `json:"subtotal_cents"`
	Notes          *string   `json:"notes,omitempty"`
}

type OrderRM struct {
	ID                   uuid.UUID     `json:"id"`
	OrderNumber          string        `json:"order_number"`
	UserID               uuid.UUID     `json:"user_id"`
	UserName             string        `json:"user_name"`
	UserEmail            string        `json:"user_email"`
	SlotID               uuid.UUID     `json:"slot_id"`
	SlotDate             time.Time     `json:"slot_date"`
	SlotStartTime        string        `json:"slot_start_time"`
	SlotEndTime          string        `json:"slot_end_time"`
	PickupAt             time.Time     `json:"pickup_at"`
	Items                []OrderItemRM `json:"items"`
	TotalCents           int64         `json:"total_cents"`
	Status               string        `json:"status"`
	SpecialInstructions  *string       `json:"special_instructions,omitempty"`
	CancellationDeadline time.Time     `json:"cancellation_deadline"`
	CreatedAt            time.Time     `json:"created_at"`
	CancelledAt          *time.Time    `json:"cancelled_at,omitempty"`
}

// SweepCandidateRM is one row of the auto-update preview.
type SweepCandidateRM struct {
	OrderID         uuid.UUID `json:"order_id"`
	OrderNumber     string    `json:"order_number"`
	Status          string    `json:"status"`
	PickupAt        time.Time `json:"pickup_at"`
	MinutesToPickup int       `json:"minutes_to_pickup"`
	SuggestedStatus *string   `json:"suggested_status,omitempty"`
	Urgency         string    `json:"urgency"`
}

type SweepResultRM struct {
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	FromStatus  string    `json:"from_status"`
	ToStatus    string    `json:"to_status"`
}
