package db

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Users struct {
	ID              uuid.UUID
	Name            string
	Email           string
	PasswordHash    string
	Phone           pgtype.Text
	Role            string
	ResetOtp        pgtype.Text
	ResetOtpExpires pgtype.Timestamptz
	IsActive        bool
	CreatedAt       pgtype.Timestamptz
}

type MenuCategories struct {
	ID           uuid.UUID
	Name         string
	Description  pgtype.Text
	DisplayOrder int32
	IsActive     bool
}

type MenuItems struct {
	ID           uuid.UUID
	CategoryID   uuid.UUID
	Name         string
	Description  pgtype.Text
	PriceCents   int64
	IsVegetarian bool
	IsAvailable  bool
	PrepTimeMin  int32
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type TimeSlots struct {
	ID            uuid.UUID
	SlotDate      pgtype.Date
	StartTime     pgtype.Time
	EndTime       pgtype.Time
	MaxOrders     int32
	CurrentOrders int32
	CreatedAt     pgtype.Timestamptz
}

type Orders struct {
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
}

type OrderItems struct {
	ID             uuid.UUID
	OrderID        uuid.UUID
	MenuItemID     uuid.UUID
	ItemName       string
	Quantity       int32
	UnitPriceCents int64
	SubtotalCents  int64
	Notes          pgtype.Text
}

type NotificationJobs struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     pgtype.Timestamptz
	Attempts  int32
	Status    string
	LastError pgtype.Text
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}
