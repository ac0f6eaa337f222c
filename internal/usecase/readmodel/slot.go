package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type TimeSlotRM struct {
	ID            uuid.UUID `json:"id"`
	Date          time.Time `json:"date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	MaxOrders     int32     `json:"max_orders"`
	CurrentOrders int32     `json:"current_orders"`
	Remaining     int32     `json:"remaining"`
	Status        string    `json:"status"`
	StatusColor   string    `json:"status_color"`
}
