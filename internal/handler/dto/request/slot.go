package request

import (
	"time"

	"food-preorder/internal/domain/slot"
)

type CreateSlotRequest struct {
	Date      string `json:"date" binding:"required"`       // "2006-01-02"
	StartTime string `json:"start_time" binding:"required"` // "15:04"
	EndTime   string `json:"end_time" binding:"required"`
	MaxOrders int32  `json:"max_orders" binding:"required,min=1"`
}

func (r CreateSlotRequest) ToDomain() (*slot.TimeSlot, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return nil, slot.ErrInvalidWindow
	}

	start, err := parseTimeOfDay(r.StartTime)
	if err != nil {
		return nil, err
	}

	end, err := parseTimeOfDay(r.EndTime)
	if err != nil {
		return nil, err
	}

	return slot.NewTimeSlot(date, start, end, r.MaxOrders)
}

func parseTimeOfDay(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, slot.ErrInvalidWindow
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}
