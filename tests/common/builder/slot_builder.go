//go:build unit || e2e

package builder

import (
	"time"

	"food-preorder/internal/domain/slot"

	"github.com/google/uuid"
)

type SlotBuilder struct {
	Date          time.Time
	StartTime     time.Duration
	EndTime       time.Duration
	MaxOrders     int32
	CurrentOrders int32
}

func NewSlotBuilder() *SlotBuilder {
	return &SlotBuilder{
		Date:      time.Now().UTC().AddDate(0, 0, 1),
		StartTime: 12 * time.Hour,
		EndTime:   12*time.Hour + 30*time.Minute,
		MaxOrders: 10,
	}
}

func (s *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(s)
	return s
}

func (s *SlotBuilder) WithDate(date time.Time) *SlotBuilder {
	s.Date = date
	return s
}

func (s *SlotBuilder) WithWindow(start, end time.Duration) *SlotBuilder {
	s.StartTime = start
	s.EndTime = end
	return s
}

func (s *SlotBuilder) WithMaxOrders(max int32) *SlotBuilder {
	s.MaxOrders = max
	return s
}

func (s *SlotBuilder) WithCurrentOrders(current int32) *SlotBuilder {
	s.CurrentOrders = current
	return s
}

func (s *SlotBuilder) BuildDomain() (*slot.TimeSlot, error) {
	return slot.NewTimeSlot(s.Date, s.StartTime, s.EndTime, s.MaxOrders)
}

// BuildReconstructed bypasses creation validation so tests can set the
// booked count directly.
func (s *SlotBuilder) BuildReconstructed() *slot.TimeSlot {
	return slot.ReconstructTimeSlot(
		uuid.New(),
		s.Date,
		s.StartTime,
		s.EndTime,
		s.MaxOrders,
		s.CurrentOrders,
		time.Now().UTC(),
	)
}
