package slot

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidWindow   = errors.New("start time must be before end time")
	ErrInvalidCapacity = errors.New("capacity must be positive")
	ErrSlotFull        = errors.New("slot is full")
	ErrSlotExpired     = errors.New("slot start time has passed")
)

// TimeSlot is a bookable pickup window with finite order capacity. The booked
// count is the single source of truth for remaining capacity; the displayed
// status is always derived from (count, capacity, now), never stored.
type TimeSlot struct {
	id            uuid.UUID
	date          time.Time
	startTime     time.Duration // offset from midnight
	endTime       time.Duration
	maxOrders     int32
	currentOrders int32
	createdAt     time.Time
}

func NewTimeSlot(date time.Time, startTime, endTime time.Duration, maxOrders int32) (*TimeSlot, error) {
	if startTime >= endTime {
		return nil, ErrInvalidWindow
	}
	if maxOrders <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &TimeSlot{
		id:        uuid.New(),
		date:      truncateToDay(date),
		startTime: startTime,
		endTime:   endTime,
		maxOrders: maxOrders,
	}, nil
}

func ReconstructTimeSlot(
	id uuid.UUID,
	date time.Time,
	startTime, endTime time.Duration,
	maxOrders, currentOrders int32,
	createdAt time.Time,
) *TimeSlot {
	return &TimeSlot{
		id:            id,
		date:          truncateToDay(date),
		startTime:     startTime,
		endTime:       endTime,
		maxOrders:     maxOrders,
		currentOrders: currentOrders,
		createdAt:     createdAt,
	}
}

func (s *TimeSlot) ID() uuid.UUID        { return s.id }
func (s *TimeSlot) Date() time.Time      { return s.date }
func (s *TimeSlot) MaxOrders() int32     { return s.maxOrders }
func (s *TimeSlot) CurrentOrders() int32 { return s.currentOrders }
func (s *TimeSlot) CreatedAt() time.Time { return s.createdAt }

func (s *TimeSlot) StartTime() time.Duration { return s.startTime }
func (s *TimeSlot) EndTime() time.Duration   { return s.endTime }

// StartAt anchors the start-of-window offset onto the slot date.
func (s *TimeSlot) StartAt() time.Time {
	return s.date.Add(s.startTime)
}

func (s *TimeSlot) EndAt() time.Time {
	return s.date.Add(s.endTime)
}

func (s *TimeSlot) Remaining() int32 {
	return s.maxOrders - s.currentOrders
}

func (s *TimeSlot) IsFull() bool {
	return s.currentOrders >= s.maxOrders
}

func (s *TimeSlot) HasStarted(now time.Time) bool {
	return !s.StartAt().After(now)
}

// Status derives the displayed state from counts and wall-clock time.
func (s *TimeSlot) Status(now time.Time) Status {
	if s.HasStarted(now) {
		return StatusDisabled
	}
	return CapacityStatus(s.currentOrders, s.maxOrders)
}

// CapacityStatus is the pure count-based part of the derivation, shared with
// the ordering path which recomputes it after each increment/decrement.
func CapacityStatus(current, max int32) Status {
	switch {
	case current >= max:
		return StatusFull
	case float64(current) >= float64(max)*AlmostFullRatio:
		return StatusAlmostFull
	default:
		return StatusAvailable
	}
}

// Reserve claims one unit of capacity. The persistence layer must call this
// under a row lock so the check and the increment are atomic.
func (s *TimeSlot) Reserve(now time.Time) error {
	if s.HasStarted(now) {
		return ErrSlotExpired
	}
	if s.IsFull() {
		return ErrSlotFull
	}
	s.currentOrders++
	return nil
}

// Release returns one unit of capacity, floored at zero.
func (s *TimeSlot) Release() {
	if s.currentOrders > 0 {
		s.currentOrders--
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
