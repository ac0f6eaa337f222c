package slot

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusAvailable  Status = "available"
	StatusAlmostFull Status = "almost_full"
	StatusFull       Status = "full"
	StatusDisabled   Status = "disabled"
)

func (s Status) String() string {
	return string(s)
}

// AlmostFullRatio is the booked fraction at which a slot is surfaced as filling up.
const AlmostFullRatio = 0.7

// Color returns the UI hint the storefront renders next to a slot.
func (s Status) Color() string {
	switch s {
	case StatusAlmostFull:
		return "#eab308"
	case StatusFull, StatusDisabled:
		return "#ef4444"
	default:
		return "#22c55e"
	}
}

// FormatTimeOfDay renders a midnight offset as "15:04".
func FormatTimeOfDay(d time.Duration) string {
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}

