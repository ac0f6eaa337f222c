package order

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusInMaking  Status = "in_making"
	StatusReady     Status = "ready"
	StatusPickedUp  Status = "picked_up"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInMaking, StatusReady, StatusPickedUp, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsStaffAssignable reports whether staff may set the status directly through
// the kitchen workflow. Any forward jump between these is accepted; cancelled
// is reachable only through the cancellation flow.
func (s Status) IsStaffAssignable() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInMaking, StatusReady, StatusPickedUp:
		return true
	default:
		return false
	}
}

// IsActive reports whether the order is still ahead of pickup and eligible for
// the auto-sweep.
func (s Status) IsActive() bool {
	return s == StatusConfirmed || s == StatusInMaking
}

// Minutes-to-pickup thresholds for the time-based sweep.
const (
	ReadyThresholdMin    = 2
	InMakingThresholdMin = 15
)

// SweepTarget returns the status the sweep would force for an order the given
// number of minutes before pickup, and whether a change is due.
func SweepTarget(current Status, minutesToPickup int) (Status, bool) {
	if !current.IsActive() {
		return current, false
	}
	if minutesToPickup <= ReadyThresholdMin {
		return StatusReady, current != StatusReady
	}
	if minutesToPickup <= InMakingThresholdMin && current == StatusConfirmed {
		return StatusInMaking, true
	}
	return current, false
}

// Urgency classifies how close an active order is to its pickup time, for the
// sweep preview.
func Urgency(minutesToPickup int) string {
	switch {
	case minutesToPickup <= ReadyThresholdMin:
		return "critical"
	case minutesToPickup <= InMakingThresholdMin:
		return "high"
	default:
		return "normal"
	}
}
