package availability

import "github.com/radoraza-hash/hair-style-it/internal/domain/booking"

// SlotsResult is the raw outcome of a slot query: either open slots or the storage error.
type SlotsResult struct {
	Slots []string
	Err   error
}

func Ok(slots []string) SlotsResult {
	return SlotsResult{Slots: slots}
}

func Failed(err error) SlotsResult {
	return SlotsResult{Err: &booking.AvailabilityQueryError{Err: err}}
}

// Slots is what callers get after the failure policy has been applied.
type Slots struct {
	Labels   []string `json:"slots"`
	Degraded bool     `json:"degraded"`
}

// Policy turns a failed query into an answer.
type Policy func(SlotsResult) Slots

// FailOpen offers every fixed slot when bookings cannot be read.
func FailOpen(r SlotsResult) Slots {
	if r.Err != nil {
		return Slots{Labels: booking.FixedSlots(), Degraded: true}
	}
	return Slots{Labels: r.Slots}
}

// FailClosed offers nothing when bookings cannot be read.
func FailClosed(r SlotsResult) Slots {
	if r.Err != nil {
		return Slots{Labels: []string{}, Degraded: true}
	}
	return Slots{Labels: r.Slots}
}
