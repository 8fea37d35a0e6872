package booking

// ===============================
// Booking Status
// ===============================

type Status string

// Confirmed is the only status the booking flow produces.
const StatusConfirmed Status = "confirmed"

func InitialStatus() Status {
	return StatusConfirmed
}
