package booking

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrSlotTaken  = errors.New("slot already booked")
	ErrDraftStale = errors.New("stale availability response")
)

const (
	ReasonMissing       = "missing"
	ReasonInvalid       = "invalid_format"
	ReasonNotSelectable = "not_selectable"
	ReasonUnavailable   = "unavailable"

	ReasonSlotTaken    = "slot_taken"
	ReasonInsertFailed = "insert_failed"
	ReasonStorage      = "storage_unavailable"
)

// ValidationError is a missing or malformed draft field. Shown to the user, never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// PersistenceError is a failed booking insert. No retry, nothing persisted.
type PersistenceError struct {
	Reason string
	Err    error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist booking (%s): %v", e.Reason, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// AvailabilityQueryError is a storage failure while computing open slots.
type AvailabilityQueryError struct {
	Err error
}

func (e *AvailabilityQueryError) Error() string {
	return fmt.Sprintf("availability query: %v", e.Err)
}

func (e *AvailabilityQueryError) Unwrap() error {
	return e.Err
}

// NotificationError is a failed confirmation send. Logged only.
type NotificationError struct {
	Err error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("confirmation notification: %v", e.Err)
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
