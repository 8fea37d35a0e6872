package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/radoraza-hash/hair-style-it/internal/models"
	"github.com/radoraza-hash/hair-style-it/internal/timezone"
)

type PlanningKind string

const (
	KindHoliday       PlanningKind = "holiday"
	KindBarberAbsence PlanningKind = "barber_absence"
)

func (k PlanningKind) Valid() bool {
	return k == KindHoliday || k == KindBarberAbsence
}

// ValidatePlanningEntry enforces that barber_id is set iff the entry is an absence.
func ValidatePlanningEntry(kind PlanningKind, barberID *uuid.UUID) error {
	switch {
	case !kind.Valid():
		return &ValidationError{Field: "kind", Reason: ReasonInvalid}
	case kind == KindBarberAbsence && barberID == nil:
		return &ValidationError{Field: "barber_id", Reason: ReasonMissing}
	case kind == KindHoliday && barberID != nil:
		return &ValidationError{Field: "barber_id", Reason: ReasonInvalid}
	}
	return nil
}

func IsWeekend(day time.Time) bool {
	wd := day.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsDateSelectable reports whether a customer may pick day.
// Both day and today are calendar days (see timezone.Day); entries are the
// planning rows known for that day, barberID is optional.
func IsDateSelectable(
	day time.Time,
	today time.Time,
	entries []models.PlanningEntry,
	barberID *uuid.UUID,
) bool {

	day = timezone.Day(day)

	if day.Before(timezone.Day(today)) {
		return false
	}

	if IsWeekend(day) {
		return false
	}

	for _, e := range entries {
		if !timezone.Day(e.Date).Equal(day) {
			continue
		}

		switch PlanningKind(e.Kind) {
		case KindHoliday:
			return false
		case KindBarberAbsence:
			if barberID != nil && e.BarberID != nil && *e.BarberID == *barberID {
				return false
			}
		}
	}

	return true
}
