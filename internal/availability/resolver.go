package availability

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/radoraza-hash/hair-style-it/internal/domain/booking"
	"github.com/radoraza-hash/hair-style-it/internal/metrics"
	"github.com/radoraza-hash/hair-style-it/internal/models"
	"github.com/radoraza-hash/hair-style-it/internal/timezone"
)

type Resolver struct {
	store  Store
	clock  TimeProvider
	policy Policy
	logger *zap.Logger
}

func NewResolver(store Store, clock TimeProvider, logger *zap.Logger) *Resolver {
	return &Resolver{
		store:  store,
		clock:  clock,
		policy: FailOpen,
		logger: logger.Named("availability"),
	}
}

func (r *Resolver) WithPolicy(p Policy) *Resolver {
	r.policy = p
	return r
}

// Today is the salon's current calendar day.
func (r *Resolver) Today() time.Time {
	return timezone.Day(r.clock.Now())
}

// IsDateSelectable fails closed: a planning lookup error makes the day unselectable.
func (r *Resolver) IsDateSelectable(
	ctx context.Context,
	day time.Time,
	barberID *uuid.UUID,
) bool {

	day = timezone.Day(day)

	entries, err := r.store.ListPlanningBetween(ctx, day, day)
	if err != nil {
		r.logger.Warn("planning query failed, date not selectable",
			zap.String("date", timezone.FormatDay(day)),
			zap.Error(err),
		)
		return false
	}

	return booking.IsDateSelectable(day, r.Today(), entries, barberID)
}

type DayAvailability struct {
	Date       time.Time
	Selectable bool
}

// Calendar evaluates days consecutive days starting at from, with one planning query.
func (r *Resolver) Calendar(
	ctx context.Context,
	from time.Time,
	days int,
	barberID *uuid.UUID,
) ([]DayAvailability, error) {

	from = timezone.Day(from)
	to := from.AddDate(0, 0, days-1)

	entries, err := r.store.ListPlanningBetween(ctx, from, to)
	if err != nil {
		return nil, &booking.AvailabilityQueryError{Err: err}
	}

	today := r.Today()
	out := make([]DayAvailability, 0, days)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		out = append(out, DayAvailability{
			Date:       d,
			Selectable: booking.IsDateSelectable(d, today, entriesOn(entries, d), barberID),
		})
	}
	return out, nil
}

func entriesOn(entries []models.PlanningEntry, day time.Time) []models.PlanningEntry {
	var out []models.PlanningEntry
	for _, e := range entries {
		if timezone.Day(e.Date).Equal(day) {
			out = append(out, e)
		}
	}
	return out
}

// Query reads confirmed bookings and returns the raw typed result.
func (r *Resolver) Query(
	ctx context.Context,
	day time.Time,
	barberID uuid.UUID,
) SlotsResult {

	booked, err := r.store.ListBookedTimes(ctx, barberID, timezone.Day(day))
	if err != nil {
		return Failed(err)
	}
	return Ok(booking.OpenSlots(booked))
}

// OpenSlots is Query with the failure policy applied.
func (r *Resolver) OpenSlots(
	ctx context.Context,
	day time.Time,
	barberID uuid.UUID,
) Slots {

	res := r.Query(ctx, day, barberID)
	if res.Err != nil {
		metrics.AvailabilityDegraded.Inc()
		r.logger.Error("slot query failed, applying fallback policy",
			zap.String("barber_id", barberID.String()),
			zap.String("date", timezone.FormatDay(day)),
			zap.Error(res.Err),
		)
	}
	return r.policy(res)
}
