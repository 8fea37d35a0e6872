package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/radoraza-hash/hair-style-it/internal/audit"
	domain "github.com/radoraza-hash/hair-style-it/internal/domain/booking"
	"github.com/radoraza-hash/hair-style-it/internal/metrics"
	"github.com/radoraza-hash/hair-style-it/internal/models"
	"github.com/radoraza-hash/hair-style-it/internal/notification"
	"github.com/radoraza-hash/hair-style-it/internal/realtime"
	"github.com/radoraza-hash/hair-style-it/internal/timezone"
)

// ======================================================
// USE CASE
// ======================================================

type SubmitBooking struct {
	repo     domain.Repository
	dates    Availability
	notifier Notifier
	audit    AuditSink
	events   EventPublisher
	logger   *zap.Logger
}

func NewSubmitBooking(
	repo domain.Repository,
	dates Availability,
	notifier Notifier,
	audit AuditSink,
	events EventPublisher,
	logger *zap.Logger,
) *SubmitBooking {
	return &SubmitBooking{
		repo:     repo,
		dates:    dates,
		notifier: notifier,
		audit:    audit,
		events:   events,
		logger:   logger.Named("submit_booking"),
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SubmitBooking) Execute(
	ctx context.Context,
	draft *domain.Draft,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Required fields and formats
	// --------------------------------------------------
	if err := draft.Validate(); err != nil {
		return nil, uc.fail("validation", err)
	}

	// --------------------------------------------------
	// 2. Catalog prices, re-read from storage
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, draft.Service.ID)
	if err != nil {
		return nil, uc.fail("lookup", lookupError("service", err))
	}

	optionIDs := make([]uuid.UUID, 0, len(draft.Options))
	for _, o := range draft.Options {
		optionIDs = append(optionIDs, o.ID)
	}
	options, err := uc.repo.GetOptions(ctx, optionIDs)
	if err != nil {
		return nil, uc.fail("lookup", lookupError("options", err))
	}

	draft.SetService(*service)
	draft.SetOptions(options)

	// --------------------------------------------------
	// 3. Barber and day still bookable
	// --------------------------------------------------
	barber, err := uc.repo.GetBarber(ctx, draft.Barber.ID)
	if err != nil {
		return nil, uc.fail("lookup", lookupError("barber", err))
	}
	if !barber.IsActive {
		return nil, uc.fail("validation", &domain.ValidationError{Field: "barber", Reason: domain.ReasonUnavailable})
	}

	if !uc.dates.IsDateSelectable(ctx, *draft.Date, &barber.ID) {
		return nil, uc.fail("validation", &domain.ValidationError{Field: "date", Reason: domain.ReasonNotSelectable})
	}

	// --------------------------------------------------
	// 4. Single insert, status fixed, total derived
	// --------------------------------------------------
	b := &models.Booking{
		CustomerName:  draft.Name,
		CustomerEmail: draft.Email,
		CustomerPhone: draft.Phone,
		BarberID:      barber.ID,
		ServiceName:   service.Name,
		ServicePrice:  service.Price,
		Options:       draft.BookedOptions(),
		TotalPrice:    draft.TotalPrice(),
		BookingDate:   timezone.Day(*draft.Date),
		BookingTime:   draft.Time,
		Status:        string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		reason := domain.ReasonInsertFailed
		if errors.Is(err, domain.ErrSlotTaken) {
			reason = domain.ReasonSlotTaken
		}
		return nil, uc.fail(reason, &domain.PersistenceError{Reason: reason, Err: err})
	}

	b.Barber = barber
	metrics.BookingsCreated.Inc()
	uc.logger.Info("booking confirmed",
		zap.String("booking_id", b.ID.String()),
		zap.String("barber_id", b.BarberID.String()),
		zap.String("date", timezone.FormatDay(b.BookingDate)),
		zap.String("time", b.BookingTime),
	)

	// --------------------------------------------------
	// 5. Side effects, none of them can fail the booking
	// --------------------------------------------------
	if draft.Email != "" {
		uc.notifier.Notify(notification.FromBooking(b, barber.Name))
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{
			"date":        timezone.FormatDay(b.BookingDate),
			"time":        b.BookingTime,
			"total_price": b.TotalPrice,
		},
	})

	if err := uc.events.Publish(ctx, realtime.Event{
		Type:    realtime.EventBookingCreated,
		ID:      b.ID.String(),
		Payload: b,
	}); err != nil {
		uc.logger.Warn("booking event not published", zap.Error(err))
	}

	return b, nil
}

func (uc *SubmitBooking) fail(reason string, err error) error {
	metrics.SubmissionFailures.WithLabelValues(reason).Inc()
	uc.logger.Info("booking rejected", zap.String("reason", reason), zap.Error(err))
	return err
}

// lookupError maps a missing catalog row to a validation error; anything else
// is a storage failure.
func lookupError(field string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.ValidationError{Field: field, Reason: domain.ReasonUnavailable}
	}
	return &domain.PersistenceError{Reason: domain.ReasonStorage, Err: err}
}
