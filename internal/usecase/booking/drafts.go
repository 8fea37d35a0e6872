package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/radoraza-hash/hair-style-it/internal/availability"
	domain "github.com/radoraza-hash/hair-style-it/internal/domain/booking"
	"github.com/radoraza-hash/hair-style-it/internal/models"
	"github.com/radoraza-hash/hair-style-it/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

// DraftChanges lists the selections to apply; nil fields are left as they are.
type DraftChanges struct {
	ServiceID      *uuid.UUID
	OptionIDs      *[]uuid.UUID
	ToggleOptionID *uuid.UUID
	BarberID       *uuid.UUID
	Date           *string
	Time           *string

	Phone *string
	Email *string
	Name  *string
}

type SlotsOutput struct {
	Draft *domain.Draft
	Slots availability.Slots
	Stale bool
}

// ======================================================
// USE CASE
// ======================================================

type Drafts struct {
	store      domain.DraftStore
	repo       domain.Repository
	dates      Availability
	seq        availability.Sequencer
	submit     *SubmitBooking
	windowDays int
	logger     *zap.Logger
}

func NewDrafts(
	store domain.DraftStore,
	repo domain.Repository,
	dates Availability,
	seq availability.Sequencer,
	submit *SubmitBooking,
	windowDays int,
	logger *zap.Logger,
) *Drafts {
	return &Drafts{
		store:      store,
		repo:       repo,
		dates:      dates,
		seq:        seq,
		submit:     submit,
		windowDays: windowDays,
		logger:     logger.Named("drafts"),
	}
}

func (uc *Drafts) Create(ctx context.Context) (*domain.Draft, error) {
	d := domain.NewDraft()
	if err := uc.save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (uc *Drafts) Get(ctx context.Context, id uuid.UUID) (*domain.Draft, error) {
	return uc.store.Get(ctx, id)
}

func (uc *Drafts) Update(
	ctx context.Context,
	id uuid.UUID,
	ch DraftChanges,
) (*domain.Draft, error) {

	d, err := uc.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// A new barber or day supersedes any slot query still in flight.
	if ch.BarberID != nil || ch.Date != nil {
		if _, err := uc.seq.Next(ctx, d.ID.String()); err != nil {
			uc.logger.Warn("sequence bump failed", zap.Error(err))
		}
	}

	if err := uc.Apply(ctx, d, ch); err != nil {
		return nil, err
	}

	if err := uc.save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Assemble builds a complete draft in one go, for clients that keep their own state.
func (uc *Drafts) Assemble(ctx context.Context, ch DraftChanges) (*domain.Draft, error) {
	d := domain.NewDraft()
	if err := uc.Apply(ctx, d, ch); err != nil {
		return nil, err
	}
	return d, nil
}

// Apply mutates d in a fixed order: service, options, barber, date, time, contact.
func (uc *Drafts) Apply(ctx context.Context, d *domain.Draft, ch DraftChanges) error {

	// --------------------------------------------------
	// Service / options
	// --------------------------------------------------
	if ch.ServiceID != nil {
		s, err := uc.repo.GetService(ctx, *ch.ServiceID)
		if err != nil {
			return lookupError("service", err)
		}
		d.SetService(*s)
	}

	if ch.OptionIDs != nil {
		opts, err := uc.repo.GetOptions(ctx, *ch.OptionIDs)
		if err != nil {
			return lookupError("options", err)
		}
		d.SetOptions(opts)
	}

	if ch.ToggleOptionID != nil {
		opts, err := uc.repo.GetOptions(ctx, []uuid.UUID{*ch.ToggleOptionID})
		if err != nil {
			return lookupError("options", err)
		}
		d.ToggleOption(opts[0])
	}

	// --------------------------------------------------
	// Barber
	// --------------------------------------------------
	if ch.BarberID != nil {
		b, err := uc.repo.GetBarber(ctx, *ch.BarberID)
		if err != nil {
			return lookupError("barber", err)
		}
		if !b.IsActive {
			return &domain.ValidationError{Field: "barber", Reason: domain.ReasonUnavailable}
		}
		d.SetBarber(*b)

		if d.Date != nil && ch.Date == nil && !uc.dates.IsDateSelectable(ctx, *d.Date, &b.ID) {
			d.ClearDate()
		}
	}

	// --------------------------------------------------
	// Date
	// --------------------------------------------------
	if ch.Date != nil {
		day, err := timezone.ParseDay(*ch.Date)
		if err != nil {
			return &domain.ValidationError{Field: "date", Reason: domain.ReasonInvalid}
		}
		if !uc.withinWindow(day) || !uc.dates.IsDateSelectable(ctx, day, d.BarberID()) {
			return &domain.ValidationError{Field: "date", Reason: domain.ReasonNotSelectable}
		}
		d.SetDate(day)
	}

	// --------------------------------------------------
	// Time
	// --------------------------------------------------
	if ch.Time != nil {
		if err := uc.applyTime(ctx, d, *ch.Time); err != nil {
			return err
		}
	}

	// --------------------------------------------------
	// Contact
	// --------------------------------------------------
	if ch.Phone != nil || ch.Email != nil || ch.Name != nil {
		phone, email, name := d.Phone, d.Email, d.Name
		if ch.Phone != nil {
			phone = *ch.Phone
		}
		if ch.Email != nil {
			email = *ch.Email
		}
		if ch.Name != nil {
			name = *ch.Name
		}
		d.SetContact(phone, email, name)
	}

	return nil
}

func (uc *Drafts) applyTime(ctx context.Context, d *domain.Draft, label string) error {
	if label == "" {
		d.SetTime("")
		return nil
	}
	if !domain.IsFixedSlot(label) {
		return &domain.ValidationError{Field: "time", Reason: domain.ReasonInvalid}
	}
	if d.Barber == nil {
		return &domain.ValidationError{Field: "barber", Reason: domain.ReasonMissing}
	}
	if d.Date == nil {
		return &domain.ValidationError{Field: "date", Reason: domain.ReasonMissing}
	}

	slots := uc.dates.OpenSlots(ctx, *d.Date, d.Barber.ID)
	if !domain.Contains(slots.Labels, label) {
		return &domain.ValidationError{Field: "time", Reason: domain.ReasonUnavailable}
	}

	d.SetTime(label)
	return nil
}

func (uc *Drafts) withinWindow(day time.Time) bool {
	if uc.windowDays <= 0 {
		return true
	}
	last := uc.dates.Today().AddDate(0, 0, uc.windowDays)
	return !day.After(last)
}

// Slots answers the open slots for the draft's barber and day. A response
// overtaken by a newer query or selection change comes back with Stale set and
// leaves the draft untouched.
func (uc *Drafts) Slots(ctx context.Context, id uuid.UUID) (*SlotsOutput, error) {
	d, err := uc.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.Barber == nil {
		return nil, &domain.ValidationError{Field: "barber", Reason: domain.ReasonMissing}
	}
	if d.Date == nil {
		return nil, &domain.ValidationError{Field: "date", Reason: domain.ReasonMissing}
	}

	day, barberID := *d.Date, d.Barber.ID
	slots, err := availability.Sequenced(ctx, uc.seq, d.ID.String(), func() availability.Slots {
		return uc.dates.OpenSlots(ctx, day, barberID)
	})
	if errors.Is(err, domain.ErrDraftStale) {
		uc.logger.Debug("discarding stale slot response", zap.String("draft_id", d.ID.String()))
		return &SlotsOutput{Draft: d, Slots: slots, Stale: true}, nil
	}
	if err != nil {
		return nil, err
	}

	if d.Time != "" && !domain.Contains(slots.Labels, d.Time) {
		d.SetTime("")
		if err := uc.save(ctx, d); err != nil {
			return nil, err
		}
	}

	return &SlotsOutput{Draft: d, Slots: slots}, nil
}

// Submit runs the submission pipeline on a stored draft, then forgets the draft.
func (uc *Drafts) Submit(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	d, err := uc.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	b, err := uc.submit.Execute(ctx, d)
	if err != nil {
		return nil, err
	}

	if err := uc.store.Delete(ctx, id); err != nil {
		uc.logger.Warn("submitted draft not deleted", zap.String("draft_id", id.String()), zap.Error(err))
	}
	return b, nil
}

func (uc *Drafts) save(ctx context.Context, d *domain.Draft) error {
	d.UpdatedAt = time.Now().UTC()
	return uc.store.Save(ctx, d)
}
