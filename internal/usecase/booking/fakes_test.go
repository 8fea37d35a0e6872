package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/radoraza-hash/hair-style-it/internal/audit"
	domain "github.com/radoraza-hash/hair-style-it/internal/domain/booking"
	"github.com/radoraza-hash/hair-style-it/internal/models"
	"github.com/radoraza-hash/hair-style-it/internal/notification"
	"github.com/radoraza-hash/hair-style-it/internal/realtime"
	"github.com/radoraza-hash/hair-style-it/internal/timezone"
)

// memoryRepo is an in-memory domain.Repository that also feeds the resolver.
type memoryRepo struct {
	mu        sync.Mutex
	services  map[uuid.UUID]models.Service
	options   map[uuid.UUID]models.Option
	barbers   map[uuid.UUID]models.Barber
	planning  []models.PlanningEntry
	bookings  []models.Booking
	insertErr error
	bookedErr error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		services: map[uuid.UUID]models.Service{},
		options:  map[uuid.UUID]models.Option{},
		barbers:  map[uuid.UUID]models.Barber{},
	}
}

func (r *memoryRepo) ListServices(context.Context) ([]models.Service, error) {
	var out []models.Service
	for _, s := range r.services {
		out = append(out, s)
	}
	return out, nil
}

func (r *memoryRepo) GetService(_ context.Context, id uuid.UUID) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (r *memoryRepo) ListOptions(context.Context) ([]models.Option, error) {
	var out []models.Option
	for _, o := range r.options {
		out = append(out, o)
	}
	return out, nil
}

func (r *memoryRepo) GetOptions(_ context.Context, ids []uuid.UUID) ([]models.Option, error) {
	out := []models.Option{}
	for _, id := range ids {
		o, ok := r.options[id]
		if !ok {
			return nil, domain.ErrNotFound
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *memoryRepo) ListBarbers(_ context.Context, activeOnly bool) ([]models.Barber, error) {
	var out []models.Barber
	for _, b := range r.barbers {
		if !activeOnly || b.IsActive {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memoryRepo) GetBarber(_ context.Context, id uuid.UUID) (*models.Barber, error) {
	b, ok := r.barbers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &b, nil
}

func (r *memoryRepo) ListPlanningBetween(_ context.Context, from, to time.Time) ([]models.PlanningEntry, error) {
	var out []models.PlanningEntry
	for _, e := range r.planning {
		if !e.Date.Before(from) && !e.Date.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memoryRepo) ListBookedTimes(_ context.Context, barberID uuid.UUID, day time.Time) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.bookedErr != nil {
		return nil, r.bookedErr
	}
	var out []string
	for _, b := range r.bookings {
		if b.BarberID == barberID && b.BookingDate.Equal(day) && b.Status == string(domain.StatusConfirmed) {
			out = append(out, b.BookingTime)
		}
	}
	return out, nil
}

// CreateBooking mimics the partial unique index on confirmed slots.
func (r *memoryRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.insertErr != nil {
		return r.insertErr
	}
	for _, existing := range r.bookings {
		if existing.BarberID == b.BarberID &&
			existing.BookingDate.Equal(b.BookingDate) &&
			existing.BookingTime == b.BookingTime &&
			existing.Status == string(domain.StatusConfirmed) {
			return domain.ErrSlotTaken
		}
	}
	b.ID = uuid.New()
	b.CreatedAt = time.Now()
	r.bookings = append(r.bookings, *b)
	return nil
}

type memoryDrafts struct {
	drafts  map[uuid.UUID]domain.Draft
	saveErr error
}

func newMemoryDrafts() *memoryDrafts {
	return &memoryDrafts{drafts: map[uuid.UUID]domain.Draft{}}
}

func (s *memoryDrafts) Get(_ context.Context, id uuid.UUID) (*domain.Draft, error) {
	d, ok := s.drafts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &d, nil
}

func (s *memoryDrafts) Save(_ context.Context, d *domain.Draft) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.drafts[d.ID] = *d
	return nil
}

func (s *memoryDrafts) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.drafts, id)
	return nil
}

type recorder struct {
	mu            sync.Mutex
	confirmations []notification.Confirmation
	audits        []audit.Event
	events        []realtime.Event
	publishErr    error
}

func (r *recorder) Notify(c notification.Confirmation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.confirmations = append(r.confirmations, c)
}

func (r *recorder) Dispatch(ev audit.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.audits = append(r.audits, ev)
}

func (r *recorder) Publish(_ context.Context, ev realtime.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return r.publishErr
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var errStorage = errors.New("connection refused")

// Friday 16 October 2026, 10:00 in the salon.
var now = time.Date(2026, 10, 16, 10, 0, 0, 0, timezone.Location("Europe/Paris"))

var (
	nextMonday   = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	nextSaturday = time.Date(2026, 10, 24, 0, 0, 0, 0, time.UTC)
)
