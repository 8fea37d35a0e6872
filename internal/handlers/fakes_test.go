package handlers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/radoraza-hash/hair-style-it/internal/audit"
	"github.com/radoraza-hash/hair-style-it/internal/availability"
	domain "github.com/radoraza-hash/hair-style-it/internal/domain/booking"
	"github.com/radoraza-hash/hair-style-it/internal/models"
	"github.com/radoraza-hash/hair-style-it/internal/notification"
	"github.com/radoraza-hash/hair-style-it/internal/realtime"
	"github.com/radoraza-hash/hair-style-it/internal/timezone"
	ucBooking "github.com/radoraza-hash/hair-style-it/internal/usecase/booking"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubRepo struct {
	mu        sync.Mutex
	services  []models.Service
	options   []models.Option
	barbers   []models.Barber
	planning  []models.PlanningEntry
	bookings  []models.Booking
	bookedErr error
	insertErr error
}

func (r *stubRepo) ListServices(context.Context) ([]models.Service, error) {
	return r.services, nil
}

func (r *stubRepo) GetService(_ context.Context, id uuid.UUID) (*models.Service, error) {
	for _, s := range r.services {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubRepo) ListOptions(context.Context) ([]models.Option, error) {
	return r.options, nil
}

func (r *stubRepo) GetOptions(_ context.Context, ids []uuid.UUID) ([]models.Option, error) {
	out := []models.Option{}
	for _, id := range ids {
		found := false
		for _, o := range r.options {
			if o.ID == id {
				out = append(out, o)
				found = true
			}
		}
		if !found {
			return nil, domain.ErrNotFound
		}
	}
	return out, nil
}

func (r *stubRepo) ListBarbers(_ context.Context, activeOnly bool) ([]models.Barber, error) {
	var out []models.Barber
	for _, b := range r.barbers {
		if !activeOnly || b.IsActive {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *stubRepo) GetBarber(_ context.Context, id uuid.UUID) (*models.Barber, error) {
	for _, b := range r.barbers {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubRepo) ListPlanningBetween(_ context.Context, from, to time.Time) ([]models.PlanningEntry, error) {
	var out []models.PlanningEntry
	for _, e := range r.planning {
		if !e.Date.Before(from) && !e.Date.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubRepo) ListBookedTimes(_ context.Context, barberID uuid.UUID, day time.Time) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.bookedErr != nil {
		return nil, r.bookedErr
	}
	var out []string
	for _, b := range r.bookings {
		if b.BarberID == barberID && b.BookingDate.Equal(day) {
			out = append(out, b.BookingTime)
		}
	}
	return out, nil
}

func (r *stubRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.insertErr != nil {
		return r.insertErr
	}
	b.ID = uuid.New()
	r.bookings = append(r.bookings, *b)
	return nil
}

type stubDrafts struct {
	mu     sync.Mutex
	drafts map[uuid.UUID]domain.Draft
}

func (s *stubDrafts) Get(_ context.Context, id uuid.UUID) (*domain.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &d, nil
}

func (s *stubDrafts) Save(_ context.Context, d *domain.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drafts[d.ID] = *d
	return nil
}

func (s *stubDrafts) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.drafts, id)
	return nil
}

type sideEffects struct {
	mu            sync.Mutex
	confirmations []notification.Confirmation
	audits        []audit.Event
	events        []realtime.Event
}

func (s *sideEffects) Notify(c notification.Confirmation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.confirmations = append(s.confirmations, c)
}

func (s *sideEffects) Dispatch(ev audit.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audits = append(s.audits, ev)
}

func (s *sideEffects) Publish(_ context.Context, ev realtime.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var errStorage = errors.New("connection refused")

// Friday 16 October 2026, 10:00 in the salon.
var salonNow = time.Date(2026, 10, 16, 10, 0, 0, 0, timezone.Location("Europe/Paris"))

type testAPI struct {
	repo    *stubRepo
	drafts  *stubDrafts
	effects *sideEffects
	router  *gin.Engine

	service models.Service
	option  models.Option
	barber  models.Barber
}

func newTestAPI() *testAPI {
	a := &testAPI{
		drafts:  &stubDrafts{drafts: map[uuid.UUID]domain.Draft{}},
		effects: &sideEffects{},
		service: models.Service{ID: uuid.New(), Name: "Coupe + barbe", Price: 20, DurationMin: 60},
		option:  models.Option{ID: uuid.New(), Name: "Brushing", Price: 10, DurationMin: 20},
		barber:  models.Barber{ID: uuid.New(), Name: "Karim", IsActive: true},
	}
	a.repo = &stubRepo{
		services: []models.Service{a.service},
		options:  []models.Option{a.option},
		barbers: []models.Barber{
			a.barber,
			{ID: uuid.New(), Name: "Absent", IsActive: false},
		},
	}

	logger := zap.NewNop()
	resolver := availability.NewResolver(a.repo, fixedClock{now: salonNow}, logger)
	submit := ucBooking.NewSubmitBooking(a.repo, resolver, a.effects, a.effects, a.effects, logger)
	drafts := ucBooking.NewDrafts(a.drafts, a.repo, resolver, availability.NewMemorySequencer(), submit, 60, logger)

	public := NewPublicHandler(a.repo, resolver, drafts, submit, 60, logger)
	draft := NewDraftHandler(drafts)

	r := gin.New()
	api := r.Group("/api/public")
	api.GET("/services", public.ListServices)
	api.GET("/barbers", public.ListBarbers)
	api.GET("/availability/dates", public.AvailableDates)
	api.GET("/availability/slots", public.AvailableSlots)
	api.POST("/bookings", public.CreateBooking)
	api.POST("/drafts", draft.Create)
	api.GET("/drafts/:id", draft.Get)
	api.PATCH("/drafts/:id", draft.Update)
	api.POST("/drafts/:id/slots", draft.Slots)
	api.POST("/drafts/:id/submit", draft.Submit)
	a.router = r

	return a
}
