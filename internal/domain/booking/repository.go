package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/radoraza-hash/hair-style-it/internal/models"
)

type Repository interface {
	// -------- Catalog --------
	ListServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, id uuid.UUID) (*models.Service, error)
	ListOptions(ctx context.Context) ([]models.Option, error)
	GetOptions(ctx context.Context, ids []uuid.UUID) ([]models.Option, error)

	// -------- Barber --------
	ListBarbers(ctx context.Context, activeOnly bool) ([]models.Barber, error)
	GetBarber(ctx context.Context, id uuid.UUID) (*models.Barber, error)

	// -------- Availability --------
	ListPlanningBetween(ctx context.Context, from, to time.Time) ([]models.PlanningEntry, error)
	ListBookedTimes(ctx context.Context, barberID uuid.UUID, day time.Time) ([]string, error)

	// -------- Booking --------
	CreateBooking(ctx context.Context, b *models.Booking) error
}

// DraftStore keeps in-progress drafts between requests.
type DraftStore interface {
	Get(ctx context.Context, id uuid.UUID) (*Draft, error)
	Save(ctx context.Context, d *Draft) error
	Delete(ctx context.Context, id uuid.UUID) error
}
