package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/radoraza-hash/hair-style-it/internal/availability"
	domain "github.com/radoraza-hash/hair-style-it/internal/domain/booking"
	"github.com/radoraza-hash/hair-style-it/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *BookingGormRepository) ListServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := r.db.WithContext(ctx).
		Order("position ASC, name ASC").
		Find(&services).Error; err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

func (r *BookingGormRepository) GetService(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &service, nil
}

func (r *BookingGormRepository) ListOptions(ctx context.Context) ([]models.Option, error) {
	var options []models.Option
	if err := r.db.WithContext(ctx).
		Order("position ASC, name ASC").
		Find(&options).Error; err != nil {
		return nil, fmt.Errorf("list options: %w", err)
	}
	return options, nil
}

// GetOptions returns the options in catalog order; any unknown id is ErrNotFound.
func (r *BookingGormRepository) GetOptions(ctx context.Context, ids []uuid.UUID) ([]models.Option, error) {
	if len(ids) == 0 {
		return []models.Option{}, nil
	}

	unique := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}

	var options []models.Option
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("position ASC, name ASC").
		Find(&options).Error; err != nil {
		return nil, fmt.Errorf("get options: %w", err)
	}
	if len(options) != len(unique) {
		return nil, domain.ErrNotFound
	}
	return options, nil
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (r *BookingGormRepository) ListBarbers(ctx context.Context, activeOnly bool) ([]models.Barber, error) {
	q := r.db.WithContext(ctx)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var barbers []models.Barber
	if err := q.Order("name ASC").Find(&barbers).Error; err != nil {
		return nil, fmt.Errorf("list barbers: %w", err)
	}
	return barbers, nil
}

func (r *BookingGormRepository) GetBarber(ctx context.Context, id uuid.UUID) (*models.Barber, error) {
	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &barber, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListPlanningBetween(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.PlanningEntry, error) {

	var entries []models.PlanningEntry
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list planning: %w", err)
	}
	return entries, nil
}

func (r *BookingGormRepository) ListBookedTimes(
	ctx context.Context,
	barberID uuid.UUID,
	day time.Time,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"barber_id = ? AND booking_date = ? AND status = ?",
			barberID,
			day,
			string(domain.StatusConfirmed),
		).
		Pluck("booking_time", &times).Error; err != nil {
		return nil, fmt.Errorf("list booked times: %w", err)
	}
	return times, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

// CreateBooking inserts b; the partial unique index on confirmed slots
// surfaces as domain.ErrSlotTaken.
func (r *BookingGormRepository) CreateBooking(ctx context.Context, b *models.Booking) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %v", domain.ErrSlotTaken, err)
		}
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

var (
	_ domain.Repository  = (*BookingGormRepository)(nil)
	_ availability.Store = (*BookingGormRepository)(nil)
)
