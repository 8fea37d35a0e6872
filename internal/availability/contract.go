package availability

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/radoraza-hash/hair-style-it/internal/models"
	"github.com/radoraza-hash/hair-style-it/internal/timezone"
)

// Store is the storage surface the resolver reads from.
type Store interface {
	ListPlanningBetween(ctx context.Context, from, to time.Time) ([]models.PlanningEntry, error)
	ListBookedTimes(ctx context.Context, barberID uuid.UUID, day time.Time) ([]string, error)
}

type TimeProvider interface {
	Now() time.Time
}

type RealTimeProvider struct {
	tz string
}

func NewRealTimeProvider(tz string) RealTimeProvider {
	return RealTimeProvider{tz: tz}
}

func (p RealTimeProvider) Now() time.Time {
	return timezone.NowIn(p.tz)
}

// Sequencer issues increasing query tokens per key (one key per booking session).
type Sequencer interface {
	Next(ctx context.Context, key string) (uint64, error)
	Latest(ctx context.Context, key string) (uint64, error)
}
