package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/radoraza-hash/hair-style-it/internal/audit"
	"github.com/radoraza-hash/hair-style-it/internal/availability"
	"github.com/radoraza-hash/hair-style-it/internal/notification"
	"github.com/radoraza-hash/hair-style-it/internal/realtime"
)

// Availability is the resolver surface used by the booking flow.
type Availability interface {
	Today() time.Time
	IsDateSelectable(ctx context.Context, day time.Time, barberID *uuid.UUID) bool
	OpenSlots(ctx context.Context, day time.Time, barberID uuid.UUID) availability.Slots
}

type Notifier interface {
	Notify(c notification.Confirmation)
}

type AuditSink interface {
	Dispatch(ev audit.Event)
}

type EventPublisher interface {
	Publish(ctx context.Context, ev realtime.Event) error
}
