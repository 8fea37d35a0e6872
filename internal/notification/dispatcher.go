package notification

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/radoraza-hash/hair-style-it/internal/domain/booking"
	"github.com/radoraza-hash/hair-style-it/internal/metrics"
)

const sendTimeout = 15 * time.Second

// Dispatcher sends confirmations in the background. Failures are logged and
// never reach the caller.
type Dispatcher struct {
	sender Sender
	logger *zap.Logger
	queue  chan Confirmation
	done   chan struct{}
	once   sync.Once

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(sender Sender, logger *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		logger: logger.Named("notification"),
		queue:  make(chan Confirmation, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for c := range d.queue {
		if err := d.send(c); err != nil {
			metrics.NotificationFailures.WithLabelValues("send").Inc()
			d.logger.Error("confirmation not sent",
				zap.String("booking_date", c.BookingDate),
				zap.String("booking_time", c.BookingTime),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) send(c Confirmation) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &booking.NotificationError{Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	if err := d.sender.SendConfirmation(ctx, c); err != nil {
		return &booking.NotificationError{Err: err}
	}
	return nil
}

// Notify queues c and returns immediately. A full or closed queue drops it.
func (d *Dispatcher) Notify(c Confirmation) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		metrics.NotificationFailures.WithLabelValues("closed").Inc()
		d.logger.Warn("notification dispatcher closed, dropping confirmation",
			zap.String("booking_date", c.BookingDate),
			zap.String("booking_time", c.BookingTime),
		)
		return
	}

	select {
	case d.queue <- c:
	default:
		metrics.NotificationFailures.WithLabelValues("queue_full").Inc()
		d.logger.Warn("notification queue full, dropping confirmation",
			zap.String("booking_date", c.BookingDate),
			zap.String("booking_time", c.BookingTime),
		)
	}
}

// Close waits for queued confirmations to be attempted.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		d.mu.Lock()
		d.closed = true
		close(d.queue)
		d.mu.Unlock()
	})
	<-d.done
}
