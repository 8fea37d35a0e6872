package availability

import (
	"context"
	"sync"

	"github.com/radoraza-hash/hair-style-it/internal/domain/booking"
	"github.com/radoraza-hash/hair-style-it/internal/metrics"
)

// Sequenced runs query under a fresh token. The answer is returned with
// booking.ErrDraftStale when another query for key was issued meanwhile.
func Sequenced[T any](
	ctx context.Context,
	seq Sequencer,
	key string,
	query func() T,
) (T, error) {

	var zero T

	token, err := seq.Next(ctx, key)
	if err != nil {
		return zero, err
	}

	out := query()

	latest, err := seq.Latest(ctx, key)
	if err != nil {
		return zero, err
	}
	if latest != token {
		metrics.StaleSlotResponses.Inc()
		return out, booking.ErrDraftStale
	}
	return out, nil
}

// MemorySequencer keeps tokens in process memory.
type MemorySequencer struct {
	mu     sync.Mutex
	latest map[string]uint64
}

func NewMemorySequencer() *MemorySequencer {
	return &MemorySequencer{latest: make(map[string]uint64)}
}

func (s *MemorySequencer) Next(_ context.Context, key string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest[key]++
	return s.latest[key], nil
}

func (s *MemorySequencer) Latest(_ context.Context, key string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.latest[key], nil
}
