package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radoraza-hash/hair-style-it/internal/domain/booking"
)

func TestMemorySequencerIsPerKey(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySequencer()

	a1, _ := s.Next(ctx, "a")
	a2, _ := s.Next(ctx, "a")
	b1, _ := s.Next(ctx, "b")

	assert.Equal(t, uint64(1), a1)
	assert.Equal(t, uint64(2), a2)
	assert.Equal(t, uint64(1), b1)

	latest, err := s.Latest(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), latest)
}

func TestSequencedLatestWins(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySequencer()

	out, err := Sequenced(ctx, s, "draft", func() string { return "fresh" })
	require.NoError(t, err)
	assert.Equal(t, "fresh", out)
}

func TestSequencedDiscardsSupersededQuery(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySequencer()

	var inner error
	out, err := Sequenced(ctx, s, "draft", func() string {
		// A newer query for the same session starts and finishes first.
		_, inner = Sequenced(ctx, s, "draft", func() string { return "newer" })
		return "older"
	})

	require.NoError(t, inner)
	assert.ErrorIs(t, err, booking.ErrDraftStale)
	assert.Equal(t, "older", out)
}
