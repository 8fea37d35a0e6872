package jobs

import (
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radoraza-hash/hair-style-it/internal/timezone"
)

func TestRetentionCutoff(t *testing.T) {
	now := time.Date(2026, 10, 16, 3, 0, 0, 0, timezone.Location("Europe/Paris"))
	assert.Equal(t, "2026-07-18", timezone.FormatDay(RetentionCutoff(now, 90)))
	assert.Equal(t, "2026-10-16", timezone.FormatDay(RetentionCutoff(now, 0)))
}

func TestRetentionSpecParses(t *testing.T) {
	sched, err := cron.ParseStandard(planningRetentionSpec)
	require.NoError(t, err)

	from := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 10, 17, 3, 0, 0, 0, time.UTC), sched.Next(from))
}
