package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
)

func TestGormLoggerWritesThroughZap(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	gl := newGormLogger(zap.New(core), false)

	gl.Warn(context.Background(), "pool exhausted")
	gl.Info(context.Background(), "connected")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "gorm", entries[0].LoggerName)
	assert.Contains(t, entries[0].Message, "pool exhausted")
}

func TestGormLoggerProductionKeepsErrorsOnly(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	gl := newGormLogger(zap.New(core), true)

	gl.Warn(context.Background(), "slow")
	gl.Error(context.Background(), "insert failed")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Message, "insert failed")
}

func TestGormLoggerSkipsRecordNotFound(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	gl := newGormLogger(zap.New(core), false)

	sql := func() (string, int64) { return `SELECT * FROM "users"`, 0 }
	gl.Trace(context.Background(), time.Now(), sql, gorm.ErrRecordNotFound)
	assert.Zero(t, logs.Len())

	gl.Trace(context.Background(), time.Now(), sql, errors.New("connection reset"))
	assert.Equal(t, 1, logs.Len())
}
