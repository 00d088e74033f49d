package logger

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
	gormlogger "gorm.io/gorm/logger"
)

func TestGetBeforeInitIsUsable(t *testing.T) {
	require.NotNil(t, Get())
	Get().Info("no-op logger accepts writes")
}

func TestInit_Level(t *testing.T) {
	prev := log
	defer func() { log = prev }()

	require.NoError(t, Init(false, WarnLevel))
	assert.False(t, Get().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, Get().Core().Enabled(zapcore.WarnLevel))
}

func TestGormLogger_Trace(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	gl := NewGormLogger(zap.New(core))
	query := func() (string, int64) { return "INSERT INTO users", 1 }

	gl.Trace(context.Background(), time.Now(), query, gorm.ErrRecordNotFound)
	assert.Equal(t, 0, logs.Len(), "record not found is ignored")

	gl.Trace(context.Background(), time.Now(), query, errors.New("boom"))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "gorm query error", logs.All()[0].Message)

	gl.Trace(context.Background(), time.Now().Add(-time.Second), query, nil)
	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "gorm slow query", logs.All()[1].Message)

	silent := gl.LogMode(gormlogger.Silent)
	silent.Trace(context.Background(), time.Now(), query, errors.New("boom"))
	assert.Equal(t, 2, logs.Len())
}
