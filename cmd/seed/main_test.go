package main

import (
	"testing"

	"invoice-dashboard-backend/internal/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRun_SeedsAndClosesCleanly(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	cfg := &config.Config{DatabaseURL: "sqlite::memory:", SeedMaxParallel: -1}

	assert.Equal(t, 0, run(cfg, zap.New(core)))
	assert.Zero(t, logs.Len(), "no errors are logged, including on close")
}

func TestRun_UnsupportedDatabase(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	cfg := &config.Config{DatabaseURL: "redis://localhost:6379", SeedMaxParallel: -1}

	assert.Equal(t, 1, run(cfg, zap.New(core)))
	assert.Equal(t, 1, logs.FilterMessage("failed to connect to database").Len())
}
