package handler

import (
	"context"
	"errors"
	"net/http"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/repository"
	"invoice-dashboard-backend/internal/services/seeding"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RunIDHeader carries the recorded run of a seeding request.
const RunIDHeader = "X-Seed-Run-ID"

// Seeder is the part of the seeding service the handler needs.
type Seeder interface {
	Seed(ctx context.Context) (*seeding.Report, error)
	GetRun(ctx context.Context, id uuid.UUID) (*models.SeedRun, error)
	Ping(ctx context.Context) error
}

type SeedHandler struct {
	service Seeder
	logger  *zap.Logger
}

func NewSeedHandler(s Seeder, l *zap.Logger) *SeedHandler {
	if l == nil {
		l = zap.NewNop()
	}
	return &SeedHandler{service: s, logger: l}
}

// Seed runs the whole seeding workflow. Failure detail is only logged.
func (h *SeedHandler) Seed(c *gin.Context) {
	// Inserts already issued must finish even if the client goes away.
	ctx := context.WithoutCancel(c.Request.Context())

	report, err := h.service.Seed(ctx)
	if report != nil {
		c.Header(RunIDHeader, report.RunID.String())
	}

	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Database seeded successfully"})
	case errors.Is(err, repository.ErrNotConnected):
		h.logger.Error("database unavailable for seeding", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database unavailable"})
	default:
		h.logger.Error("error seeding database", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed database"})
	}
}

func (h *SeedHandler) GetRun(c *gin.Context) {
	id, err := uuid.Parse(c.Param("runId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid run ID"})
		return
	}

	run, err := h.service.GetRun(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
		return
	}
	if err != nil {
		h.logger.Error("error fetching seed run", zap.String("run_id", id.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch run"})
		return
	}

	c.JSON(http.StatusOK, run)
}

func (h *SeedHandler) Health(c *gin.Context) {
	if err := h.service.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
