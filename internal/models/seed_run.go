package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	SeedRunRunning   = "running"
	SeedRunCompleted = "completed"
	SeedRunFailed    = "failed"
)

// SeedRun records one invocation of the seeding workflow.
type SeedRun struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Status      string         `gorm:"not null;index" json:"status"`
	StartedAt   time.Time      `json:"started_at"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	Report      datatypes.JSON `json:"report,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}
