package models

import (
	"time"

	"github.com/google/uuid"
)

type Invoice struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	Amount     *float64  `gorm:"not null"`
	Status     string    `gorm:"not null;index;check:status <> ''"`
	Date       time.Time `gorm:"not null"`
	CreatedAt  time.Time
}
