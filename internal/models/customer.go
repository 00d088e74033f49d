package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer fields are all required; empty strings are rejected.
type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null;check:name <> ''"`
	Email     string    `gorm:"not null;check:email <> ''"`
	ImageURL  string    `gorm:"column:image_url;not null;check:image_url <> ''"`
	CreatedAt time.Time
}
