package models

import (
	"time"

	"github.com/google/uuid"
)

// User holds a bcrypt hash in Password, never the plaintext.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null;check:name <> ''"`
	Email     string    `gorm:"not null;uniqueIndex;check:email <> ''"`
	Password  string    `gorm:"not null;check:password <> ''" json:"-"`
	CreatedAt time.Time
}
