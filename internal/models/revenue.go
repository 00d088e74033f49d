package models

import (
	"time"

	"github.com/google/uuid"
)

type Revenue struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Month     string    `gorm:"not null;uniqueIndex;check:month <> ''"`
	Revenue   *float64  `gorm:"not null"`
	CreatedAt time.Time
}

// TableName keeps the pluralized collection name shared with the document store.
func (Revenue) TableName() string {
	return "revenues"
}
