package model

import (
	"time"

	"github.com/google/uuid"
)

// PatternModel mirrors the 'auth_patterns' table, one row per account.
type PatternModel struct {
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"type:varchar(255);not null;index"`
	Salt      string    `gorm:"type:varchar(64);not null"`
	Hash      string    `gorm:"type:varchar(256);not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PatternModel) TableName() string {
	return "auth_patterns"
}
