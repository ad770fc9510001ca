// Package model holds the GORM row types of the profile store.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. IDs are generated application-side (UUIDv7).
type ProfileModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:profiles_account_id_key"`
	Username   string    `gorm:"type:varchar(32);not null;uniqueIndex:profiles_username_key"`
	Email      *string   `gorm:"type:varchar(255);uniqueIndex:profiles_email_key"`
	Phone      *string   `gorm:"type:varchar(32);index"`
	GivenNames string    `gorm:"type:varchar(120)"`
	Surnames   string    `gorm:"type:varchar(120)"`
	Active     bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
