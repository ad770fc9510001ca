package model

import (
	"time"

	"github.com/google/uuid"
)

// RoleModel mirrors the 'roles' table.
type RoleModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Key  string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Name string    `gorm:"type:varchar(120);not null"`
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}

// ProfileRoleModel mirrors the 'profile_roles' join table.
type ProfileRoleModel struct {
	ProfileID uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoleID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileRoleModel) TableName() string {
	return "profile_roles"
}
