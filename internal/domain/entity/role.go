package entity

import "github.com/google/uuid"

// DefaultRoleKey is attached to every newly created profile.
const DefaultRoleKey = "Empleado"

// Role is a named grant stored in the profile store.
type Role struct {
	ID   uuid.UUID
	Key  string
	Name string
}

// RoleAssignment links a profile to a role.
type RoleAssignment struct {
	ProfileID uuid.UUID
	RoleID    uuid.UUID
}
