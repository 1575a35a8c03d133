// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"
)

// Role represents the type of role a user can have in the system.
// The set is closed: every user carries exactly one of these values.
type Role string

const (
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "ADMIN"
	// RoleUser indicates a regular user who browses and rates stores.
	RoleUser Role = "USER"
	// RoleStoreOwner indicates a user who owns a store.
	RoleStoreOwner Role = "STORE_OWNER"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleStoreOwner:
		return true
	default:
		return false
	}
}

// ParseRole maps a raw role string to a Role, case-insensitively.
// Unknown or empty input falls back to RoleUser.
func ParseRole(s string) Role {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))
	if role.IsValid() {
		return role
	}

	return RoleUser
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
