// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. Every actor in the system, including
// administrators and store owners, is a User with a single fixed Role.
type User struct {
	ID           uuid.UUID // The unique identifier for the account.
	Name         string    // Display name; validated to 20-60 characters at the boundary.
	Email        string    // Login identifier, stored lower-cased, unique across accounts.
	Address      string    // Optional postal address, at most 400 characters.
	PasswordHash string    // bcrypt hash of the password. The plaintext is never stored.
	Role         Role      // One of ADMIN, USER, STORE_OWNER.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
