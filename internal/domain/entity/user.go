// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity record of the system. Every account that can log
// in is a User; OWNER and VET accounts additionally carry a back-reference to
// their profile (OwnerID or VetID, never both).
type User struct {
	ID           uuid.UUID  // The unique identifier for this account.
	Name         string     // The account holder's display name.
	Username     string     // Unique login handle.
	Email        string     // Unique contact address, used as the login identifier.
	PasswordHash string     // The bcrypt hash of the account password. Never leaves the service layer.
	Role         Role       // ADMIN, OWNER or VET.
	OwnerID      *uuid.UUID // Set when Role is OWNER; identifies the owner profile.
	VetID        *uuid.UUID // Set when Role is VET; identifies the vet profile.
	CreatedAt    time.Time  // Timestamp of when this account was created.
	UpdatedAt    time.Time  // Timestamp of the last modification to this account.
}

// Sanitized returns a copy of the user with the password hash stripped.
// Services hand this copy to callers so the secret never crosses the boundary.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}

	clean := *u
	clean.PasswordHash = ""

	return &clean
}
