// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record of the system. The username is the login
// identifier and is immutable once registered. PasswordHash is opaque to
// every layer above the persistence boundary and is never serialized.
type User struct {
	ID           uuid.UUID // The unique identifier for this account, generated by the store.
	Username     string    // The unique login identifier. Case-sensitive, immutable.
	FullName     string    // The user's display name.
	PasswordHash string    // The bcrypt hash of the user's password. Never exposed.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// Identity is the authenticated-caller projection of a User. It is
// constructed once at the store boundary and is the only identity shape
// that flows through the authorization chain; it carries no credentials.
type Identity struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	FullName string    `json:"full_name"`
}

// Identity returns the credential-free projection of the user.
func (u *User) Identity() Identity {
	return Identity{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
	}
}
