// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a registered client of the
// food-ordering API. A user may authenticate with a local password, with a linked
// GitHub account, or both; the credentials themselves live in Authentication records.
type User struct {
	ID            uuid.UUID      // The unique identifier for the user, assigned by the store.
	Email         string         // The user's primary email, lower-cased and unique across the system.
	FirstName     string         // Given name.
	LastName      string         // Family name.
	Role          Role           // Authorization role, defaults to RoleUser.
	Phone         string         // Optional contact phone number.
	Address       string         // Optional postal address.
	Birthday      string         // Optional birthday, stored as the client submitted it.
	FavoriteColor string         // Optional free-form preference field.
	Metadata      map[string]any // Free-form metadata supplied at registration.
	PasswordHash  string         // bcrypt hash, present only for locally registered users. Never serialized.
	CreatedAt     time.Time      // Timestamp of when this account was created.
	UpdatedAt     time.Time      // Timestamp of the last modification.
}

// DisplayName returns the user's name suitable for presentation.
func (u *User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.LastName
	}
}
