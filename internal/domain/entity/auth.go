// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Authentication represents a single method of logging in (a credential).
// A user's email/password is one record, while a linked GitHub account is another.
// The (Provider, ProviderUserID) pair is unique across the system, which is what
// makes "link once, never silently overwrite" enforceable at the store level.
type Authentication struct {
	ID             uuid.UUID    // The unique ID for this specific authentication record itself.
	UserID         uuid.UUID    // Links this authentication method to the User it belongs to.
	Provider       ProviderType // The authentication provider, e.g. "local" or "github".
	ProviderUserID string       // The user's unique ID at the provider (email for local, numeric ID for GitHub).
	CreatedAt      time.Time    // Timestamp of when this method was linked to the user account.
}

// Session represents a server-side authenticated context, correlated to the
// client via an opaque cookie. It doubles as the primary storage channel for the
// OAuth anti-forgery state token: the state must survive across the two separate
// requests of the redirect round trip, possibly handled by different instances,
// so it is externalized here rather than held in process memory.
type Session struct {
	ID         uuid.UUID  // Opaque session identifier, also the cookie value.
	UserID     *uuid.UUID // The authenticated user, nil until the OAuth callback (or login) binds one.
	OAuthState string     // Single-use anti-CSRF state token for an in-flight OAuth attempt. Empty otherwise.
	ExpiresAt  time.Time  // Absolute expiry of the session.
	CreatedAt  time.Time  // Timestamp of when this session was established.
}

// Active reports whether the session is still within its lifetime at the given instant.
func (s *Session) Active(now time.Time) bool {
	return s.ExpiresAt.After(now)
}

// Authenticated reports whether a user has been bound to this session.
func (s *Session) Authenticated() bool {
	return s.UserID != nil
}
