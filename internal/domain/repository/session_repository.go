// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"padifood/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a session does not exist or has been destroyed.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines the operations for server-side session persistence.
// Sessions are externalized to the store (not process memory) because the OAuth
// redirect and its callback may be served by different instances.
type SessionRepository interface {
	// Create persists a new session row and assigns its ID.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session by its opaque identifier.
	// Expired sessions are reported as ErrSessionNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// Update persists mutations to an existing session (state token, bound user).
	Update(ctx context.Context, session *entity.Session) error

	// Delete destroys a session. Deleting an absent session is not an error.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteExpired removes all sessions past their expiry.
	DeleteExpired(ctx context.Context) error
}
