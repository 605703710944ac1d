package usecase

import (
	"context"

	"padifood/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateClientInput defines the data required to register a new client account.
type CreateClientInput struct {
	FirstName     string
	LastName      string
	Email         string
	Password      string
	Role          string
	Phone         string
	Address       string
	Birthday      string
	FavoriteColor string
	Metadata      map[string]any
}

// UpdateClientInput carries a partial update for a client account. Nil
// fields are left unchanged. Password changes are not accepted on this
// path; the stored hash is never touched.
type UpdateClientInput struct {
	ID            uuid.UUID
	FirstName     *string
	LastName      *string
	Email         *string
	Role          *string
	Phone         *string
	Address       *string
	Birthday      *string
	FavoriteColor *string
	Metadata      map[string]any
}

// ClientUsecase defines the interface for client account business operations.
type ClientUsecase interface {
	// Create registers a new client, hashing the password before it is stored.
	Create(ctx context.Context, input CreateClientInput) (*entity.User, error)

	// List returns every client account. Password hashes are never included.
	List(ctx context.Context) ([]*entity.User, error)

	// Get returns a single client account by ID.
	Get(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Update applies the provided fields to the client account. At least
	// one field must be set. The stored password hash is never modified.
	Update(ctx context.Context, input UpdateClientInput) (*entity.User, error)

	// Delete removes a client account.
	Delete(ctx context.Context, id uuid.UUID) error
}
