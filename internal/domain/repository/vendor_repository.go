// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"padifood/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrVendorNotFound is returned when a vendor is not found.
var ErrVendorNotFound = errors.New("vendor not found")

// VendorRepository defines the standard operations for vendor persistence.
type VendorRepository interface {
	// FindByID retrieves a single vendor by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)

	// FindAll retrieves every vendor.
	FindAll(ctx context.Context) ([]*entity.Vendor, error)

	// Create persists a new vendor entity and assigns its ID.
	Create(ctx context.Context, vendor *entity.Vendor) error

	// Update modifies an existing vendor entity in the storage.
	Update(ctx context.Context, vendor *entity.Vendor) error

	// Delete removes a vendor by ID. Returns ErrVendorNotFound when nothing matched.
	Delete(ctx context.Context, id uuid.UUID) error
}
