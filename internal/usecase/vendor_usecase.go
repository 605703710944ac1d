package usecase

import (
	"context"

	"padifood/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateVendorInput defines the data required to list a new vendor.
type CreateVendorInput struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	Cuisine  string
	Rating   float64
	Metadata map[string]any
}

// UpdateVendorInput defines the data accepted when updating a vendor.
type UpdateVendorInput struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Phone    string
	Address  string
	Cuisine  string
	Rating   float64
	Metadata map[string]any
}

// VendorUsecase defines the interface for vendor catalog business operations.
type VendorUsecase interface {
	// Create lists a new vendor in the catalog.
	Create(ctx context.Context, input CreateVendorInput) (*entity.Vendor, error)

	// List returns every vendor.
	List(ctx context.Context) ([]*entity.Vendor, error)

	// Get returns a single vendor by ID.
	Get(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)

	// Update replaces the vendor's mutable fields.
	Update(ctx context.Context, input UpdateVendorInput) (*entity.Vendor, error)

	// Delete removes a vendor from the catalog.
	Delete(ctx context.Context, id uuid.UUID) error
}
