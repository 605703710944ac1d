package impl

import (
	"context"
	"log/slog"
	"strings"

	"padifood/config"
	deliverycontext "padifood/internal/delivery/context"
	"padifood/internal/domain/entity"
	domainerrors "padifood/internal/domain/errors"
	"padifood/internal/domain/repository"
	"padifood/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// vendorService implements the VendorUsecase interface.
type vendorService struct {
	vendorRepo repository.VendorRepository
	logger     *slog.Logger
}

// VendorServiceParams holds dependencies for vendorService, injected by Fx.
type VendorServiceParams struct {
	fx.In

	VendorRepo repository.VendorRepository
	Config     *config.Config
	Logger     *slog.Logger
}

// NewVendorService is the constructor for vendorService.
func NewVendorService(params VendorServiceParams) usecase.VendorUsecase {
	return &vendorService{
		vendorRepo: params.VendorRepo,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *vendorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create lists a new vendor in the catalog.
func (srv *vendorService) Create(ctx context.Context, input usecase.CreateVendorInput) (*entity.Vendor, error) {
	srv.log(ctx).Info("Creating vendor", slog.String("name", input.Name))

	newVendor := &entity.Vendor{
		Name:     input.Name,
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:    input.Phone,
		Address:  input.Address,
		Cuisine:  input.Cuisine,
		Rating:   input.Rating,
		Metadata: input.Metadata,
	}

	if err := srv.vendorRepo.Create(ctx, newVendor); err != nil {
		srv.log(ctx).Warn("Vendor creation failed", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create vendor")
	}

	srv.log(ctx).Debug("Vendor created", slog.Any("vendorID", newVendor.ID))

	return newVendor, nil
}

// List returns every vendor.
func (srv *vendorService) List(ctx context.Context) ([]*entity.Vendor, error) {
	vendors, err := srv.vendorRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list vendors", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list vendors")
	}

	return vendors, nil
}

// Get returns a single vendor by ID.
func (srv *vendorService) Get(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	vendor, err := srv.vendorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVendorNotFound, "vendor not found")
		}

		return nil, errors.Wrap(err, "failed to get vendor")
	}

	return vendor, nil
}

// Update replaces the vendor's mutable fields.
func (srv *vendorService) Update(ctx context.Context, input usecase.UpdateVendorInput) (*entity.Vendor, error) {
	srv.log(ctx).Info("Updating vendor", slog.Any("vendorID", input.ID))

	existing, err := srv.vendorRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVendorNotFound, "vendor not found")
		}

		return nil, errors.Wrap(err, "failed to load vendor for update")
	}

	updated := &entity.Vendor{
		ID:       existing.ID,
		Name:     input.Name,
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:    input.Phone,
		Address:  input.Address,
		Cuisine:  input.Cuisine,
		Rating:   input.Rating,
		Metadata: input.Metadata,
	}

	if err := srv.vendorRepo.Update(ctx, updated); err != nil {
		srv.log(ctx).Warn("Vendor update failed", slog.Any("vendorID", input.ID), slog.Any("error", err))

		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVendorNotFound, "vendor not found")
		}

		return nil, errors.Wrap(err, "failed to update vendor")
	}

	updated.CreatedAt = existing.CreatedAt

	return updated, nil
}

// Delete removes a vendor from the catalog.
func (srv *vendorService) Delete(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting vendor", slog.Any("vendorID", id))

	if err := srv.vendorRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return errors.Wrap(domainerrors.ErrVendorNotFound, "vendor not found")
		}

		return errors.Wrap(err, "failed to delete vendor")
	}

	return nil
}
