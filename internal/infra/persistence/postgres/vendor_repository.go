package postgres

import (
	"context"
	"encoding/json"

	"padifood/internal/domain/entity"
	domainerrors "padifood/internal/domain/errors"
	"padifood/internal/domain/repository"
	"padifood/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// vendorRepository implements the domain.VendorRepository interface using GORM.
type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository is the constructor for vendorRepository.
func NewVendorRepository(db *gorm.DB) repository.VendorRepository {
	return &vendorRepository{db: db}
}

// FindByID retrieves a single vendor by its unique ID.
func (repo *vendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	var vendorM model.VendorModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&vendorM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor by id")
	}

	return toVendorDomain(&vendorM), nil
}

// FindAll retrieves every vendor, ordered by creation time.
func (repo *vendorRepository) FindAll(ctx context.Context) ([]*entity.Vendor, error) {
	var vendorMs []model.VendorModel
	err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&vendorMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendors")
	}

	vendors := make([]*entity.Vendor, 0, len(vendorMs))
	for i := range vendorMs {
		vendors = append(vendors, toVendorDomain(&vendorMs[i]))
	}

	return vendors, nil
}

// Create persists a new vendor entity to the database.
func (repo *vendorRepository) Create(ctx context.Context, vendor *entity.Vendor) error {
	vendorM := fromVendorDomain(vendor)

	if err := repo.db.WithContext(ctx).Create(vendorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrVendorAlreadyExists.WrapMessage("vendor email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required vendor information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vendor")
	}

	vendor.ID = vendorM.ID
	vendor.CreatedAt = vendorM.CreatedAt
	vendor.UpdatedAt = vendorM.UpdatedAt

	return nil
}

// Update modifies an existing vendor entity in the database.
func (repo *vendorRepository) Update(ctx context.Context, vendor *entity.Vendor) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VendorModel{}).
		Where("id = ?", vendor.ID).
		Select("name", "email", "phone", "address", "cuisine", "rating", "metadata", "updated_at").
		Updates(fromVendorDomain(vendor))

	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrVendorAlreadyExists.WrapMessage("vendor email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update vendor")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}

// Delete removes a vendor by ID.
func (repo *vendorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.VendorModel{})

	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete vendor")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}

// toVendorDomain converts a GORM VendorModel to a domain Vendor entity.
func toVendorDomain(data *model.VendorModel) *entity.Vendor {
	if data == nil {
		return nil
	}

	var metadata map[string]any
	if len(data.Metadata) > 0 {
		_ = json.Unmarshal(data.Metadata, &metadata)
	}

	return &entity.Vendor{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Address:   data.Address,
		Cuisine:   data.Cuisine,
		Rating:    data.Rating,
		Metadata:  metadata,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromVendorDomain converts a domain Vendor entity to a GORM VendorModel.
func fromVendorDomain(data *entity.Vendor) *model.VendorModel {
	if data == nil {
		return nil
	}

	var metadata []byte
	if len(data.Metadata) > 0 {
		metadata, _ = json.Marshal(data.Metadata)
	}

	return &model.VendorModel{
		ID:       data.ID,
		Name:     data.Name,
		Email:    data.Email,
		Phone:    data.Phone,
		Address:  data.Address,
		Cuisine:  data.Cuisine,
		Rating:   data.Rating,
		Metadata: metadata,
	}
}
