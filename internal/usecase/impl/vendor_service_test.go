package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"padifood/internal/domain/entity"
	domainerrors "padifood/internal/domain/errors"
	"padifood/internal/domain/repository"
	mockRepo "padifood/internal/mocks/repository"
	"padifood/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestVendorService(t *testing.T) (usecase.VendorUsecase, *mockRepo.MockVendorRepository) {
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewVendorService(VendorServiceParams{
		VendorRepo: vendorRepo,
		Logger:     logger,
	})

	return service, vendorRepo
}

func TestVendorService_Create_Success(t *testing.T) {
	service, vendorRepo := createTestVendorService(t)

	ctx := context.Background()
	input := usecase.CreateVendorInput{
		Name:    "Warung Padi",
		Email:   " Orders@WarungPadi.ID ",
		Cuisine: "Indonesian",
		Rating:  4.5,
	}

	vendorRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Vendor")).
		Run(func(ctx context.Context, vendor *entity.Vendor) {
			vendor.ID = uuid.New()
			assert.Equal(t, "orders@warungpadi.id", vendor.Email)
		}).
		Return(nil)

	vendor, err := service.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Warung Padi", vendor.Name)
	assert.NotEqual(t, uuid.Nil, vendor.ID)
}

func TestVendorService_Create_DuplicateEmail(t *testing.T) {
	service, vendorRepo := createTestVendorService(t)

	ctx := context.Background()
	input := usecase.CreateVendorInput{Name: "Warung Padi", Email: "orders@warungpadi.id"}

	vendorRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Vendor")).
		Return(domainerrors.ErrVendorAlreadyExists)

	vendor, err := service.Create(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, vendor)
	assert.True(t, errors.Is(err, domainerrors.ErrVendorAlreadyExists))
}

func TestVendorService_List_Success(t *testing.T) {
	service, vendorRepo := createTestVendorService(t)

	ctx := context.Background()
	vendors := []*entity.Vendor{
		{ID: uuid.New(), Name: "Warung Padi"},
		{ID: uuid.New(), Name: "Nasi Corner"},
	}

	vendorRepo.EXPECT().FindAll(ctx).Return(vendors, nil)

	listed, err := service.List(ctx)

	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestVendorService_Get_NotFound(t *testing.T) {
	service, vendorRepo := createTestVendorService(t)

	ctx := context.Background()
	id := uuid.New()

	vendorRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrVendorNotFound)

	vendor, err := service.Get(ctx, id)

	assert.Error(t, err)
	assert.Nil(t, vendor)
	assert.True(t, errors.Is(err, domainerrors.ErrVendorNotFound))
}

func TestVendorService_Update_Success(t *testing.T) {
	service, vendorRepo := createTestVendorService(t)

	ctx := context.Background()
	existing := &entity.Vendor{ID: uuid.New(), Name: "Warung Padi", Rating: 4.0}
	input := usecase.UpdateVendorInput{
		ID:     existing.ID,
		Name:   "Warung Padi Raya",
		Email:  "orders@warungpadi.id",
		Rating: 4.8,
	}

	vendorRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	vendorRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Vendor")).
		Run(func(ctx context.Context, vendor *entity.Vendor) {
			assert.Equal(t, existing.ID, vendor.ID)
			assert.InDelta(t, 4.8, vendor.Rating, 0.001)
		}).
		Return(nil)

	vendor, err := service.Update(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Warung Padi Raya", vendor.Name)
}

func TestVendorService_Update_NotFound(t *testing.T) {
	service, vendorRepo := createTestVendorService(t)

	ctx := context.Background()
	input := usecase.UpdateVendorInput{ID: uuid.New(), Name: "Ghost Kitchen"}

	vendorRepo.EXPECT().FindByID(ctx, input.ID).Return(nil, repository.ErrVendorNotFound)

	vendor, err := service.Update(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, vendor)
	assert.True(t, errors.Is(err, domainerrors.ErrVendorNotFound))
}

func TestVendorService_Delete_NotFound(t *testing.T) {
	service, vendorRepo := createTestVendorService(t)

	ctx := context.Background()
	id := uuid.New()

	vendorRepo.EXPECT().Delete(ctx, id).Return(repository.ErrVendorNotFound)

	err := service.Delete(ctx, id)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVendorNotFound))
}
