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
	mockSvc "padifood/internal/mocks/service"
	"padifood/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// clientServiceFixtures holds all test dependencies for client service tests.
type clientServiceFixtures struct {
	service   usecase.ClientUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockSvc.MockPasswordHasher
}

func strPtr(s string) *string {
	return &s
}

func createTestClientService(t *testing.T) clientServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewClientService(ClientServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Hasher:    hasher,
		Logger:    logger,
	})

	return clientServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
		hasher:    hasher,
	}
}

func TestClientService_Create_Success(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	input := usecase.CreateClientInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "  Ada@Example.COM ",
		Password:  "Password123!",
		Role:      "user",
		Phone:     "+44 20 7946 0001",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
					assert.Equal(t, "ada@example.com", user.Email)
					assert.Equal(t, "hashed_password", user.PasswordHash)
				}).
				Return(nil)
			mockAuthRepo.EXPECT().
				CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
				Run(func(ctx context.Context, auth *entity.Authentication) {
					assert.Equal(t, entity.ProviderTypeLocal, auth.Provider)
					assert.Equal(t, "ada@example.com", auth.ProviderUserID)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	user, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.Empty(t, user.PasswordHash)
}

func TestClientService_Create_DuplicateEmail(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	input := usecase.CreateClientInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.Wrap(domainerrors.ErrUserAlreadyExists, "failed to create client account"))

	user, err := fx.service.Create(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestClientService_Create_HashFails(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	input := usecase.CreateClientInput{
		FirstName: "Ada",
		Email:     "ada@example.com",
		Password:  "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("bcrypt exploded"))

	user, err := fx.service.Create(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestClientService_List_Success(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	users := []*entity.User{
		{ID: uuid.New(), Email: "ada@example.com", Role: entity.RoleUser},
		{ID: uuid.New(), Email: "grace@example.com", Role: entity.RoleAdmin},
	}

	fx.userRepo.EXPECT().FindAll(ctx).Return(users, nil)

	listed, err := fx.service.List(ctx)

	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestClientService_Get_NotFound(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.Get(ctx, id)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestClientService_Update_PartialFields(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	existing := &entity.User{
		ID:        uuid.New(),
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Phone:     "555-0100",
		Role:      entity.RoleUser,
	}
	input := usecase.UpdateClientInput{
		ID:       existing.ID,
		LastName: strPtr("King"),
		Role:     strPtr("admin"),
	}

	fx.userRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			// Omitted fields carry over unchanged.
			assert.Equal(t, "ada@example.com", user.Email)
			assert.Equal(t, "Ada", user.FirstName)
			assert.Equal(t, "555-0100", user.Phone)
			assert.Equal(t, "King", user.LastName)
			assert.Equal(t, entity.RoleAdmin, user.Role)
		}).
		Return(nil)

	user, err := fx.service.Update(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "King", user.LastName)
	assert.Equal(t, "Ada", user.FirstName)
}

func TestClientService_Update_NormalizesEmail(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), Email: "ada@example.com", Role: entity.RoleUser}
	input := usecase.UpdateClientInput{
		ID:    existing.ID,
		Email: strPtr("  Ada@New.Example.COM "),
	}

	fx.userRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "ada@new.example.com", user.Email)
		}).
		Return(nil)

	user, err := fx.service.Update(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "ada@new.example.com", user.Email)
}

func TestClientService_Update_NeverWritesPasswordHash(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	existing := &entity.User{
		ID:           uuid.New(),
		Email:        "ada@example.com",
		PasswordHash: "stored_hash",
		Role:         entity.RoleUser,
	}
	input := usecase.UpdateClientInput{
		ID:        existing.ID,
		FirstName: strPtr("Augusta Ada"),
	}

	fx.userRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			// An empty hash keeps password_hash out of the column set, so
			// the stored credential survives every update.
			assert.Empty(t, user.PasswordHash)
		}).
		Return(nil)

	user, err := fx.service.Update(ctx, input)

	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestClientService_Update_NotFound(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	input := usecase.UpdateClientInput{ID: uuid.New(), Email: strPtr("ghost@example.com")}

	fx.userRepo.EXPECT().FindByID(ctx, input.ID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.Update(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestClientService_Delete_Success(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.EXPECT().Delete(ctx, id).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, id))
}

func TestClientService_Delete_NotFound(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.EXPECT().Delete(ctx, id).Return(repository.ErrUserNotFound)

	err := fx.service.Delete(ctx, id)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
