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
	"padifood/internal/domain/service"
	"padifood/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// clientService implements the ClientUsecase interface.
type clientService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// ClientServiceParams holds dependencies for clientService, injected by Fx.
type ClientServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewClientService is the constructor for clientService. It receives all dependencies as interfaces.
func NewClientService(params ClientServiceParams) usecase.ClientUsecase {
	return &clientService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *clientService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create registers a new client account. The plaintext password is hashed
// before anything touches the store, and the account plus its local credential
// are written in one transaction.
func (srv *clientService) Create(ctx context.Context, input usecase.CreateClientInput) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	srv.log(ctx).Info("Creating client account", slog.String("email", email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during client creation", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	newUser := &entity.User{
		Email:         email,
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Role:          entity.RoleFromString(input.Role),
		Phone:         input.Phone,
		Address:       input.Address,
		Birthday:      input.Birthday,
		FavoriteColor: input.FavoriteColor,
		Metadata:      input.Metadata,
		PasswordHash:  hashedPassword,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create client account")
		}

		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeLocal,
			ProviderUserID: email,
		}

		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create local credential")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Client creation failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute client creation transaction")
	}

	// The hash never leaves the use case layer.
	newUser.PasswordHash = ""

	srv.log(ctx).Debug("Client account created", slog.Any("userID", newUser.ID))

	return newUser, nil
}

// List returns every client account.
func (srv *clientService) List(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list clients", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list clients")
	}

	return users, nil
}

// Get returns a single client account by ID.
func (srv *clientService) Get(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "client not found")
		}

		return nil, errors.Wrap(err, "failed to get client")
	}

	return user, nil
}

// Update applies the provided fields to the client account, leaving nil
// fields unchanged. Password changes are not accepted on this path, so
// the stored hash is never touched.
func (srv *clientService) Update(ctx context.Context, input usecase.UpdateClientInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating client account", slog.Any("userID", input.ID))

	existing, err := srv.userRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "client not found")
		}

		return nil, errors.Wrap(err, "failed to load client for update")
	}

	updated := &entity.User{
		ID:            existing.ID,
		Email:         existing.Email,
		FirstName:     existing.FirstName,
		LastName:      existing.LastName,
		Role:          existing.Role,
		Phone:         existing.Phone,
		Address:       existing.Address,
		Birthday:      existing.Birthday,
		FavoriteColor: existing.FavoriteColor,
		Metadata:      existing.Metadata,
	}

	if input.Email != nil {
		updated.Email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.FirstName != nil {
		updated.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		updated.LastName = *input.LastName
	}
	if input.Role != nil {
		updated.Role = entity.RoleFromString(*input.Role)
	}
	if input.Phone != nil {
		updated.Phone = *input.Phone
	}
	if input.Address != nil {
		updated.Address = *input.Address
	}
	if input.Birthday != nil {
		updated.Birthday = *input.Birthday
	}
	if input.FavoriteColor != nil {
		updated.FavoriteColor = *input.FavoriteColor
	}
	if input.Metadata != nil {
		updated.Metadata = input.Metadata
	}

	if err := srv.userRepo.Update(ctx, updated); err != nil {
		srv.log(ctx).Warn("Client update failed", slog.Any("userID", input.ID), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "client not found")
		}

		return nil, errors.Wrap(err, "failed to update client")
	}

	updated.CreatedAt = existing.CreatedAt

	return updated, nil
}

// Delete removes a client account.
func (srv *clientService) Delete(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting client account", slog.Any("userID", id))

	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "client not found")
		}

		return errors.Wrap(err, "failed to delete client")
	}

	return nil
}
