package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

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

func TestAuthService_BeginOAuth_ProviderNotConfigured(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewAuthService(AuthServiceParams{
		TxManager:    mockRepo.NewMockTransactionManager(t),
		SessionRepo:  mockRepo.NewMockSessionRepository(t),
		UserRepo:     mockRepo.NewMockUserRepository(t),
		TokenService: mockSvc.NewMockTokenService(t),
		StateGen:     mockSvc.NewMockStateGenerator(t),
		Provider:     nil,
		Logger:       logger,
	})

	output, err := service.BeginOAuth(context.Background(), usecase.BeginOAuthInput{})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrConfiguration))
}

func TestAuthService_BeginOAuth_SweepFailureDoesNotBlock(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.sessionRepo.EXPECT().DeleteExpired(ctx).Return(errors.New("connection reset"))
	fx.stateGen.EXPECT().Generate().Return("fresh-state", nil)
	fx.sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Return(nil)
	fx.sessionRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Session")).
		Return(nil)
	fx.provider.EXPECT().AuthCodeURL("fresh-state").Return("https://github.com/login/oauth/authorize")

	output, err := fx.service.BeginOAuth(ctx, usecase.BeginOAuthInput{})

	require.NoError(t, err)
	assert.Equal(t, "fresh-state", output.State)
}

func TestAuthService_CompleteOAuth_StateMismatch(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	sessionID := uuid.New()
	session := &entity.Session{
		ID:         sessionID,
		OAuthState: "stored-state",
		ExpiresAt:  time.Now().Add(time.Hour),
	}

	fx.sessionRepo.EXPECT().FindByID(ctx, sessionID).Return(session, nil)
	fx.sessionRepo.EXPECT().
		Update(ctx, session).
		Run(func(ctx context.Context, updated *entity.Session) {
			// The stored copy is consumed before verification, so a failed
			// attempt cannot be replayed against the same token.
			assert.Empty(t, updated.OAuthState)
		}).
		Return(nil)

	output, err := fx.service.CompleteOAuth(ctx, usecase.CompleteOAuthInput{
		SessionID:     &sessionID,
		Code:          "auth-code",
		ReturnedState: "forged-state",
		CookieState:   "another-state",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrStateMismatch))
}

func TestAuthService_CompleteOAuth_EmptyReturnedState(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	// An empty returned state never matches, even when both stored copies are
	// also empty.
	output, err := fx.service.CompleteOAuth(ctx, usecase.CompleteOAuthInput{
		Code:          "auth-code",
		ReturnedState: "",
		CookieState:   "",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrStateMismatch))
}

func TestAuthService_CompleteOAuth_ExchangeFails(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	sessionID := uuid.New()
	session := &entity.Session{
		ID:         sessionID,
		OAuthState: "stored-state",
		ExpiresAt:  time.Now().Add(time.Hour),
	}

	fx.sessionRepo.EXPECT().FindByID(ctx, sessionID).Return(session, nil)
	fx.sessionRepo.EXPECT().Update(ctx, session).Return(nil)
	fx.provider.EXPECT().
		Exchange(ctx, "bad-code").
		Return(nil, errors.New("exchange rejected"))

	output, err := fx.service.CompleteOAuth(ctx, usecase.CompleteOAuthInput{
		SessionID:     &sessionID,
		Code:          "bad-code",
		ReturnedState: "stored-state",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthFailed))
}

func TestAuthService_CompleteOAuth_ConcurrentFirstLogin(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	sessionID := uuid.New()
	session := &entity.Session{
		ID:         sessionID,
		OAuthState: "stored-state",
		ExpiresAt:  time.Now().Add(time.Hour),
	}
	profile := githubProfile()

	fx.sessionRepo.EXPECT().FindByID(ctx, sessionID).Return(session, nil)
	fx.sessionRepo.EXPECT().Update(ctx, session).Return(nil)
	fx.provider.EXPECT().Exchange(ctx, "auth-code").Return(profile, nil)

	// A concurrent first login won the race on the unique indexes.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.Wrap(domainerrors.ErrUserAlreadyExists, "failed to create user from external profile"))

	output, err := fx.service.CompleteOAuth(ctx, usecase.CompleteOAuthInput{
		SessionID:     &sessionID,
		Code:          "auth-code",
		ReturnedState: "stored-state",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestAuthService_CompleteOAuth_EmailOwnerAlreadyLinked(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	sessionID := uuid.New()
	session := &entity.Session{
		ID:         sessionID,
		OAuthState: "stored-state",
		ExpiresAt:  time.Now().Add(time.Hour),
	}
	existingUser := &entity.User{
		ID:    uuid.New(),
		Email: "octocat@github.com",
		Role:  entity.RoleUser,
	}
	profile := githubProfile()

	fx.sessionRepo.EXPECT().FindByID(ctx, sessionID).Return(session, nil)
	fx.sessionRepo.EXPECT().Update(ctx, session).Return(nil)
	fx.provider.EXPECT().Exchange(ctx, "auth-code").Return(profile, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeGitHub, profile.ProviderUserID).
				Return(nil, repository.ErrAuthNotFound)
			mockUserRepo.EXPECT().
				FindByEmail(ctx, "octocat@github.com").
				Return(existingUser, nil)

			// The account already carries a linkage for this provider. It must
			// never be overwritten; a fresh account is created instead.
			mockAuthRepo.EXPECT().
				FindAuthenticationByUserIDAndProvider(ctx, existingUser.ID, entity.ProviderTypeGitHub).
				Return(&entity.Authentication{UserID: existingUser.ID, ProviderUserID: "999999"}, nil)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
					assert.NotEqual(t, existingUser.ID, user.ID)
				}).
				Return(nil)
			mockAuthRepo.EXPECT().
				CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.tokenService.EXPECT().
		Sign(mock.AnythingOfType("*entity.User")).
		Return("signed.jwt.token", nil)

	output, err := fx.service.CompleteOAuth(ctx, usecase.CompleteOAuthInput{
		SessionID:     &sessionID,
		Code:          "auth-code",
		ReturnedState: "stored-state",
	})

	require.NoError(t, err)
	assert.NotEqual(t, existingUser.ID, output.User.ID)
}

func TestAuthService_ResolveSessionUser_SessionExpired(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	sessionID := uuid.New()

	fx.sessionRepo.EXPECT().
		FindByID(ctx, sessionID).
		Return(nil, repository.ErrSessionNotFound)

	user, err := fx.service.ResolveSessionUser(ctx, sessionID)

	assert.Error(t, err)
	assert.Nil(t, user)
}

func TestAuthService_ResolveSessionUser_AnonymousSession(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	sessionID := uuid.New()
	session := &entity.Session{
		ID:        sessionID,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.sessionRepo.EXPECT().FindByID(ctx, sessionID).Return(session, nil)

	user, err := fx.service.ResolveSessionUser(ctx, sessionID)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestAuthService_GetProfile_UserGone(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetProfile(ctx, userID)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
