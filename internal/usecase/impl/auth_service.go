// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

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

// placeholderEmailDomain builds the synthetic address assigned when the
// provider discloses no usable email. It keeps the email column unique and
// non-null without inventing a deliverable address.
const placeholderEmailDomain = "@users.noreply.github.local"

// tokenTypeBearer is the token_type value reported alongside issued tokens.
const tokenTypeBearer = "bearer"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	sessionRepo  repository.SessionRepository
	userRepo     repository.UserRepository
	tokenService service.TokenService
	stateGen     service.StateGenerator
	provider     service.OAuthProvider
	sessionTTL   time.Duration
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	SessionRepo  repository.SessionRepository
	UserRepo     repository.UserRepository
	TokenService service.TokenService
	StateGen     service.StateGenerator
	// Provider stays nil when GitHub credentials are not configured; the
	// OAuth operations then refuse per-call instead of crashing the process.
	Provider service.OAuthProvider `optional:"true"`
	Config   *config.Config
	Logger   *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	sessionTTL := 7 * 24 * time.Hour
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.SessionTTL > 0 {
		sessionTTL = params.Config.Auth.SessionTTL
	}

	return &authService{
		txManager:    params.TxManager,
		sessionRepo:  params.SessionRepo,
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		stateGen:     params.StateGen,
		provider:     params.Provider,
		sessionTTL:   sessionTTL,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BeginOAuth prepares a session and single-use state token for the redirect leg.
// An incoming session is reused so the callback can find the stored state; a
// missing or expired one is replaced transparently.
func (srv *authService) BeginOAuth(ctx context.Context, input usecase.BeginOAuthInput) (*usecase.BeginOAuthOutput, error) {
	if srv.provider == nil {
		return nil, errors.Wrap(domainerrors.ErrConfiguration, "oauth provider is not configured")
	}

	// Opportunistic sweep. Sessions are otherwise only deleted on logout,
	// so expired rows would accumulate without it. Best effort; a failed
	// sweep never blocks the login.
	if err := srv.sessionRepo.DeleteExpired(ctx); err != nil {
		srv.log(ctx).Warn("Failed to sweep expired sessions", slog.Any("error", err))
	}

	state, err := srv.stateGen.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate oauth state")
	}

	session, err := srv.loadOrCreateSession(ctx, input.SessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare session for oauth start")
	}

	session.OAuthState = state
	session.ExpiresAt = time.Now().Add(srv.sessionTTL)

	if err := srv.sessionRepo.Update(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to store oauth state on session")
	}

	srv.log(ctx).Debug("OAuth flow started", slog.Any("sessionID", session.ID))

	return &usecase.BeginOAuthOutput{
		SessionID:   session.ID,
		State:       state,
		RedirectURL: srv.provider.AuthCodeURL(state),
	}, nil
}

// CompleteOAuth verifies the returned state against both stored copies,
// exchanges the authorization code, resolves the external identity onto a
// local user, binds the session and mints an access token.
func (srv *authService) CompleteOAuth(ctx context.Context, input usecase.CompleteOAuthInput) (*usecase.CompleteOAuthOutput, error) {
	if srv.provider == nil {
		return nil, errors.Wrap(domainerrors.ErrConfiguration, "oauth provider is not configured")
	}

	session, storedState, err := srv.consumeStoredState(ctx, input.SessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to consume stored oauth state")
	}

	// The state matches when it equals either surviving copy. Both copies are
	// single-use: the session copy is already cleared above, the cookie copy
	// is cleared by the delivery layer regardless of outcome.
	if input.ReturnedState == "" ||
		(input.ReturnedState != storedState && input.ReturnedState != input.CookieState) {
		srv.log(ctx).Warn("OAuth state mismatch", slog.Bool("sessionPresent", session != nil))

		return nil, errors.Wrap(domainerrors.ErrStateMismatch, "returned state matches neither stored copy")
	}

	profile, err := srv.provider.Exchange(ctx, input.Code)
	if err != nil {
		srv.log(ctx).Warn("OAuth code exchange failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthFailed.WrapMessage("code exchange failed"), err.Error())
	}

	user, err := srv.resolveIdentity(ctx, profile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve external identity")
	}

	if session, err = srv.bindSession(ctx, session, user.ID); err != nil {
		return nil, errors.Wrap(err, "failed to bind session to user")
	}

	accessToken, err := srv.tokenService.Sign(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign access token")
	}

	srv.log(ctx).Info("OAuth login completed",
		slog.Any("userID", user.ID),
		slog.Any("sessionID", session.ID),
		slog.String("provider", profile.Provider.String()))

	return &usecase.CompleteOAuthOutput{
		SessionID:   session.ID,
		AccessToken: accessToken,
		TokenType:   tokenTypeBearer,
		User:        user,
	}, nil
}

// Logout destroys the session. A missing cookie or an already-destroyed
// session is treated as success: logout is idempotent.
func (srv *authService) Logout(ctx context.Context, input usecase.LogoutInput) error {
	if input.SessionID == nil {
		return nil
	}

	if err := srv.sessionRepo.Delete(ctx, *input.SessionID); err != nil {
		srv.log(ctx).Error("Failed to destroy session", slog.Any("sessionID", *input.SessionID), slog.Any("error", err))

		return errors.Wrap(err, "failed to destroy session")
	}

	srv.log(ctx).Debug("Session destroyed", slog.Any("sessionID", *input.SessionID))

	return nil
}

// ResolveSessionUser maps a live, authenticated session to its user.
func (srv *authService) ResolveSessionUser(ctx context.Context, sessionID uuid.UUID) (*entity.User, error) {
	session, err := srv.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session")
	}

	if !session.Authenticated() {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "session carries no identity")
	}

	user, err := srv.userRepo.FindByID(ctx, *session.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session user")
	}

	return user, nil
}

// GetProfile returns the user behind an authenticated identity.
func (srv *authService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load profile user")
	}

	return user, nil
}

// loadOrCreateSession returns the caller's session when it is still alive,
// otherwise establishes a fresh anonymous one.
func (srv *authService) loadOrCreateSession(ctx context.Context, sessionID *uuid.UUID) (*entity.Session, error) {
	if sessionID != nil {
		session, err := srv.sessionRepo.FindByID(ctx, *sessionID)
		if err == nil {
			return session, nil
		}
		if !errors.Is(err, repository.ErrSessionNotFound) {
			return nil, errors.Wrap(err, "failed to load existing session")
		}
	}

	session := &entity.Session{
		ID:        uuid.New(),
		ExpiresAt: time.Now().Add(srv.sessionTTL),
	}

	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	return session, nil
}

// consumeStoredState loads the callback's session and clears its stored state
// before any verification happens, so the token can never be replayed even
// when the attempt fails later.
func (srv *authService) consumeStoredState(ctx context.Context, sessionID *uuid.UUID) (*entity.Session, string, error) {
	if sessionID == nil {
		return nil, "", nil
	}

	session, err := srv.sessionRepo.FindByID(ctx, *sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, "", nil
		}

		return nil, "", errors.Wrap(err, "failed to load callback session")
	}

	storedState := session.OAuthState
	if storedState == "" {
		return session, "", nil
	}

	session.OAuthState = ""
	if err := srv.sessionRepo.Update(ctx, session); err != nil {
		return nil, "", errors.Wrap(err, "failed to clear stored oauth state")
	}

	return session, storedState, nil
}

// bindSession attaches the resolved user to the callback's session, creating a
// fresh session when the browser arrived without one.
func (srv *authService) bindSession(ctx context.Context, session *entity.Session, userID uuid.UUID) (*entity.Session, error) {
	if session == nil {
		session = &entity.Session{
			ID:        uuid.New(),
			UserID:    &userID,
			ExpiresAt: time.Now().Add(srv.sessionTTL),
		}

		if err := srv.sessionRepo.Create(ctx, session); err != nil {
			return nil, errors.Wrap(err, "failed to create authenticated session")
		}

		return session, nil
	}

	session.UserID = &userID
	session.ExpiresAt = time.Now().Add(srv.sessionTTL)

	if err := srv.sessionRepo.Update(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to update authenticated session")
	}

	return session, nil
}

// resolveIdentity maps an external profile to a local user, in order:
// an existing provider linkage wins, then a verified-email match gains a new
// linkage, and only then is a fresh account created. Everything runs in one
// transaction so a concurrent duplicate first login loses on the unique
// indexes instead of creating a second account.
func (srv *authService) resolveIdentity(ctx context.Context, profile *service.Profile) (*entity.User, error) {
	var resolvedUser *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		authRecord, err := authRepo.FindAuthentication(ctx, profile.Provider, profile.ProviderUserID)
		if err != nil && !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		if authRecord != nil {
			resolvedUser, err = userRepo.FindByID(ctx, authRecord.UserID)
			if err != nil {
				return errors.Wrap(err, "failed to load linked user")
			}

			return nil
		}

		if resolvedUser, err = srv.linkByVerifiedEmail(ctx, userRepo, authRepo, profile); err != nil {
			return err
		}
		if resolvedUser != nil {
			return nil
		}

		resolvedUser, err = srv.createFromProfile(ctx, userRepo, authRepo, profile)

		return err
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute identity resolution transaction",
			slog.String("provider", profile.Provider.String()),
			slog.Any("error", err))

		if errors.Is(err, domainerrors.ErrUserAlreadyExists) || errors.Is(err, domainerrors.ErrConflict) {
			return nil, errors.Wrap(domainerrors.ErrConflict, "concurrent login created this identity first")
		}

		return nil, errors.Wrap(err, "failed to execute identity resolution transaction")
	}

	return resolvedUser, nil
}

// linkByVerifiedEmail looks for an existing account that owns one of the
// profile's verified addresses and links the external identity to it. It
// returns (nil, nil) when no account matched, and never overwrites a linkage
// the account already has for this provider.
func (srv *authService) linkByVerifiedEmail(
	ctx context.Context,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	profile *service.Profile,
) (*entity.User, error) {
	for _, email := range verifiedEmails(profile) {
		user, err := userRepo.FindByEmail(ctx, email)
		if errors.Is(err, repository.ErrUserNotFound) {
			continue
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to find user by verified email")
		}

		_, err = authRepo.FindAuthenticationByUserIDAndProvider(ctx, user.ID, profile.Provider)
		if err == nil {
			// The account is already linked to a different identity at this
			// provider. Leave it alone and let a fresh account be created.
			srv.log(ctx).Warn("Verified email owner already linked to another identity",
				slog.Any("userID", user.ID),
				slog.String("provider", profile.Provider.String()))

			return nil, nil
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return nil, errors.Wrap(err, "failed to check existing provider linkage")
		}

		newAuth := &entity.Authentication{
			UserID:         user.ID,
			Provider:       profile.Provider,
			ProviderUserID: profile.ProviderUserID,
		}

		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return nil, errors.Wrap(err, "failed to link identity to existing user")
		}

		srv.log(ctx).Info("Linked external identity to existing account", slog.Any("userID", user.ID))

		return user, nil
	}

	return nil, nil
}

// createFromProfile establishes a brand-new account for a first-time login.
func (srv *authService) createFromProfile(
	ctx context.Context,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	profile *service.Profile,
) (*entity.User, error) {
	srv.log(ctx).Info("External identity unknown, creating new user",
		slog.String("provider", profile.Provider.String()))

	firstName, lastName := splitDisplayName(displayName(profile))

	newUser := &entity.User{
		Email:     profileEmail(profile),
		FirstName: firstName,
		LastName:  lastName,
		Role:      entity.RoleUser,
	}
	if profile.AvatarURL != "" {
		newUser.Metadata = map[string]any{"avatarUrl": profile.AvatarURL}
	}

	if err := userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user from external profile")
	}

	newAuth := &entity.Authentication{
		UserID:         newUser.ID,
		Provider:       profile.Provider,
		ProviderUserID: profile.ProviderUserID,
	}

	if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
		return nil, errors.Wrap(err, "failed to create authentication for new user")
	}

	return newUser, nil
}

// verifiedEmails returns the profile's addresses usable for account linkage,
// primary first. When the provider disclosed no per-address flags at all, the
// top-level email is trusted as-is.
func verifiedEmails(profile *service.Profile) []string {
	var emails []string

	for _, e := range profile.Emails {
		if e.Verified && e.Primary && e.Email != "" {
			emails = append(emails, strings.ToLower(e.Email))
		}
	}
	for _, e := range profile.Emails {
		if e.Verified && !e.Primary && e.Email != "" {
			emails = append(emails, strings.ToLower(e.Email))
		}
	}

	if len(emails) == 0 && len(profile.Emails) == 0 && profile.Email != "" {
		emails = append(emails, strings.ToLower(profile.Email))
	}

	return emails
}

// profileEmail picks the address stored on a newly created account, falling
// back to a synthetic unique placeholder when the provider disclosed none.
func profileEmail(profile *service.Profile) string {
	if emails := verifiedEmails(profile); len(emails) > 0 {
		return emails[0]
	}
	if profile.Email != "" {
		return strings.ToLower(profile.Email)
	}

	return profile.ProviderUserID + placeholderEmailDomain
}

// displayName resolves the name recorded for a first-time login.
func displayName(profile *service.Profile) string {
	switch {
	case profile.Name != "":
		return profile.Name
	case profile.Login != "":
		return profile.Login
	default:
		return "GitHub user"
	}
}

// splitDisplayName splits a free-form display name into first and last parts.
func splitDisplayName(name string) (string, string) {
	parts := strings.SplitN(strings.TrimSpace(name), " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}

	return parts[0], parts[1]
}
