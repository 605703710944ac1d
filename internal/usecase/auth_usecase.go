// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"padifood/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// BeginOAuthInput carries the caller's session, if any, into the OAuth start flow.
// A nil SessionID means the browser arrived without a usable session cookie.
type BeginOAuthInput struct {
	SessionID *uuid.UUID
}

// CompleteOAuthInput carries everything the provider callback returned, plus
// both copies of the anti-forgery state: the one bound to the server-side
// session and the one the browser echoed back in its own cookie.
type CompleteOAuthInput struct {
	SessionID     *uuid.UUID
	Code          string
	ReturnedState string
	CookieState   string
}

// LogoutInput identifies the session to destroy.
type LogoutInput struct {
	SessionID *uuid.UUID
}

// --- Output DTOs ---

// BeginOAuthOutput returns the provider redirect target and the state token
// that must be mirrored into the browser cookie.
type BeginOAuthOutput struct {
	SessionID   uuid.UUID
	State       string
	RedirectURL string
}

// CompleteOAuthOutput returns the freshly minted access token and the user it
// belongs to after a successful callback. SessionID names the session now
// bound to the user, which may be newly created.
type CompleteOAuthOutput struct {
	SessionID   uuid.UUID
	AccessToken string
	TokenType   string
	User        *entity.User
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// BeginOAuth prepares a session and single-use state token, and returns the
	// provider authorization URL to redirect the browser to.
	BeginOAuth(ctx context.Context, input BeginOAuthInput) (*BeginOAuthOutput, error)

	// CompleteOAuth verifies the returned state, exchanges the code, resolves
	// the external identity to a local user, binds the session and mints a JWT.
	// The stored state is consumed no matter how verification ends.
	CompleteOAuth(ctx context.Context, input CompleteOAuthInput) (*CompleteOAuthOutput, error)

	// Logout destroys the session. Absent or already-destroyed sessions are not errors.
	Logout(ctx context.Context, input LogoutInput) error

	// ResolveSessionUser maps a session ID to its bound user, if the session is
	// alive and authenticated.
	ResolveSessionUser(ctx context.Context, sessionID uuid.UUID) (*entity.User, error)

	// GetProfile returns the user behind an authenticated identity.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
