// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"padifood/config"
	"padifood/internal/delivery/http/response"
	"padifood/internal/delivery/http/session"
	domainerrors "padifood/internal/domain/errors"
	"padifood/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// oauthRedirectPath is the static landing page that lifts the token out of
// the URL fragment client-side. Fragments never reach server logs.
const oauthRedirectPath = "/api-docs/oauth2-redirect"

// AuthHandler holds dependencies for authentication-related handlers.
type AuthHandler struct {
	uc                usecase.AuthUsecase
	logger            *slog.Logger
	publicBaseURL     string
	sessionCookieName string
	sessionTTL        time.Duration
	stateTTL          time.Duration
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	h := &AuthHandler{
		uc:     uc,
		logger: logger,
	}
	if cfg != nil && cfg.Auth != nil {
		h.publicBaseURL = cfg.Auth.PublicBaseURL
		h.sessionCookieName = cfg.Auth.SessionCookieName
		h.sessionTTL = cfg.Auth.SessionTTL
		h.stateTTL = cfg.Auth.StateTTL
	}

	return h
}

// StartOAuth issues a fresh state token, stores it in the session and mirrors
// it into the oauth_state cookie, then hands the browser to the provider.
func (h *AuthHandler) StartOAuth(c echo.Context) error {
	output, err := h.uc.BeginOAuth(c.Request().Context(), usecase.BeginOAuthInput{
		SessionID: session.ReadSessionID(c, h.sessionCookieName),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	session.WriteSessionCookie(c, h.sessionCookieName, output.SessionID, h.sessionTTL)
	session.WriteStateCookie(c, output.State, h.stateTTL)

	return c.Redirect(http.StatusFound, output.RedirectURL)
}

// Callback handles the provider's redirect back. Whatever the outcome, both
// state copies are consumed and the browser ends up on the token landing page
// with the result in the URL fragment.
func (h *AuthHandler) Callback(c echo.Context) error {
	input := usecase.CompleteOAuthInput{
		SessionID:     session.ReadSessionID(c, h.sessionCookieName),
		Code:          c.QueryParam("code"),
		ReturnedState: c.QueryParam("state"),
		CookieState:   session.ReadStateCookie(c),
	}

	// The cookie copy is single-use no matter what happens next.
	session.ClearStateCookie(c)

	output, err := h.uc.CompleteOAuth(c.Request().Context(), input)
	if err != nil {
		return h.redirectWithError(c, input.ReturnedState, err)
	}

	session.WriteSessionCookie(c, h.sessionCookieName, output.SessionID, h.sessionTTL)

	fragment := url.Values{}
	fragment.Set("access_token", output.AccessToken)
	fragment.Set("token_type", output.TokenType)
	if input.ReturnedState != "" {
		fragment.Set("state", input.ReturnedState)
	}

	return c.Redirect(http.StatusFound, h.publicBaseURL+oauthRedirectPath+"#"+fragment.Encode())
}

// Failure is the terminal page for aborted provider flows.
func (h *AuthHandler) Failure(c echo.Context) error {
	return response.Unauthorized(c, "OAUTH_FAILED", "GitHub authentication failed")
}

// Logout destroys the session and clears its cookie. Always succeeds from the
// caller's point of view unless the store itself fails.
func (h *AuthHandler) Logout(c echo.Context) error {
	err := h.uc.Logout(c.Request().Context(), usecase.LogoutInput{
		SessionID: session.ReadSessionID(c, h.sessionCookieName),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	session.ClearSessionCookie(c, h.sessionCookieName)

	return response.Success(c, http.StatusOK, map[string]string{"message": "Logged out"}, "Logout successful")
}

// GetProfile returns the authenticated caller's user record.
func (h *AuthHandler) GetProfile(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized")
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, NewUserResponse(user), "Profile retrieved successfully")
}

// OAuth2Redirect serves the static landing page. The token rides in the URL
// fragment, so only client-side script can read it.
func (h *AuthHandler) OAuth2Redirect(c echo.Context) error {
	return c.HTML(http.StatusOK, oauth2RedirectHTML)
}

// redirectWithError sends the browser to the landing page with an error code
// in the fragment. State failures get their own code; everything else is
// deliberately opaque.
func (h *AuthHandler) redirectWithError(c echo.Context, returnedState string, err error) error {
	code := "server_error"
	if errors.Is(err, domainerrors.ErrStateMismatch) {
		code = "state_mismatch"
	}

	h.logger.Warn("OAuth callback failed",
		slog.String("errorCode", code),
		slog.Any("error", err))

	fragment := url.Values{}
	fragment.Set("error", code)
	if returnedState != "" {
		fragment.Set("state", returnedState)
	}

	return c.Redirect(http.StatusFound, h.publicBaseURL+oauthRedirectPath+"#"+fragment.Encode())
}

const oauth2RedirectHTML = `<!DOCTYPE html>
<html>
<head><title>Signing in...</title></head>
<body>
<p>Completing sign-in…</p>
<script>
  (function () {
    var params = new URLSearchParams(window.location.hash.slice(1));
    if (params.get("error")) {
      document.body.textContent = "Sign-in failed: " + params.get("error");
      return;
    }
    var token = params.get("access_token");
    if (token && window.opener) {
      window.opener.postMessage({ access_token: token, token_type: params.get("token_type") }, window.location.origin);
      window.close();
      return;
    }
    document.body.textContent = token ? "Signed in." : "No token received.";
  })();
</script>
</body>
</html>`
