package middleware

import (
	"strings"

	"padifood/config"
	"padifood/internal/delivery/http/response"
	"padifood/internal/delivery/http/session"
	"padifood/internal/domain/entity"
	"padifood/internal/domain/service"
	"padifood/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	// ContextKeyUserID is the authenticated user's UUID.
	ContextKeyUserID = "userID"
	// ContextKeyRole is the authenticated user's role string.
	ContextKeyRole = "role"
	// ContextKeyEmail is the authenticated user's email.
	ContextKeyEmail = "email"
)

// AuthMiddleware guards protected routes. It accepts either credential
// channel: the session cookie first, then a bearer token. Every failure mode
// collapses into the same 401 so callers learn nothing about why.
type AuthMiddleware struct {
	authUsecase       usecase.AuthUsecase
	tokenSvc          service.TokenService
	sessionCookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUsecase usecase.AuthUsecase, tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	cookieName := ""
	if cfg != nil && cfg.Auth != nil {
		cookieName = cfg.Auth.SessionCookieName
	}

	return &AuthMiddleware{
		authUsecase:       authUsecase,
		tokenSvc:          tokenSvc,
		sessionCookieName: cookieName,
	}
}

// Authenticate resolves the caller's identity from either channel.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.authenticateSession(c) || m.authenticateBearer(c) {
			return next(c)
		}

		return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized")
	}
}

// authenticateSession tries the session cookie channel. Any failure along the
// way (no cookie, unknown or expired session, no bound user) means "try the
// next channel", not an error.
func (m *AuthMiddleware) authenticateSession(c echo.Context) bool {
	sessionID := session.ReadSessionID(c, m.sessionCookieName)
	if sessionID == nil {
		return false
	}

	user, err := m.authUsecase.ResolveSessionUser(c.Request().Context(), *sessionID)
	if err != nil {
		return false
	}

	c.Set(ContextKeyUserID, user.ID)
	c.Set(ContextKeyRole, user.Role.String())
	c.Set(ContextKeyEmail, user.Email)

	return true
}

// authenticateBearer tries the Authorization header channel.
func (m *AuthMiddleware) authenticateBearer(c echo.Context) bool {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return false
	}

	claims, err := m.tokenSvc.Verify(tokenString)
	if err != nil {
		return false
	}

	c.Set(ContextKeyUserID, claims.UserID)
	c.Set(ContextKeyRole, claims.Role.String())
	c.Set(ContextKeyEmail, claims.Email)

	return true
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(string)
			if !ok || role != requiredRole.String() {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}
