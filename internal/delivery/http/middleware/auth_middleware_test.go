package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"padifood/config"
	"padifood/internal/domain/entity"
	domainerrors "padifood/internal/domain/errors"
	"padifood/internal/domain/service"
	mockSvc "padifood/internal/mocks/service"
	mockUsecase "padifood/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testCookieName = "padifood_session"

func testAuthConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{SessionCookieName: testCookieName},
	}
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func newAuthTestContext(t *testing.T, setup func(req *http.Request)) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	if setup != nil {
		setup(req)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestAuthMiddleware_NoCredentials(t *testing.T) {
	authUsecase := mockUsecase.NewMockAuthUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(authUsecase, tokenSvc, testAuthConfig())

	c, rec := newAuthTestContext(t, nil)

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_SessionCookie(t *testing.T) {
	authUsecase := mockUsecase.NewMockAuthUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(authUsecase, tokenSvc, testAuthConfig())

	sessionID := uuid.New()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", Role: entity.RoleUser}

	authUsecase.EXPECT().
		ResolveSessionUser(mock.Anything, sessionID).
		Return(user, nil)

	c, rec := newAuthTestContext(t, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: sessionID.String()})
	})

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user.ID, c.Get(ContextKeyUserID))
	assert.Equal(t, "user", c.Get(ContextKeyRole))
	assert.Equal(t, user.Email, c.Get(ContextKeyEmail))
}

func TestAuthMiddleware_GarbageSessionCookie(t *testing.T) {
	authUsecase := mockUsecase.NewMockAuthUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(authUsecase, tokenSvc, testAuthConfig())

	// A cookie value that is not a UUID never reaches the use case layer.
	c, rec := newAuthTestContext(t, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: "not-a-uuid"})
	})

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_BearerFallback(t *testing.T) {
	authUsecase := mockUsecase.NewMockAuthUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(authUsecase, tokenSvc, testAuthConfig())

	sessionID := uuid.New()
	claims := &service.Claims{UserID: uuid.New(), Email: "ada@example.com", Role: entity.RoleAdmin}

	// The session is dead, but a valid bearer token still gets through.
	authUsecase.EXPECT().
		ResolveSessionUser(mock.Anything, sessionID).
		Return(nil, errors.Wrap(domainerrors.ErrUnauthorized, "session carries no identity"))
	tokenSvc.EXPECT().Verify("valid.jwt.token").Return(claims, nil)

	c, rec := newAuthTestContext(t, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: sessionID.String()})
		req.Header.Set("Authorization", "Bearer valid.jwt.token")
	})

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, claims.UserID, c.Get(ContextKeyUserID))
	assert.Equal(t, "admin", c.Get(ContextKeyRole))
}

func TestAuthMiddleware_InvalidBearer(t *testing.T) {
	authUsecase := mockUsecase.NewMockAuthUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(authUsecase, tokenSvc, testAuthConfig())

	tokenSvc.EXPECT().
		Verify("expired.jwt.token").
		Return(nil, errors.Wrap(domainerrors.ErrTokenInvalid, "token verification failed"))

	c, rec := newAuthTestContext(t, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer expired.jwt.token")
	})

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MalformedAuthorizationHeader(t *testing.T) {
	authUsecase := mockUsecase.NewMockAuthUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(authUsecase, tokenSvc, testAuthConfig())

	c, rec := newAuthTestContext(t, func(req *http.Request) {
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	})

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	authUsecase := mockUsecase.NewMockAuthUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(authUsecase, tokenSvc, testAuthConfig())

	c, rec := newAuthTestContext(t, nil)
	c.Set(ContextKeyRole, "user")

	err := m.RequireRole(entity.RoleAdmin)(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	c, rec = newAuthTestContext(t, nil)
	c.Set(ContextKeyRole, "admin")

	err = m.RequireRole(entity.RoleAdmin)(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
