package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCookieName = "padifood_session"

func newCookieTestContext(setup func(req *http.Request)) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if setup != nil {
		setup(req)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

func TestReadSessionID(t *testing.T) {
	sessionID := uuid.New()

	c, _ := newCookieTestContext(func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: sessionID.String()})
	})

	got := ReadSessionID(c, testCookieName)
	require.NotNil(t, got)
	assert.Equal(t, sessionID, *got)
}

func TestReadSessionID_MissingOrGarbage(t *testing.T) {
	c, _ := newCookieTestContext(nil)
	assert.Nil(t, ReadSessionID(c, testCookieName))

	c, _ = newCookieTestContext(func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: "not-a-uuid"})
	})
	assert.Nil(t, ReadSessionID(c, testCookieName))
}

func TestWriteSessionCookie(t *testing.T) {
	sessionID := uuid.New()
	c, rec := newCookieTestContext(nil)

	WriteSessionCookie(c, testCookieName, sessionID, time.Hour)

	cookie := findCookie(rec, testCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, sessionID.String(), cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 3600, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestWriteSessionCookie_SecureBehindProxy(t *testing.T) {
	c, rec := newCookieTestContext(func(req *http.Request) {
		req.Header.Set("X-Forwarded-Proto", "https")
	})

	WriteSessionCookie(c, testCookieName, uuid.New(), time.Hour)

	cookie := findCookie(rec, testCookieName)
	require.NotNil(t, cookie)
	assert.True(t, cookie.Secure)
}

func TestClearSessionCookie(t *testing.T) {
	c, rec := newCookieTestContext(nil)

	ClearSessionCookie(c, testCookieName)

	cookie := findCookie(rec, testCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
}

func TestStateCookieRoundTrip(t *testing.T) {
	c, rec := newCookieTestContext(nil)

	WriteStateCookie(c, "fresh-state", 5*time.Minute)

	cookie := findCookie(rec, StateCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "fresh-state", cookie.Value)
	assert.Equal(t, 300, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)

	c, _ = newCookieTestContext(func(req *http.Request) {
		req.AddCookie(cookie)
	})
	assert.Equal(t, "fresh-state", ReadStateCookie(c))
}

func TestReadStateCookie_Missing(t *testing.T) {
	c, _ := newCookieTestContext(nil)

	assert.Empty(t, ReadStateCookie(c))
}

func TestClearStateCookie(t *testing.T) {
	c, rec := newCookieTestContext(nil)

	ClearStateCookie(c)

	cookie := findCookie(rec, StateCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
}
