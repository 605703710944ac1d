// Package session contains the cookie plumbing for the two browser-side
// correlation channels: the opaque session cookie and the short-lived
// oauth_state fallback cookie.
package session

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// StateCookieName is the fallback channel for the OAuth anti-forgery state.
// It exists so the callback can still be verified when the session row was
// lost between the redirect and the callback.
const StateCookieName = "oauth_state"

// ReadSessionID extracts and parses the session cookie. A missing or
// malformed cookie yields nil: garbage is indistinguishable from absence.
func ReadSessionID(c echo.Context, cookieName string) *uuid.UUID {
	cookie, err := c.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	id, err := uuid.Parse(cookie.Value)
	if err != nil {
		return nil
	}

	return &id
}

// WriteSessionCookie sets the http-only session cookie.
func WriteSessionCookie(c echo.Context, cookieName string, sessionID uuid.UUID, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    sessionID.String(),
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   isSecure(c),
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie immediately.
func ClearSessionCookie(c echo.Context, cookieName string) {
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   isSecure(c),
		SameSite: http.SameSiteLaxMode,
	})
}

// ReadStateCookie returns the state echoed back by the browser, if any.
func ReadStateCookie(c echo.Context) string {
	cookie, err := c.Cookie(StateCookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}

// WriteStateCookie mirrors the freshly issued state into the browser cookie.
// SameSite=Lax is deliberate: the callback arrives as a top-level cross-site
// navigation from the provider, which Lax still attaches cookies to.
func WriteStateCookie(c echo.Context, state string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     StateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   isSecure(c),
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearStateCookie expires the state cookie. Called on every callback outcome:
// the state is single-use.
func ClearStateCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     StateCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   isSecure(c),
		SameSite: http.SameSiteLaxMode,
	})
}

// isSecure reports whether the request arrived over TLS, directly or through a
// terminating proxy.
func isSecure(c echo.Context) bool {
	if c.Request().TLS != nil {
		return true
	}

	return c.Request().Header.Get("X-Forwarded-Proto") == "https"
}
