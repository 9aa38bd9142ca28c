package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Cookie names used to transport tokens. Tokens travel only in these
// httpOnly cookies, never in response bodies.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// CookieWriter places tokens into httpOnly cookies and clears them on logout.
type CookieWriter struct {
	accessTTL  time.Duration
	refreshTTL time.Duration
	secure     bool
}

// NewCookieWriter builds a writer with the configured token lifetimes.
func NewCookieWriter(accessTTL, refreshTTL time.Duration, secure bool) *CookieWriter {
	return &CookieWriter{accessTTL: accessTTL, refreshTTL: refreshTTL, secure: secure}
}

// SetAccessToken writes the access token cookie.
func (w *CookieWriter) SetAccessToken(c *fiber.Ctx, token string) {
	w.set(c, AccessTokenCookie, token, w.accessTTL)
}

// SetRefreshToken writes the refresh token cookie.
func (w *CookieWriter) SetRefreshToken(c *fiber.Ctx, token string) {
	w.set(c, RefreshTokenCookie, token, w.refreshTTL)
}

// Clear expires both token cookies.
func (w *CookieWriter) Clear(c *fiber.Ctx) {
	w.expire(c, AccessTokenCookie)
	w.expire(c, RefreshTokenCookie)
}

func (w *CookieWriter) set(c *fiber.Ctx, name, value string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		Secure:   w.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (w *CookieWriter) expire(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   w.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
