package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/domain"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

const sessionKey = "auth_session"

// Session carries the claims extracted from a verified access token.
type Session struct {
	Email string
	Role  domain.Role
}

// Gate authenticates requests from the access token cookie and enforces the
// role a route requires.
type Gate struct {
	codec *TokenCodec
}

// NewGate constructs the authorization gate.
func NewGate(codec *TokenCodec) *Gate {
	return &Gate{codec: codec}
}

// Authenticate extracts and verifies the access token. Absent, mis-signed and
// expired tokens all fail the same way: no session.
func (g *Gate) Authenticate(c *fiber.Ctx) error {
	tokenString := c.Cookies(AccessTokenCookie)
	if tokenString == "" {
		return apperrors.NewUnauthorized("missing access token")
	}

	claims, err := g.codec.Validate(TokenKindAccess, tokenString)
	if err != nil {
		return apperrors.NewUnauthorized("invalid or expired access token")
	}

	c.Locals(sessionKey, &Session{Email: claims.Subject, Role: claims.Role})
	return c.Next()
}

// RequireRole forbids authenticated principals of the wrong kind. A business
// token on a user-only route is a known caller, so this is 403 rather than 401.
func RequireRole(required domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := SessionFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("not authenticated")
		}
		if session.Role != required {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}

// SessionFromContext retrieves the authenticated caller's claims.
func SessionFromContext(c *fiber.Ctx) (*Session, bool) {
	val := c.Locals(sessionKey)
	if val == nil {
		return nil, false
	}
	session, ok := val.(*Session)
	return session, ok
}
