package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/config"
	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/observability"
)

func newGateTestApp(t *testing.T) (*fiber.App, *auth.TokenCodec) {
	t.Helper()

	codec := auth.NewTokenCodec(config.AuthConfig{
		AccessTokenSecret:      "test-access-secret",
		RefreshTokenSecret:     "test-refresh-secret",
		AccessTokenTTLMinutes:  5,
		RefreshTokenTTLMinutes: 15,
	})
	gate := auth.NewGate(codec)

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)

	app.Get("/user-only", gate.Authenticate, auth.RequireRole(domain.RoleUser), func(c *fiber.Ctx) error {
		session, ok := auth.SessionFromContext(c)
		require.True(t, ok)
		return c.JSON(fiber.Map{"email": session.Email})
	})
	app.Get("/business-only", gate.Authenticate, auth.RequireRole(domain.RoleBusiness), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	return app, codec
}

func errorCode(t *testing.T, body io.Reader) string {
	t.Helper()
	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(body).Decode(&payload))
	return payload.Error.Code
}

func TestGateRejectsMissingCookie(t *testing.T) {
	app, _ := newGateTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/user-only", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, resp.Body))
}

func TestGateRejectsTamperedCookie(t *testing.T) {
	app, codec := newGateTestApp(t)

	token, _, err := codec.Issue(auth.TokenKindAccess, "jane@example.com", domain.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/user-only", nil)
	req.AddCookie(&http.Cookie{Name: auth.AccessTokenCookie, Value: token + "x"})

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGateRejectsRefreshTokenOnAccessRoute(t *testing.T) {
	app, codec := newGateTestApp(t)

	refresh, _, err := codec.Issue(auth.TokenKindRefresh, "jane@example.com", domain.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/user-only", nil)
	req.AddCookie(&http.Cookie{Name: auth.AccessTokenCookie, Value: refresh})

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGateAdmitsValidSession(t *testing.T) {
	app, codec := newGateTestApp(t)

	token, _, err := codec.Issue(auth.TokenKindAccess, "jane@example.com", domain.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/user-only", nil)
	req.AddCookie(&http.Cookie{Name: auth.AccessTokenCookie, Value: token})

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "jane@example.com", body["email"])
}

func TestUnknownRouteReportsNotFound(t *testing.T) {
	app, _ := newGateTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorCode(t, resp.Body))
}

func TestGateForbidsWrongRole(t *testing.T) {
	app, codec := newGateTestApp(t)

	// An authenticated job seeker on a business route is a known caller with
	// the wrong kind of account, so the gate answers 403 rather than 401.
	token, _, err := codec.Issue(auth.TokenKindAccess, "jane@example.com", domain.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/business-only", nil)
	req.AddCookie(&http.Cookie{Name: auth.AccessTokenCookie, Value: token})

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", errorCode(t, resp.Body))
}
