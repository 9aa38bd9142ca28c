package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/job-board/internal/api/http/handlers"
	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/config"
	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/identifier"
	"github.com/spec-kit/job-board/internal/observability"
	"github.com/spec-kit/job-board/internal/service"
)

type emptyUserRepo struct{}

func (emptyUserRepo) Create(context.Context, *domain.User) error { return nil }
func (emptyUserRepo) Update(context.Context, *domain.User) error { return nil }
func (emptyUserRepo) GetByEmail(context.Context, string) (*domain.User, error) {
	return nil, pgx.ErrNoRows
}
func (emptyUserRepo) GetByPublicID(context.Context, string) (*domain.User, error) {
	return nil, pgx.ErrNoRows
}
func (emptyUserRepo) ExistsByEmail(context.Context, string) (bool, error)    { return false, nil }
func (emptyUserRepo) ExistsByPublicID(context.Context, string) (bool, error) { return false, nil }

func newRefreshTestApp(t *testing.T) (*fiber.App, *auth.TokenCodec) {
	t.Helper()

	codec := auth.NewTokenCodec(config.AuthConfig{
		AccessTokenSecret:      "test-access-secret",
		RefreshTokenSecret:     "test-refresh-secret",
		AccessTokenTTLMinutes:  5,
		RefreshTokenTTLMinutes: 15,
	})
	sessions := service.NewSessionService(service.PrincipalKind{
		Noun:   "User",
		Role:   domain.RoleUser,
		IDKind: identifier.KindUser,
		Store:  service.NewUserCredentialStore(emptyUserRepo{}),
	}, codec, auth.NewPasswordHasher(4), identifier.NewGenerator())
	accounts := service.NewUserAccountService(sessions, emptyUserRepo{}, nil)
	cookies := auth.NewCookieWriter(5*time.Minute, 15*time.Minute, false)

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	app.Get("/auth/refresh", handlers.NewAuthHandler(accounts, cookies).Refresh)

	return app, codec
}

func TestRefreshWithoutCookieIssuesNoToken(t *testing.T) {
	app, _ := newRefreshTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/auth/refresh", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "TOKEN_INVALID", errorCode(t, resp.Body))
	for _, cookie := range resp.Cookies() {
		assert.NotEqual(t, auth.AccessTokenCookie, cookie.Name, "no access token may be set without a refresh cookie")
	}
}

func TestRefreshWithValidCookieSetsAccessToken(t *testing.T) {
	app, codec := newRefreshTestApp(t)

	refresh, _, err := codec.Issue(auth.TokenKindRefresh, "jane@example.com", domain.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: auth.RefreshTokenCookie, Value: refresh})

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var accessCookie *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == auth.AccessTokenCookie {
			accessCookie = cookie
		}
	}
	require.NotNil(t, accessCookie, "refresh must set a new access token cookie")
	assert.True(t, accessCookie.HttpOnly)

	claims, err := codec.Validate(auth.TokenKindAccess, accessCookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", claims.Subject)
	assert.Equal(t, domain.RoleUser, claims.Role)
}
