package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/config"
	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/identifier"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

type stubStore struct {
	principals map[string]*domain.Principal
	publicIDs  map[string]bool
}

func newStubStore() *stubStore {
	return &stubStore{
		principals: map[string]*domain.Principal{},
		publicIDs:  map[string]bool{},
	}
}

func (s *stubStore) FindByEmail(_ context.Context, email string) (*domain.Principal, error) {
	principal, ok := s.principals[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return principal, nil
}

func (s *stubStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := s.principals[email]
	return ok, nil
}

func (s *stubStore) ExistsByPublicID(_ context.Context, publicID string) (bool, error) {
	return s.publicIDs[publicID], nil
}

func (s *stubStore) add(principal *domain.Principal) {
	s.principals[principal.Email] = principal
	s.publicIDs[principal.PublicID] = true
}

func newTestSessionService(store *stubStore) *SessionService {
	codec := auth.NewTokenCodec(config.AuthConfig{
		AccessTokenSecret:      "test-access-secret",
		RefreshTokenSecret:     "test-refresh-secret",
		AccessTokenTTLMinutes:  5,
		RefreshTokenTTLMinutes: 15,
	})
	hasher := auth.NewPasswordHasher(4)
	return NewSessionService(PrincipalKind{
		Noun:   "User",
		Role:   domain.RoleUser,
		IDKind: identifier.KindUser,
		Store:  store,
	}, codec, hasher, identifier.NewGenerator())
}

func TestLoginSuccess(t *testing.T) {
	store := newStubStore()
	svc := newTestSessionService(store)

	hash, err := svc.HashPassword("s3cret")
	require.NoError(t, err)
	store.add(&domain.Principal{
		PublicID:     "123",
		Email:        "jane@example.com",
		PasswordHash: hash,
		Role:         domain.RoleUser,
	})

	result, err := svc.Login(context.Background(), "jane@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "User successfully logged in", result.Message)
	assert.Equal(t, "123", result.PublicID)
	assert.Equal(t, "jane@example.com", result.Email)
	assert.Equal(t, domain.RoleUser, result.Role)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.NotEqual(t, result.AccessToken, result.RefreshToken)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	store := newStubStore()
	svc := newTestSessionService(store)

	hash, err := svc.HashPassword("s3cret")
	require.NoError(t, err)
	store.add(&domain.Principal{
		PublicID:     "123",
		Email:        "jane@example.com",
		PasswordHash: hash,
		Role:         domain.RoleUser,
	})

	_, unknownErr := svc.Login(context.Background(), "nobody@example.com", "s3cret")
	_, wrongPwErr := svc.Login(context.Background(), "jane@example.com", "wrong")

	var unknownDomain, wrongPwDomain *apperrors.DomainError
	require.ErrorAs(t, unknownErr, &unknownDomain)
	require.ErrorAs(t, wrongPwErr, &wrongPwDomain)

	assert.Equal(t, unknownDomain.Code, wrongPwDomain.Code)
	assert.Equal(t, unknownDomain.Message, wrongPwDomain.Message)
	assert.Equal(t, 401, wrongPwDomain.HTTPStatus)
}

func TestRegisterAssignsFreshPublicID(t *testing.T) {
	store := newStubStore()
	svc := newTestSessionService(store)

	var persisted string
	result, err := svc.Register(context.Background(), "jane@example.com", func(_ context.Context, publicID string) error {
		persisted = publicID
		store.add(&domain.Principal{PublicID: publicID, Email: "jane@example.com", Role: domain.RoleUser})
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "User successfully registered", result.Message)
	assert.Equal(t, persisted, result.PublicID)
	assert.Regexp(t, `^[1-9][0-9]{2}$`, result.PublicID)
	assert.Equal(t, domain.RoleUser, result.Role)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	store := newStubStore()
	svc := newTestSessionService(store)
	store.add(&domain.Principal{PublicID: "123", Email: "jane@example.com", Role: domain.RoleUser})

	_, err := svc.Register(context.Background(), "jane@example.com", func(context.Context, string) error {
		t.Fatal("persist must not run for a duplicate email")
		return nil
	})

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)
}

func TestRegisterRetriesOnPublicIDRace(t *testing.T) {
	store := newStubStore()
	svc := newTestSessionService(store)

	// First persist loses an id race; the retry draws again and succeeds.
	attempts := 0
	result, err := svc.Register(context.Background(), "jane@example.com", func(_ context.Context, publicID string) error {
		attempts++
		if attempts == 1 {
			return &pgconn.PgError{Code: "23505"}
		}
		store.add(&domain.Principal{PublicID: publicID, Email: "jane@example.com", Role: domain.RoleUser})
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.NotEmpty(t, result.PublicID)
}

func TestRegisterSurfacesEmailRaceAsConflict(t *testing.T) {
	store := newStubStore()
	svc := newTestSessionService(store)

	// The uniqueness rejection came from a concurrent registration of the
	// same email, not from a public-id collision.
	_, err := svc.Register(context.Background(), "jane@example.com", func(context.Context, string) error {
		store.add(&domain.Principal{PublicID: "987", Email: "jane@example.com", Role: domain.RoleUser})
		return &pgconn.PgError{Code: "23505"}
	})

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)
}

func TestRegisterGivesUpAfterRepeatedIDRaces(t *testing.T) {
	store := newStubStore()
	svc := newTestSessionService(store)

	attempts := 0
	_, err := svc.Register(context.Background(), "jane@example.com", func(context.Context, string) error {
		attempts++
		return &pgconn.PgError{Code: "23505"}
	})

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ID_SPACE_EXHAUSTED", domainErr.Code)
	assert.Equal(t, registerAttempts, attempts)
}

func TestRefreshIssuesAccessTokenWithoutRotation(t *testing.T) {
	store := newStubStore()
	svc := newTestSessionService(store)

	hash, err := svc.HashPassword("s3cret")
	require.NoError(t, err)
	store.add(&domain.Principal{
		PublicID:     "123",
		Email:        "jane@example.com",
		PasswordHash: hash,
		Role:         domain.RoleUser,
	})

	login, err := svc.Login(context.Background(), "jane@example.com", "s3cret")
	require.NoError(t, err)

	accessToken, err := svc.Refresh(login.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)

	claims, err := svc.codec.Validate(auth.TokenKindAccess, accessToken)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", claims.Subject)
	assert.Equal(t, domain.RoleUser, claims.Role)
	assert.True(t, claims.ExpiresAt.Time.After(time.Now()))

	// The refresh token itself stays usable; refreshing does not rotate it.
	_, err = svc.Refresh(login.RefreshToken)
	assert.NoError(t, err)
}

func TestBusinessRegisterLoginLifecycle(t *testing.T) {
	store := newStubStore()
	codec := auth.NewTokenCodec(config.AuthConfig{
		AccessTokenSecret:      "test-access-secret",
		RefreshTokenSecret:     "test-refresh-secret",
		AccessTokenTTLMinutes:  5,
		RefreshTokenTTLMinutes: 15,
	})
	svc := NewSessionService(PrincipalKind{
		Noun:   "Business",
		Role:   domain.RoleBusiness,
		IDKind: identifier.KindBusiness,
		Store:  store,
	}, codec, auth.NewPasswordHasher(4), identifier.NewGenerator())

	hash, err := svc.HashPassword("s3cret")
	require.NoError(t, err)

	registered, err := svc.Register(context.Background(), "biz@x.com", func(_ context.Context, publicID string) error {
		store.add(&domain.Principal{
			PublicID:     publicID,
			Email:        "biz@x.com",
			PasswordHash: hash,
			Role:         domain.RoleBusiness,
		})
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Business successfully registered", registered.Message)
	assert.Regexp(t, `^B[0-9]{4}$`, registered.PublicID)
	assert.Equal(t, domain.RoleBusiness, registered.Role)

	// A second registration with the same email conflicts.
	_, err = svc.Register(context.Background(), "biz@x.com", func(context.Context, string) error { return nil })
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)

	login, err := svc.Login(context.Background(), "biz@x.com", "s3cret")
	require.NoError(t, err)
	claims, err := codec.Validate(auth.TokenKindAccess, login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "biz@x.com", claims.Subject)
	assert.Equal(t, domain.RoleBusiness, claims.Role)
}

func TestRefreshRejectsBadTokens(t *testing.T) {
	store := newStubStore()
	svc := newTestSessionService(store)

	hash, err := svc.HashPassword("s3cret")
	require.NoError(t, err)
	store.add(&domain.Principal{
		PublicID:     "123",
		Email:        "jane@example.com",
		PasswordHash: hash,
		Role:         domain.RoleUser,
	})
	login, err := svc.Login(context.Background(), "jane@example.com", "s3cret")
	require.NoError(t, err)

	cases := map[string]string{
		"garbage":            "not-a-jwt",
		"access as refresh":  login.AccessToken,
		"empty":              "",
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Refresh(token)
			var domainErr *apperrors.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, "TOKEN_INVALID", domainErr.Code)
		})
	}
}
