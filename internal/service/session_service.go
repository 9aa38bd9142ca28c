package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/identifier"
	"github.com/spec-kit/job-board/internal/repository"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// registerAttempts caps how many generate-and-persist cycles a registration
// may burn when racing other registrations on the same public id.
const registerAttempts = 3

// CredentialStore is the per-kind lookup surface the session flows need.
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (*domain.Principal, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPublicID(ctx context.Context, publicID string) (bool, error)
}

// PrincipalKind describes one account family: its store, its fixed role, its
// identifier namespace and the noun used in client-facing messages. Both
// families run through the same SessionService code.
type PrincipalKind struct {
	Noun   string
	Role   domain.Role
	IDKind identifier.Kind
	Store  CredentialStore
}

// LoginResult carries identity fields for the response body and the token
// pair for the transport layer to place into cookies. Handlers must never
// echo the token strings into JSON.
type LoginResult struct {
	Message      string
	PublicID     string
	Email        string
	Role         domain.Role
	AccessToken  string
	RefreshToken string
}

// RegisterResult mirrors the original registration response; no tokens are
// issued, registration does not imply login.
type RegisterResult struct {
	Message  string
	PublicID string
	Email    string
	Role     domain.Role
}

// SessionService orchestrates login, registration and refresh for one
// principal kind. Instantiate once per kind.
type SessionService struct {
	kind   PrincipalKind
	codec  *auth.TokenCodec
	hasher *auth.PasswordHasher
	ids    *identifier.Generator
}

// NewSessionService builds the service for a principal kind.
func NewSessionService(kind PrincipalKind, codec *auth.TokenCodec, hasher *auth.PasswordHasher, ids *identifier.Generator) *SessionService {
	return &SessionService{kind: kind, codec: codec, hasher: hasher, ids: ids}
}

// Login authenticates by email and password and issues an access/refresh
// token pair. Unknown email and wrong password fail identically.
func (s *SessionService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	principal, err := s.kind.Store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewCredentialError()
		}
		return nil, err
	}

	if !s.hasher.Matches(password, principal.PasswordHash) {
		return nil, apperrors.NewCredentialError()
	}

	accessToken, _, err := s.codec.Issue(auth.TokenKindAccess, principal.Email, principal.Role)
	if err != nil {
		return nil, err
	}
	refreshToken, _, err := s.codec.Issue(auth.TokenKindRefresh, principal.Email, principal.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Message:      fmt.Sprintf("%s successfully logged in", s.kind.Noun),
		PublicID:     principal.PublicID,
		Email:        principal.Email,
		Role:         principal.Role,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// PersistFunc writes the owning entity under the assigned public id. It must
// surface the store's uniqueness rejection unchanged so a losing id race can
// be detected and retried.
type PersistFunc func(ctx context.Context, publicID string) error

// Register creates a new principal: conflict check, public id assignment,
// persistence. Generation and persistence retry together as one unit when the
// store rejects the id as already taken.
func (s *SessionService) Register(ctx context.Context, email string, persist PersistFunc) (*RegisterResult, error) {
	exists, err := s.kind.Store.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflict("email already registered", map[string]any{"email": email})
	}

	var publicID string
	for attempt := 0; attempt < registerAttempts; attempt++ {
		publicID, err = s.ids.Generate(ctx, s.kind.IDKind, s.kind.Store.ExistsByPublicID)
		if err != nil {
			return nil, err
		}

		err = persist(ctx, publicID)
		if err == nil {
			break
		}
		if !repository.IsUniqueViolation(err) {
			return nil, err
		}
		// A concurrent registration won the draw. The email may also have
		// been taken in the meantime; re-check before drawing again.
		taken, checkErr := s.kind.Store.ExistsByEmail(ctx, email)
		if checkErr != nil {
			return nil, checkErr
		}
		if taken {
			return nil, apperrors.NewConflict("email already registered", map[string]any{"email": email})
		}
	}
	if err != nil {
		return nil, apperrors.NewResourceExhausted(string(s.kind.IDKind))
	}

	return &RegisterResult{
		Message:  fmt.Sprintf("%s successfully registered", s.kind.Noun),
		PublicID: publicID,
		Email:    email,
		Role:     s.kind.Role,
	}, nil
}

// Refresh validates the refresh token and mints exactly one new access token
// carrying the same subject and role. The refresh token is not rotated; it
// stays valid until its own expiry.
func (s *SessionService) Refresh(refreshToken string) (string, error) {
	claims, err := s.codec.Validate(auth.TokenKindRefresh, refreshToken)
	if err != nil {
		return "", apperrors.NewInvalidToken("invalid refresh token")
	}

	accessToken, _, err := s.codec.Issue(auth.TokenKindAccess, claims.Subject, claims.Role)
	if err != nil {
		return "", err
	}
	return accessToken, nil
}

// HashPassword exposes the configured hasher for registration handlers.
func (s *SessionService) HashPassword(password string) (string, error) {
	return s.hasher.Hash(password)
}
