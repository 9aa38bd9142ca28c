package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/job-board/internal/config"
	"github.com/spec-kit/job-board/internal/domain"
)

// TokenKind selects which signing key and lifetime apply.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

var (
	// ErrTokenInvalid covers bad signatures, wrong signing method and malformed input.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrTokenExpired marks a structurally valid token past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrUnknownTokenKind is returned for kinds outside access/refresh.
	ErrUnknownTokenKind = errors.New("unknown token kind")
)

// Claims describes the JWT payload shared by both token kinds.
type Claims struct {
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenCodec issues and verifies access and refresh JWTs. The two kinds use
// independent HMAC secrets, so a token of one kind never verifies as the other.
type TokenCodec struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

// NewTokenCodec builds a codec from auth configuration.
func NewTokenCodec(cfg config.AuthConfig) *TokenCodec {
	accessTTL := cfg.AccessTokenTTL()
	if accessTTL <= 0 {
		accessTTL = 5 * time.Minute
	}
	refreshTTL := cfg.RefreshTokenTTL()
	if refreshTTL <= 0 {
		refreshTTL = 15 * time.Minute
	}
	return &TokenCodec{
		accessSecret:  []byte(cfg.AccessTokenSecret),
		refreshSecret: []byte(cfg.RefreshTokenSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}
}

func (tc *TokenCodec) secret(kind TokenKind) ([]byte, error) {
	switch kind {
	case TokenKindAccess:
		return tc.accessSecret, nil
	case TokenKindRefresh:
		return tc.refreshSecret, nil
	default:
		return nil, ErrUnknownTokenKind
	}
}

func (tc *TokenCodec) lifetime(kind TokenKind) time.Duration {
	if kind == TokenKindRefresh {
		return tc.refreshTTL
	}
	return tc.accessTTL
}

// Issue builds and signs a token carrying subject (login email) and role.
func (tc *TokenCodec) Issue(kind TokenKind, subject string, role domain.Role) (string, time.Time, error) {
	secret, err := tc.secret(kind)
	if err != nil {
		return "", time.Time{}, err
	}

	issuedAt := tc.now()
	expiresAt := issuedAt.Add(tc.lifetime(kind))
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// DecodeAndVerify checks signature and structure against the kind's secret and
// returns the claims. Expiry is deliberately not enforced here; callers decide
// whether a stale-but-authentic token matters via IsExpired or Validate.
func (tc *TokenCodec) DecodeAndVerify(kind TokenKind, tokenString string) (*Claims, error) {
	secret, err := tc.secret(kind)
	if err != nil {
		return nil, err
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	parsed, err := parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// IsExpired reports whether an authentic token's expiry has passed. A token
// that fails decoding is invalid, not merely stale, and reports false.
func (tc *TokenCodec) IsExpired(kind TokenKind, tokenString string) bool {
	claims, err := tc.DecodeAndVerify(kind, tokenString)
	if err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return true
	}
	return claims.ExpiresAt.Time.Before(tc.now())
}

// Validate combines signature verification and the expiry check. It is the
// entry point for refresh and per-request authorization.
func (tc *TokenCodec) Validate(kind TokenKind, tokenString string) (*Claims, error) {
	claims, err := tc.DecodeAndVerify(kind, tokenString)
	if err != nil {
		return nil, err
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(tc.now()) {
		return nil, ErrTokenExpired
	}
	return claims, nil
}
