package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hongminglow/movies-be/internal/models"
)

// TokenTTL is the fixed lifetime of an access token.
const TokenTTL = time.Hour

// ErrInvalidToken covers bad signatures, malformed payloads and expiry alike.
var ErrInvalidToken = errors.New("invalid or expired token")

// ErrEmptySecret is returned when a token manager is built without a secret.
var ErrEmptySecret = errors.New("token signing secret is empty")

// Claims is the identity carried inside a token.
type Claims struct {
	UserID   int64
	Username string
	Role     models.Role
}

type tokenClaims struct {
	jwt.RegisteredClaims
	UserID   int64       `json:"uid"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}

// TokenManager issues and verifies HS256 JWTs with a process-wide secret.
type TokenManager struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// TokenOption customises a TokenManager.
type TokenOption func(*TokenManager)

// WithClock overrides the clock used for issuance and expiry checks.
func WithClock(now func() time.Time) TokenOption {
	return func(t *TokenManager) {
		t.now = now
	}
}

// NewTokenManager creates a manager with the provided secret and issuer.
func NewTokenManager(secret, issuer string, opts ...TokenOption) (*TokenManager, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	t := &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Issue signs a token for claims that expires exactly TokenTTL after issuance.
// Issuance is truncated to whole seconds to match the JWT NumericDate encoding,
// so the [iat, iat+1h) window is measured from the encoded iat.
func (t *TokenManager) Issue(claims Claims) (string, error) {
	issuedAt := t.now().Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			Subject:   strconv.FormatInt(claims.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(TokenTTL)),
		},
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	})
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry of raw and returns its claims. Every
// failure wraps ErrInvalidToken; the jwt cause is kept for logs.
func (t *TokenManager) Verify(raw string) (Claims, error) {
	parsed := &tokenClaims{}
	_, err := jwt.ParseWithClaims(raw, parsed, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if parsed.UserID <= 0 || parsed.Username == "" || !parsed.Role.Valid() {
		return Claims{}, fmt.Errorf("%w: incomplete identity claims", ErrInvalidToken)
	}
	return Claims{
		UserID:   parsed.UserID,
		Username: parsed.Username,
		Role:     parsed.Role,
	}, nil
}
