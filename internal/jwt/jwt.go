package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token validation errors.
var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrMissingHeader = errors.New("authorization header missing")
	ErrHeaderFormat  = errors.New("invalid authorization header format")
)

// Claims carries the identity embedded in a signed token.
type Claims struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	jwt.RegisteredClaims
}

// JWT issues and verifies signed identity tokens.
type JWT struct {
	secretKey    string
	exp          time.Duration // hard expiry enforced by the verifier
	refreshAfter time.Duration // soft window after which a token should be reissued
}

// Option configures a JWT instance.
type Option func(*JWT)

// WithSecretKey sets the signing secret.
func WithSecretKey(secret string) Option {
	return func(j *JWT) { j.secretKey = secret }
}

// WithExpiration sets the hard expiry window.
func WithExpiration(exp time.Duration) Option {
	return func(j *JWT) { j.exp = exp }
}

// WithRefreshAfter sets the soft window after which NeedsRefresh reports true.
func WithRefreshAfter(d time.Duration) Option {
	return func(j *JWT) { j.refreshAfter = d }
}

// New creates a new JWT instance. Defaults: 24h hard expiry, 1h soft refresh window.
func New(opts ...Option) *JWT {
	j := &JWT{
		exp:          24 * time.Hour,
		refreshAfter: time.Hour,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate creates a signed token embedding the given identity.
func (j *JWT) Generate(ctx context.Context, username, firstName, lastName string) (string, error) {
	now := time.Now()
	claims := Claims{
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.exp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// GetClaims parses the token string and returns the embedded identity if the
// signature and expiry check out.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Username == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Validate checks that the token string is well formed, signed and unexpired.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaims(ctx, tokenString)
	return err
}

// NeedsRefresh reports whether a valid token is stale enough that a fresh one
// should be attached to the response. Implements sliding-session semantics
// without server-side state.
func (j *JWT) NeedsRefresh(ctx context.Context, claims *Claims) bool {
	if claims == nil || claims.IssuedAt == nil {
		return false
	}
	return time.Since(claims.IssuedAt.Time) > j.refreshAfter
}

// GetTokenFromRequest extracts the token string from the Authorization header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingHeader
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", ErrHeaderFormat
	}

	return parts[1], nil
}
