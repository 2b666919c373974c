package middlewares

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/akarpov87/social-feed/internal/jwt"
)

// contextKey is an unexported type for keys in context
type contextKey struct{ name string }

var (
	identityKey  = &contextKey{"identity"}
	txKey        = &contextKey{"tx"}
	requestIDKey = &contextKey{"requestID"}
)

// SetIdentityToContext stores resolved token claims in the context.
func SetIdentityToContext(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, identityKey, claims)
}

// GetIdentityFromContext retrieves the resolved identity. Returns nil for
// anonymous requests.
func GetIdentityFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(identityKey).(*jwt.Claims)
	return claims
}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
