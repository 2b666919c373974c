package middlewares

import (
	"context"
	"net/http"

	"github.com/akarpov87/social-feed/internal/jwt"
	"github.com/akarpov87/social-feed/internal/logger"
)

// Tokener defines the minimal token interface needed by the auth middlewares.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// IdentityMiddleware resolves the bearer token into an identity and stores it
// in the request context. Resolution is best-effort: a missing, malformed or
// expired token leaves the request anonymous, so handlers on optionally
// authenticated routes can still personalize output.
func IdentityMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err == nil {
				claims, claimsErr := tokener.GetClaims(ctx, tokenString)
				if claimsErr != nil {
					logger.Log.Debugw("identity resolution failed", "err", claimsErr)
				} else {
					ctx = SetIdentityToContext(ctx, claims)
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AuthMiddleware short-circuits the pipeline with 401 when no identity was
// resolved. Routes marked authorize get this after IdentityMiddleware; no
// handler or validation runs for a rejected request.
func AuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if GetIdentityFromContext(r.Context()) == nil {
				logger.Log.Infow("unauthorized request", "uri", r.RequestURI)
				writeNull(w, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// writeNull writes a JSON null body with the given status, the envelope for
// payload-less terminal responses.
func writeNull(w http.ResponseWriter, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write([]byte("null"))
}
