package middlewares

import (
	"context"
	"net/http"

	"github.com/akarpov87/social-feed/internal/jwt"
	"github.com/akarpov87/social-feed/internal/logger"
)

// RefreshTokenHeader carries a reissued token on successful authenticated
// responses. It is listed in Access-Control-Expose-Headers so browsers can
// read it.
const RefreshTokenHeader = "X-Refreshed-Token"

// TokenRefresher decides when a valid token is stale and issues fresh ones.
type TokenRefresher interface {
	NeedsRefresh(ctx context.Context, claims *jwt.Claims) bool
	Generate(ctx context.Context, username, firstName, lastName string) (string, error)
}

// RefreshMiddleware attaches a freshly issued token to successful responses
// whose identity is past the soft-refresh window. Tokens within the window are
// left alone, keeping round-trip stability.
func RefreshMiddleware(tokener TokenRefresher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &refreshWriter{
				ResponseWriter: w,
				req:            r,
				tokener:        tokener,
			}
			next.ServeHTTP(rw, r)
		})
	}
}

// refreshWriter injects the refresh header just before the status line is
// written, the last moment headers can still change.
type refreshWriter struct {
	http.ResponseWriter
	req         *http.Request
	tokener     TokenRefresher
	wroteHeader bool
}

func (rw *refreshWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.wroteHeader = true
		if code >= 200 && code < 300 {
			ctx := rw.req.Context()
			if claims := GetIdentityFromContext(ctx); claims != nil && rw.tokener.NeedsRefresh(ctx, claims) {
				token, err := rw.tokener.Generate(ctx, claims.Username, claims.FirstName, claims.LastName)
				if err != nil {
					logger.Log.Errorw("failed to reissue token", "username", claims.Username, "err", err)
				} else {
					rw.Header().Set(RefreshTokenHeader, token)
				}
			}
		}
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *refreshWriter) Write(b []byte) (int, error) {
	if !rw.wroteHeader {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}
