package middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/akarpov87/social-feed/internal/logger"
)

// Pinger wakes the database before the handler runs.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// WarmupMiddleware pings the database best-effort before dispatching. The
// ping is bounded by the remaining request deadline minus a safety margin, or
// by the fallback budget when the request carries no deadline. A timeout never
// fails the request; the handler proceeds regardless.
func WarmupMiddleware(p Pinger, margin, fallback time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			budget := fallback
			if deadline, ok := ctx.Deadline(); ok {
				budget = time.Until(deadline) - margin
			}

			if budget > 0 {
				pingCtx, cancel := context.WithTimeout(ctx, budget)
				if err := p.PingContext(pingCtx); err != nil {
					logger.Log.Debugw("database warm-up skipped", "err", err)
				}
				cancel()
			}

			next.ServeHTTP(w, r)
		})
	}
}
