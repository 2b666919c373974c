package middlewares

import (
	"context"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/akarpov87/social-feed/internal/logger"
)

// Housekeeper runs background maintenance work.
type Housekeeper interface {
	RepairCounts(ctx context.Context) error
}

// HousekeepingMiddleware triggers housekeeping on roughly one request in
// sampleRate, asynchronously, off the request's success path. Housekeeping
// failures never fail the triggering request.
func HousekeepingMiddleware(h Housekeeper, sampleRate int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sampleRate > 0 && rand.IntN(sampleRate) == 0 {
				go func() {
					ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
					defer cancel()
					if err := h.RepairCounts(ctx); err != nil {
						logger.Log.Errorw("housekeeping failed", "err", err)
					}
				}()
			}

			next.ServeHTTP(w, r)
		})
	}
}
