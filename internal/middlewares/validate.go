package middlewares

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/akarpov87/social-feed/internal/logger"
	"github.com/akarpov87/social-feed/internal/validation"
)

// ValidationMiddleware checks the parsed request body against the route's
// constraint provider. Runs after authorization; on any failing field the
// pipeline halts with a 400 listing the per-field violations and no handler
// executes. The body is restored for the handler.
func ValidationMiddleware(provider validation.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			raw, err := io.ReadAll(r.Body)
			if err != nil {
				logger.Log.Errorw("failed to read request body", "error", err)
				writeNull(w, http.StatusBadRequest)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(raw))

			body := map[string]any{}
			if len(raw) > 0 {
				if err := json.Unmarshal(raw, &body); err != nil {
					writeNull(w, http.StatusBadRequest)
					return
				}
			}

			rules, err := provider.Constraints(ctx)
			if err != nil {
				logger.Log.Errorw("failed to build constraints", "error", err)
				writeNull(w, http.StatusInternalServerError)
				return
			}

			if errs := validation.Validate(body, rules); errs != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(errs)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
