package middlewares

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/akarpov87/social-feed/internal/logger"
)

// TxMiddleware wraps an HTTP handler with a database transaction. Mutating
// routes run every write of the request through one transaction so multi-step
// mutations (post delete cascade, like + recount) commit or roll back as a
// unit. A non-2xx response rolls the transaction back.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.Beginx()
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				writeNull(w, http.StatusInternalServerError)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			ctx := setTxToContext(r.Context(), tx)
			rw := &txWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r.WithContext(ctx))

			if rw.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to roll back transaction", "error", err)
				}
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
			}
		})
	}
}

type txWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *txWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
