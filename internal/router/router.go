package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"

	"github.com/akarpov87/social-feed/internal/handlers"
	"github.com/akarpov87/social-feed/internal/jwt"
	"github.com/akarpov87/social-feed/internal/logger"
	"github.com/akarpov87/social-feed/internal/middlewares"
	"github.com/akarpov87/social-feed/internal/validation"
)

// Route binds a (pattern, method) pair to a handler together with the
// per-route pipeline metadata: does it require authorization, a request
// transaction, a database warm-up, body constraints.
type Route struct {
	Method        string
	Pattern       string
	Authorize     bool
	Transactional bool
	Warmup        bool
	Constraints   validation.Provider
	Handler       http.HandlerFunc
}

// Config carries the shared collaborators of the dispatch pipeline.
type Config struct {
	DB          *sqlx.DB
	Token       *jwt.JWT
	Housekeeper middlewares.Housekeeper // nil disables sampled housekeeping
	AllowOrigin string

	HousekeepingRate int           // one request in N triggers housekeeping
	WarmupMargin     time.Duration // safety margin subtracted from the request deadline
	WarmupFallback   time.Duration // warm-up budget when the request has no deadline
}

// New assembles the dispatcher: request-wide middleware, then for each route
// the declared pipeline in order warm-up, authorize, validate, execute.
// Unmatched (pattern, method) pairs terminate with 404.
func New(cfg Config, routes []Route) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.CORSMiddleware(cfg.AllowOrigin))
	r.Use(middlewares.IdentityMiddleware(cfg.Token))
	r.Use(middlewares.RefreshMiddleware(cfg.Token))
	if cfg.Housekeeper != nil {
		r.Use(middlewares.HousekeepingMiddleware(cfg.Housekeeper, cfg.HousekeepingRate))
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		handlers.WriteJSON(w, http.StatusNotFound, nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		handlers.WriteJSON(w, http.StatusNotFound, nil)
	})

	for _, route := range routes {
		var mws []func(http.Handler) http.Handler
		if route.Warmup {
			mws = append(mws, middlewares.WarmupMiddleware(cfg.DB, cfg.WarmupMargin, cfg.WarmupFallback))
		}
		if route.Authorize {
			mws = append(mws, middlewares.AuthMiddleware())
		}
		if route.Constraints != nil {
			mws = append(mws, middlewares.ValidationMiddleware(route.Constraints))
		}
		if route.Transactional {
			// Innermost: a request rejected by the gate or the validator
			// never opens a transaction.
			mws = append(mws, middlewares.TxMiddleware(cfg.DB))
		}

		r.With(mws...).Method(route.Method, route.Pattern, route.Handler)
	}

	return r
}
