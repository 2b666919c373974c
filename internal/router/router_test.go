package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/akarpov87/social-feed/internal/handlers"
	"github.com/akarpov87/social-feed/internal/jwt"
	"github.com/akarpov87/social-feed/internal/router"
)

func newTestRouter(t *testing.T, routes []router.Route) (http.Handler, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	token := jwt.New(jwt.WithSecretKey("test_secret"))

	return router.New(router.Config{
		DB:          sqlx.NewDb(db, "sqlmock"),
		Token:       token,
		AllowOrigin: "*",
	}, routes), mock
}

func TestRouter_UnmatchedRoutesTerminateWith404(t *testing.T) {
	r, _ := newTestRouter(t, []router.Route{
		{Method: http.MethodGet, Pattern: "/timeline", Handler: func(w http.ResponseWriter, _ *http.Request) {
			handlers.WriteJSON(w, http.StatusOK, nil)
		}},
	})

	tests := []struct {
		name   string
		method string
		target string
	}{
		{name: "unknown path", method: http.MethodGet, target: "/nope"},
		{name: "known path, wrong method", method: http.MethodDelete, target: "/timeline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, "null", rr.Body.String())
		})
	}
}

func TestRouter_AuthorizedRouteRejectsAnonymous(t *testing.T) {
	handlerCalled := false
	r, _ := newTestRouter(t, []router.Route{
		{Method: http.MethodGet, Pattern: "/timeline", Authorize: true, Handler: func(w http.ResponseWriter, _ *http.Request) {
			handlerCalled = true
			handlers.WriteJSON(w, http.StatusOK, nil)
		}},
	})

	req := httptest.NewRequest(http.MethodGet, "/timeline", nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, handlerCalled)
}

func TestRouter_AuthorizedRouteAcceptsBearerToken(t *testing.T) {
	token := jwt.New(jwt.WithSecretKey("test_secret"))
	signed, err := token.Generate(nil, "jane.doe", "Jane", "Doe")
	assert.NoError(t, err)

	r, _ := newTestRouter(t, []router.Route{
		{Method: http.MethodGet, Pattern: "/timeline", Authorize: true, Handler: func(w http.ResponseWriter, _ *http.Request) {
			handlers.WriteJSON(w, http.StatusOK, []string{})
		}},
	})

	req := httptest.NewRequest(http.MethodGet, "/timeline", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_TransactionalRouteCommitsOnSuccess(t *testing.T) {
	r, mock := newTestRouter(t, []router.Route{
		{Method: http.MethodPost, Pattern: "/posts", Transactional: true, Handler: func(w http.ResponseWriter, _ *http.Request) {
			handlers.WriteJSON(w, http.StatusOK, nil)
		}},
	})

	mock.ExpectBegin()
	mock.ExpectCommit()

	req := httptest.NewRequest(http.MethodPost, "/posts", nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_TransactionalRouteRollsBackOnFailure(t *testing.T) {
	r, mock := newTestRouter(t, []router.Route{
		{Method: http.MethodPost, Pattern: "/posts", Transactional: true, Handler: func(w http.ResponseWriter, _ *http.Request) {
			handlers.WriteJSON(w, http.StatusInternalServerError, nil)
		}},
	})

	mock.ExpectBegin()
	mock.ExpectRollback()

	req := httptest.NewRequest(http.MethodPost, "/posts", nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_RejectedRequestNeverOpensTransaction(t *testing.T) {
	// Authorize rejects before the transactional middleware runs: no Begin
	// expectation is registered, so any Begin would fail the mock.
	r, mock := newTestRouter(t, []router.Route{
		{Method: http.MethodPost, Pattern: "/posts", Authorize: true, Transactional: true, Handler: func(w http.ResponseWriter, _ *http.Request) {
			handlers.WriteJSON(w, http.StatusOK, nil)
		}},
	})

	req := httptest.NewRequest(http.MethodPost, "/posts", nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_CORSHeadersOnEveryResponse(t *testing.T) {
	r, _ := newTestRouter(t, []router.Route{
		{Method: http.MethodGet, Pattern: "/users", Handler: func(w http.ResponseWriter, _ *http.Request) {
			handlers.WriteJSON(w, http.StatusOK, []string{})
		}},
	})

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))

	preflight := httptest.NewRequest(http.MethodOptions, "/users", nil)
	rr = httptest.NewRecorder()

	r.ServeHTTP(rr, preflight)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestRouter_RefreshHeaderOnStaleToken(t *testing.T) {
	// Zero refresh window: every valid token is already stale.
	token := jwt.New(
		jwt.WithSecretKey("test_secret"),
		jwt.WithExpiration(time.Hour),
		jwt.WithRefreshAfter(-time.Second),
	)
	signed, err := token.Generate(nil, "jane.doe", "Jane", "Doe")
	assert.NoError(t, err)

	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	r := router.New(router.Config{
		DB:          sqlx.NewDb(db, "sqlmock"),
		Token:       token,
		AllowOrigin: "*",
	}, []router.Route{
		{Method: http.MethodGet, Pattern: "/timeline", Authorize: true, Handler: func(w http.ResponseWriter, _ *http.Request) {
			handlers.WriteJSON(w, http.StatusOK, []string{})
		}},
	})

	req := httptest.NewRequest(http.MethodGet, "/timeline", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Refreshed-Token"))
}
