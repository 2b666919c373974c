package middlewares

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akarpov87/social-feed/internal/validation"
)

type staticProvider struct {
	rules validation.RuleSet
	err   error
}

func (p *staticProvider) Constraints(ctx context.Context) (validation.RuleSet, error) {
	return p.rules, p.err
}

func TestValidationMiddleware(t *testing.T) {
	messageRules := validation.RuleSet{
		"message": {Presence: true, Inclusion: []string{"hello world", "good morning"}},
	}

	tests := []struct {
		name         string
		provider     validation.Provider
		body         string
		expectedCode int
		wantNext     bool
		wantErrors   validation.Errors
	}{
		{
			name:         "permitted value passes",
			provider:     &staticProvider{rules: messageRules},
			body:         `{"message":"hello world"}`,
			expectedCode: http.StatusOK,
			wantNext:     true,
		},
		{
			name:         "value outside the list",
			provider:     &staticProvider{rules: messageRules},
			body:         `{"message":"something else"}`,
			expectedCode: http.StatusBadRequest,
			wantErrors: validation.Errors{
				"message": {"message is not included in the list"},
			},
		},
		{
			name:         "blank field",
			provider:     &staticProvider{rules: messageRules},
			body:         `{}`,
			expectedCode: http.StatusBadRequest,
			wantErrors: validation.Errors{
				"message": {"message can't be blank"},
			},
		},
		{
			name:         "malformed body",
			provider:     &staticProvider{rules: messageRules},
			body:         `{invalid`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "provider error",
			provider:     &staticProvider{err: errors.New("db error")},
			body:         `{"message":"hello world"}`,
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				// the body must be readable again downstream
				raw, err := io.ReadAll(r.Body)
				assert.NoError(t, err)
				assert.Equal(t, tt.body, string(raw))
				w.WriteHeader(http.StatusOK)
			})

			handler := ValidationMiddleware(tt.provider)(next)
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.wantNext, nextCalled)

			if tt.wantErrors != nil {
				var got validation.Errors
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, tt.wantErrors, got)
			}
		})
	}
}
