package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/akarpov87/social-feed/internal/jwt"
	"github.com/akarpov87/social-feed/internal/middlewares"
	"github.com/akarpov87/social-feed/internal/models"
	"github.com/akarpov87/social-feed/internal/services"
)

// withIdentity returns the request with resolved claims in its context, the
// way IdentityMiddleware leaves it for downstream handlers.
func withIdentity(r *http.Request, username string) *http.Request {
	claims := &jwt.Claims{Username: username}
	return r.WithContext(middlewares.SetIdentityToContext(r.Context(), claims))
}

// withURLParam returns the request with a chi route parameter attached.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCurrentUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProfiler(ctrl)

	mockSvc.EXPECT().
		Profile(gomock.Any(), "jane.doe").
		Return(&models.UserDB{Username: "jane.doe", FirstName: "Jane", LastName: "Doe", Posts: 2}, nil)

	req := withIdentity(httptest.NewRequest(http.MethodGet, "/user", nil), "jane.doe")
	w := httptest.NewRecorder()

	NewCurrentUserHandler(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var user models.UserDB
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "jane.doe", user.Username)
	assert.Equal(t, 2, user.Posts)
}

func TestProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProfiler(ctrl)

	tests := []struct {
		name         string
		username     string
		mockSetup    func()
		expectedCode int
	}{
		{
			name:     "existing user",
			username: "john.smith",
			mockSetup: func() {
				mockSvc.EXPECT().
					Profile(gomock.Any(), "john.smith").
					Return(&models.UserDB{Username: "john.smith"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:     "unknown user",
			username: "nobody",
			mockSetup: func() {
				mockSvc.EXPECT().
					Profile(gomock.Any(), "nobody").
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := withURLParam(httptest.NewRequest(http.MethodGet, "/users/"+tt.username, nil), "username", tt.username)
			w := httptest.NewRecorder()

			NewProfileHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserLister(ctrl)

	t.Run("first page", func(t *testing.T) {
		users := []models.UserDB{
			{Username: "mary.major", Posts: 5},
			{Username: "john.smith", Posts: 3},
		}

		mockSvc.EXPECT().
			Users(gomock.Any(), (*string)(nil)).
			Return(users, nil)

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		w := httptest.NewRecorder()

		NewUsersHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got []models.UserDB
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Len(t, got, 2)
	})

	t.Run("resumed page", func(t *testing.T) {
		before := "john.smith"

		mockSvc.EXPECT().
			Users(gomock.Any(), &before).
			Return([]models.UserDB{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/users?users_before=john.smith", nil)
		w := httptest.NewRecorder()

		NewUsersHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
