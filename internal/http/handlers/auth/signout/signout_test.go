package signout

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/qa-forum/internal/apperror"
	"github.com/magabrotheeeer/qa-forum/internal/models"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) SignOut(ctx context.Context, accessToken string) (*models.User, error) {
	args := m.Called(ctx, accessToken)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestSignoutHandler_ServeHTTP(t *testing.T) {
	authMock := new(AuthServiceMock)
	handler := New(newNoopLogger(), authMock)

	tests := []struct {
		name           string
		authHeader     string
		mockUser       *models.User
		mockErr        error
		callMock       bool
		wantStatusCode int
		wantCode       string
		wantStatus     string
	}{
		{
			name:           "valid sign out",
			authHeader:     "Bearer tok",
			mockUser:       &models.User{UUID: "user-uuid", Username: "user1"},
			callMock:       true,
			wantStatusCode: http.StatusOK,
			wantStatus:     "OK",
		},
		{
			name:           "missing authorization header",
			authHeader:     "",
			wantStatusCode: http.StatusUnauthorized,
			wantCode:       "SGR-001",
			wantStatus:     "Error",
		},
		{
			name:           "header without bearer prefix",
			authHeader:     "tok",
			wantStatusCode: http.StatusUnauthorized,
			wantCode:       "SGR-001",
			wantStatus:     "Error",
		},
		{
			name:           "token never issued",
			authHeader:     "Bearer unknown-tok",
			mockErr:        apperror.ErrSignOutRestricted,
			callMock:       true,
			wantStatusCode: http.StatusUnauthorized,
			wantCode:       "SGR-001",
			wantStatus:     "Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock.ExpectedCalls = nil
			authMock.Calls = nil

			if tt.callMock {
				authMock.On("SignOut", mock.Anything, mock.Anything).Return(tt.mockUser, tt.mockErr).Once()
			}

			req := httptest.NewRequest(http.MethodPost, "/user/signout", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))

			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err := json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			assert.Equal(t, tt.wantStatus, got["status"])
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, got["code"])
			}
			if tt.mockUser != nil {
				data, ok := got["data"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, "user-uuid", data["id"])
				assert.Equal(t, "SIGNED OUT SUCCESSFULLY", data["status"])
			}

			if tt.callMock {
				authMock.AssertExpectations(t)
			}
		})
	}
}
