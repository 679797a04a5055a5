package middlewarectx_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/qa-forum/internal/apperror"
	"github.com/magabrotheeeer/qa-forum/internal/http/middlewarectx"
	"github.com/magabrotheeeer/qa-forum/internal/models"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Resolve(ctx context.Context, accessToken string) (*models.Session, error) {
	args := m.Called(ctx, accessToken)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestSessionMiddleware(t *testing.T) {
	session := &models.Session{
		UUID: "session-uuid",
		User: &models.User{UUID: "user-uuid", Username: "user1"},
	}

	tests := []struct {
		name           string
		authHeader     string
		setupMock      func(m *AuthServiceMock)
		wantStatusCode int
		wantCode       string
		wantNextCalled bool
	}{
		{
			name:       "valid token reaches handler",
			authHeader: "Bearer tok",
			setupMock: func(m *AuthServiceMock) {
				m.On("Resolve", mock.Anything, "tok").Return(session, nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantNextCalled: true,
		},
		{
			name:           "missing header",
			authHeader:     "",
			setupMock:      func(_ *AuthServiceMock) {},
			wantStatusCode: http.StatusUnauthorized,
			wantCode:       "ATHR-001",
		},
		{
			name:           "header without bearer prefix",
			authHeader:     "tok",
			setupMock:      func(_ *AuthServiceMock) {},
			wantStatusCode: http.StatusUnauthorized,
			wantCode:       "ATHR-001",
		},
		{
			name:       "token never issued",
			authHeader: "Bearer unknown",
			setupMock: func(m *AuthServiceMock) {
				m.On("Resolve", mock.Anything, "unknown").Return(nil, apperror.ErrNotSignedIn).Once()
			},
			wantStatusCode: http.StatusUnauthorized,
			wantCode:       "ATHR-001",
		},
		{
			name:       "session signed out",
			authHeader: "Bearer old",
			setupMock: func(m *AuthServiceMock) {
				m.On("Resolve", mock.Anything, "old").Return(nil, apperror.ErrSignedOut).Once()
			},
			wantStatusCode: http.StatusUnauthorized,
			wantCode:       "ATHR-002",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock := new(AuthServiceMock)
			tt.setupMock(authMock)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				got, ok := middlewarectx.SessionFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, session, got)
				w.WriteHeader(http.StatusOK)
			})

			mw := middlewarectx.SessionMiddleware(authMock, newNoopLogger())

			req := httptest.NewRequest(http.MethodGet, "/question/all", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			mw(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Equal(t, tt.wantNextCalled, nextCalled)

			if tt.wantCode != "" {
				var got map[string]any
				err := json.NewDecoder(rec.Body).Decode(&got)
				assert.NoError(t, err)
				assert.Equal(t, tt.wantCode, got["code"])
			}

			authMock.AssertExpectations(t)
		})
	}
}

func TestSessionFromContext_Missing(t *testing.T) {
	got, ok := middlewarectx.SessionFromContext(context.Background())
	assert.False(t, ok)
	assert.Nil(t, got)
}
