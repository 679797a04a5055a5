package userdelete

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/qa-forum/internal/apperror"
	"github.com/magabrotheeeer/qa-forum/internal/http/middlewarectx"
	"github.com/magabrotheeeer/qa-forum/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) DeleteUser(ctx context.Context, session *models.Session, targetUUID string) (string, error) {
	args := m.Called(ctx, session, targetUUID)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestUserdeleteHandler_ServeHTTP(t *testing.T) {
	adminSession := &models.Session{
		UUID: "session-uuid",
		User: &models.User{UUID: "admin-uuid", Role: models.RoleAdmin},
	}

	tests := []struct {
		name           string
		session        *models.Session
		setupMock      func(m *ServiceMock)
		wantStatusCode int
		wantCode       string
		wantStatus     string
	}{
		{
			name:    "admin deletes user",
			session: adminSession,
			setupMock: func(m *ServiceMock) {
				m.On("DeleteUser", mock.Anything, adminSession, "target-uuid").
					Return("target-uuid", nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantStatus:     "OK",
		},
		{
			name:           "session missing in context",
			session:        nil,
			setupMock:      func(_ *ServiceMock) {},
			wantStatusCode: http.StatusUnauthorized,
			wantStatus:     "Error",
		},
		{
			name:    "nonadmin gets forbidden",
			session: adminSession,
			setupMock: func(m *ServiceMock) {
				m.On("DeleteUser", mock.Anything, adminSession, "target-uuid").
					Return("", apperror.ErrNotAdmin).Once()
			},
			wantStatusCode: http.StatusForbidden,
			wantCode:       "ATHR-003",
			wantStatus:     "Error",
		},
		{
			name:    "target not found",
			session: adminSession,
			setupMock: func(m *ServiceMock) {
				m.On("DeleteUser", mock.Anything, adminSession, "target-uuid").
					Return("", apperror.ErrUserNotFound).Once()
			},
			wantStatusCode: http.StatusNotFound,
			wantCode:       "USR-001",
			wantStatus:     "Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(ServiceMock)
			tt.setupMock(serviceMock)

			handler := New(newNoopLogger(), serviceMock)

			req := httptest.NewRequest(http.MethodDelete, "/admin/user/target-uuid", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("userId", "target-uuid")
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			if tt.session != nil {
				ctx = context.WithValue(ctx, middlewarectx.SessionKey, tt.session)
			}
			req = req.WithContext(ctx)

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
			if tt.wantStatus == "OK" {
				data, ok := got["data"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, "target-uuid", data["id"])
				assert.Equal(t, "USER SUCCESSFULLY DELETED", data["status"])
			}

			serviceMock.AssertExpectations(t)
		})
	}
}
