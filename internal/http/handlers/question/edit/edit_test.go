package edit

import (
	"bytes"
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

func (m *ServiceMock) Edit(ctx context.Context, session *models.Session, questionUUID, content string) (string, error) {
	args := m.Called(ctx, session, questionUUID, content)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestEditHandler_ServeHTTP(t *testing.T) {
	session := &models.Session{
		UUID: "session-uuid",
		User: &models.User{UUID: "owner-uuid", Role: models.RoleNonadmin},
	}

	tests := []struct {
		name           string
		withSession    bool
		requestBody    interface{}
		setupMock      func(m *ServiceMock)
		wantStatusCode int
		wantCode       string
		wantStatus     string
	}{
		{
			name:        "owner edits own question",
			withSession: true,
			requestBody: Request{Content: "updated text"},
			setupMock: func(m *ServiceMock) {
				m.On("Edit", mock.Anything, session, "question-uuid", "updated text").
					Return("question-uuid", nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantStatus:     "OK",
		},
		{
			name:           "session missing in context",
			withSession:    false,
			requestBody:    Request{Content: "updated text"},
			setupMock:      func(_ *ServiceMock) {},
			wantStatusCode: http.StatusUnauthorized,
			wantStatus:     "Error",
		},
		{
			name:           "invalid json body",
			withSession:    true,
			requestBody:    "not a json",
			setupMock:      func(_ *ServiceMock) {},
			wantStatusCode: http.StatusBadRequest,
			wantStatus:     "Error",
		},
		{
			name:        "stranger gets forbidden",
			withSession: true,
			requestBody: Request{Content: "updated text"},
			setupMock: func(m *ServiceMock) {
				m.On("Edit", mock.Anything, session, "question-uuid", "updated text").
					Return("", apperror.ErrEditQuestionDenied).Once()
			},
			wantStatusCode: http.StatusForbidden,
			wantCode:       "ATHR-003",
			wantStatus:     "Error",
		},
		{
			name:        "question not found",
			withSession: true,
			requestBody: Request{Content: "updated text"},
			setupMock: func(m *ServiceMock) {
				m.On("Edit", mock.Anything, session, "question-uuid", "updated text").
					Return("", apperror.ErrQuestionNotFound).Once()
			},
			wantStatusCode: http.StatusNotFound,
			wantCode:       "QUES-001",
			wantStatus:     "Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(ServiceMock)
			tt.setupMock(serviceMock)

			handler := New(newNoopLogger(), serviceMock)

			var bodyBytes []byte
			var err error
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatal(err)
				}
			}

			req := httptest.NewRequest(http.MethodPut, "/question/edit/question-uuid", bytes.NewReader(bodyBytes))

			// Устанавливаем URL params с помощью роутера chi
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("questionId", "question-uuid")
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			if tt.withSession {
				ctx = context.WithValue(ctx, middlewarectx.SessionKey, session)
			}
			req = req.WithContext(ctx)

			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err = json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			assert.Equal(t, tt.wantStatus, got["status"])
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, got["code"])
			}
			if tt.wantStatus == "OK" {
				data, ok := got["data"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, "QUESTION EDITED", data["status"])
			}

			serviceMock.AssertExpectations(t)
		})
	}
}
