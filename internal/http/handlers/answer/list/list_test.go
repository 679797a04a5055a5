package list

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
	"github.com/magabrotheeeer/qa-forum/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) ListByQuestion(ctx context.Context, questionUUID string) ([]*models.Answer, error) {
	args := m.Called(ctx, questionUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Answer), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestListHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(m *ServiceMock)
		wantStatusCode int
		wantCode       string
		wantStatus     string
		wantCount      int
	}{
		{
			name: "answers listed",
			setupMock: func(m *ServiceMock) {
				m.On("ListByQuestion", mock.Anything, "question-uuid").Return([]*models.Answer{
					{UUID: "a1", Content: "first", QuestionContent: "Why?"},
					{UUID: "a2", Content: "second", QuestionContent: "Why?"},
				}, nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantStatus:     "OK",
			wantCount:      2,
		},
		{
			name: "question does not exist",
			setupMock: func(m *ServiceMock) {
				m.On("ListByQuestion", mock.Anything, "question-uuid").
					Return(nil, apperror.ErrQuestionForAnswersAbsent).Once()
			},
			wantStatusCode: http.StatusNotFound,
			wantCode:       "QUES-001",
			wantStatus:     "Error",
		},
		{
			name: "question has no answers",
			setupMock: func(m *ServiceMock) {
				m.On("ListByQuestion", mock.Anything, "question-uuid").
					Return(nil, apperror.ErrNoAnswers).Once()
			},
			wantStatusCode: http.StatusNotFound,
			wantCode:       "OTHR-001",
			wantStatus:     "Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(ServiceMock)
			tt.setupMock(serviceMock)

			handler := New(newNoopLogger(), serviceMock)

			req := httptest.NewRequest(http.MethodGet, "/answer/all/question-uuid", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("questionId", "question-uuid")
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

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
			if tt.wantCount > 0 {
				data, ok := got["data"].(map[string]any)
				assert.True(t, ok)
				answers, ok := data["answers"].([]any)
				assert.True(t, ok)
				assert.Len(t, answers, tt.wantCount)
			}

			serviceMock.AssertExpectations(t)
		})
	}
}
