// Package list реализует HTTP-обработчик списка ответов на вопрос.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/qa-forum/internal/apperror"
	"github.com/magabrotheeeer/qa-forum/internal/http/response"
	"github.com/magabrotheeeer/qa-forum/internal/lib/sl"
	"github.com/magabrotheeeer/qa-forum/internal/models"
)

// Item — элемент списка ответов в теле ответа.
type Item struct {
	ID              string `json:"id"`
	Answer          string `json:"answer"`
	QuestionContent string `json:"questionContent"`
}

// Service описывает интерфейс бизнес-логики выборки ответов.
type Service interface {
	ListByQuestion(ctx context.Context, questionUUID string) ([]*models.Answer, error)
}

// Handler обрабатывает HTTP-запросы списка ответов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список ответов на вопрос
// @Description Возвращает все ответы на указанный вопрос вместе с его текстом.
// @Tags Answer
// @Produce  json
// @Security BearerAuth
// @Param questionId path string true "UUID вопроса"
// @Success 200 {object} map[string]any "Список ответов"
// @Failure 404 {object} response.ErrorResponse "Вопрос не найден или ответов нет"
// @Router /answer/all/{questionId} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.answer.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	questionUUID := chi.URLParam(r, "questionId")

	answers, err := h.service.ListByQuestion(r.Context(), questionUUID)
	if err != nil {
		log.Error("failed to list answers", sl.Err(err))
		if appErr := apperror.From(err); appErr != nil {
			w.WriteHeader(response.HTTPStatus(appErr))
			render.JSON(w, r, response.AppError(appErr))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list answers"))
		return
	}

	items := make([]Item, 0, len(answers))
	for _, a := range answers {
		items = append(items, Item{
			ID:              a.UUID,
			Answer:          a.Content,
			QuestionContent: a.QuestionContent,
		})
	}

	log.Info("answers listed", slog.Int("count", len(items)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"answers": items,
	}))
}
