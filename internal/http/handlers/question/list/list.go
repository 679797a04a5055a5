// Package list реализует HTTP-обработчик выборки всех вопросов форума.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/qa-forum/internal/apperror"
	"github.com/magabrotheeeer/qa-forum/internal/http/response"
	"github.com/magabrotheeeer/qa-forum/internal/lib/sl"
	"github.com/magabrotheeeer/qa-forum/internal/models"
)

// Service описывает интерфейс бизнес-логики выборки вопросов.
type Service interface {
	ListAll(ctx context.Context) ([]*models.Question, error)
}

// Handler обрабатывает HTTP-запросы выборки вопросов.
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

// Item — один вопрос в ответе списка.
type Item struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// ServeHTTP godoc
// @Summary Список всех вопросов
// @Tags Question
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Список вопросов"
// @Failure 404 {object} response.ErrorResponse "Вопросов нет"
// @Router /question/all [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.question.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	questions, err := h.service.ListAll(r.Context())
	if err != nil {
		log.Error("failed to list questions", sl.Err(err))
		if appErr := apperror.From(err); appErr != nil {
			w.WriteHeader(response.HTTPStatus(appErr))
			render.JSON(w, r, response.AppError(appErr))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list questions"))
		return
	}

	items := make([]Item, 0, len(questions))
	for _, q := range questions {
		items = append(items, Item{ID: q.UUID, Content: q.Content})
	}

	log.Info("questions listed", slog.Int("count", len(items)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"questions": items,
	}))
}
