// Package remove реализует HTTP-обработчик удаления вопроса.
//
// Удалить вопрос может его владелец или админ.
package remove

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/qa-forum/internal/apperror"
	"github.com/magabrotheeeer/qa-forum/internal/http/middlewarectx"
	"github.com/magabrotheeeer/qa-forum/internal/http/response"
	"github.com/magabrotheeeer/qa-forum/internal/lib/sl"
	"github.com/magabrotheeeer/qa-forum/internal/models"
)

// Service описывает интерфейс бизнес-логики удаления вопроса.
type Service interface {
	Remove(ctx context.Context, session *models.Session, questionUUID string) (string, error)
}

// Handler обрабатывает HTTP-запросы удаления вопроса.
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
// @Summary Удаление вопроса
// @Tags Question
// @Produce  json
// @Security BearerAuth
// @Param questionId path string true "UUID вопроса"
// @Success 200 {object} map[string]any "Вопрос удален"
// @Failure 403 {object} response.ErrorResponse "Удалять может только владелец или админ"
// @Failure 404 {object} response.ErrorResponse "Вопрос не найден"
// @Router /question/delete/{questionId} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.question.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	session, ok := middlewarectx.SessionFromContext(r.Context())
	if !ok {
		log.Error("session missing in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("not signed in"))
		return
	}

	questionUUID := chi.URLParam(r, "questionId")

	deletedUUID, err := h.service.Remove(r.Context(), session, questionUUID)
	if err != nil {
		log.Error("failed to delete question", sl.Err(err))
		if appErr := apperror.From(err); appErr != nil {
			w.WriteHeader(response.HTTPStatus(appErr))
			render.JSON(w, r, response.AppError(appErr))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to delete question"))
		return
	}

	log.Info("question deleted", slog.String("uuid", deletedUUID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id":     deletedUUID,
		"status": "QUESTION DELETED",
	}))
}
