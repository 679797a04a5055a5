// Package remove реализует HTTP-обработчик удаления ответа.
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

// Service описывает интерфейс бизнес-логики удаления ответа.
type Service interface {
	Remove(ctx context.Context, session *models.Session, answerUUID string) (string, error)
}

// Handler обрабатывает HTTP-запросы удаления ответа.
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
// @Summary Удаление ответа
// @Description Удаляет ответ. Доступно владельцу ответа или администратору.
// @Tags Answer
// @Produce  json
// @Security BearerAuth
// @Param answerId path string true "UUID ответа"
// @Success 200 {object} map[string]any "Ответ удален"
// @Failure 403 {object} response.ErrorResponse "Нет прав на удаление"
// @Failure 404 {object} response.ErrorResponse "Ответ не найден"
// @Router /answer/delete/{answerId} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.answer.remove"

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

	answerUUID := chi.URLParam(r, "answerId")

	deletedUUID, err := h.service.Remove(r.Context(), session, answerUUID)
	if err != nil {
		log.Error("failed to delete answer", sl.Err(err))
		if appErr := apperror.From(err); appErr != nil {
			w.WriteHeader(response.HTTPStatus(appErr))
			render.JSON(w, r, response.AppError(appErr))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to delete answer"))
		return
	}

	log.Info("answer deleted", slog.String("uuid", deletedUUID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id":     deletedUUID,
		"status": "ANSWER DELETED",
	}))
}
