// Package userdelete реализует административный HTTP-обработчик удаления пользователя.
package userdelete

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

// Service описывает интерфейс бизнес-логики удаления пользователя.
type Service interface {
	DeleteUser(ctx context.Context, session *models.Session, targetUUID string) (string, error)
}

// Handler обрабатывает HTTP-запросы удаления пользователя администратором.
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
// @Summary Удаление пользователя
// @Description Удаляет пользователя по UUID. Доступно только администратору.
// @Tags Admin
// @Produce  json
// @Security BearerAuth
// @Param userId path string true "UUID пользователя"
// @Success 200 {object} map[string]any "Пользователь удален"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Router /admin/user/{userId} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.userdelete"

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

	targetUUID := chi.URLParam(r, "userId")

	deletedUUID, err := h.service.DeleteUser(r.Context(), session, targetUUID)
	if err != nil {
		log.Error("failed to delete user", sl.Err(err))
		if appErr := apperror.From(err); appErr != nil {
			w.WriteHeader(response.HTTPStatus(appErr))
			render.JSON(w, r, response.AppError(appErr))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to delete user"))
		return
	}

	log.Info("user deleted", slog.String("uuid", deletedUUID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id":     deletedUUID,
		"status": "USER SUCCESSFULLY DELETED",
	}))
}
