// Package signout реализует HTTP-обработчик выхода пользователей.
//
// Обработчик принимает только bearer-токен: нераспознанный токен дает
// SGR-001, а не ATHR-001, поэтому общий middleware сессии здесь не
// используется и токен извлекается из заголовка напрямую.
package signout

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/qa-forum/internal/apperror"
	"github.com/magabrotheeeer/qa-forum/internal/http/response"
	"github.com/magabrotheeeer/qa-forum/internal/lib/sl"
	"github.com/magabrotheeeer/qa-forum/internal/models"
)

// Service описывает интерфейс бизнес-логики выхода.
type Service interface {
	SignOut(ctx context.Context, accessToken string) (*models.User, error)
}

// Handler обрабатывает HTTP-запросы выхода.
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
// @Summary Выход пользователя
// @Description Завершает сессию по токену доступа и возвращает владельца сессии.
// @Tags Auth
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Успешный выход"
// @Failure 401 {object} response.ErrorResponse "Токен не распознан"
// @Router /user/signout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.signout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		log.Error("missing or invalid authorization header")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.AppError(apperror.ErrSignOutRestricted))
		return
	}
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

	user, err := h.service.SignOut(r.Context(), tokenStr)
	if err != nil {
		log.Error("sign out failed", sl.Err(err))
		if appErr := apperror.From(err); appErr != nil {
			w.WriteHeader(response.HTTPStatus(appErr))
			render.JSON(w, r, response.AppError(appErr))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to sign out"))
		return
	}

	log.Info("sign out success", slog.String("username", user.Username))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id":     user.UUID,
		"status": "SIGNED OUT SUCCESSFULLY",
	}))
}
