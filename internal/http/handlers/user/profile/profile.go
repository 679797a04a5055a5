// Package profile реализует HTTP-обработчик просмотра профиля пользователя.
package profile

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

// Service описывает интерфейс бизнес-логики профиля пользователя.
type Service interface {
	GetProfile(ctx context.Context, userUUID string) (*models.User, error)
}

// Handler обрабатывает HTTP-запросы профиля пользователя.
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
// @Summary Профиль пользователя
// @Description Возвращает публичный профиль пользователя по его UUID.
// @Tags User
// @Produce  json
// @Security BearerAuth
// @Param userId path string true "UUID пользователя"
// @Success 200 {object} map[string]any "Данные профиля"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Router /userprofile/{userId} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.profile"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUUID := chi.URLParam(r, "userId")

	user, err := h.service.GetProfile(r.Context(), userUUID)
	if err != nil {
		log.Error("failed to get user profile", sl.Err(err))
		if appErr := apperror.From(err); appErr != nil {
			w.WriteHeader(response.HTTPStatus(appErr))
			render.JSON(w, r, response.AppError(appErr))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to get user profile"))
		return
	}

	log.Info("user profile fetched", slog.String("uuid", user.UUID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id":            user.UUID,
		"userName":      user.Username,
		"emailAddress":  user.Email,
		"firstName":     user.FirstName,
		"lastName":      user.LastName,
		"aboutMe":       user.AboutMe,
		"dob":           user.DOB,
		"country":       user.Country,
		"contactNumber": user.ContactNumber,
	}))
}
