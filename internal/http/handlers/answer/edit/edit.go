// Package edit реализует HTTP-обработчик редактирования ответа.
package edit

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/qa-forum/internal/apperror"
	"github.com/magabrotheeeer/qa-forum/internal/http/middlewarectx"
	"github.com/magabrotheeeer/qa-forum/internal/http/response"
	"github.com/magabrotheeeer/qa-forum/internal/lib/sl"
	"github.com/magabrotheeeer/qa-forum/internal/models"
)

// Request — структура входных данных для редактирования ответа.
type Request struct {
	Content string `json:"content" validate:"required"`
}

// Service описывает интерфейс бизнес-логики редактирования ответа.
type Service interface {
	Edit(ctx context.Context, session *models.Session, answerUUID, content string) (string, error)
}

// Handler обрабатывает HTTP-запросы редактирования ответа.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Редактирование ответа
// @Description Изменяет текст ответа. Доступно только владельцу ответа.
// @Tags Answer
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param answerId path string true "UUID ответа"
// @Param request body Request true "Новый текст ответа"
// @Success 200 {object} map[string]any "Ответ изменен"
// @Failure 403 {object} response.ErrorResponse "Нет прав на редактирование"
// @Failure 404 {object} response.ErrorResponse "Ответ не найден"
// @Router /answer/edit/{answerId} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.answer.edit"

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

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	editedUUID, err := h.service.Edit(r.Context(), session, answerUUID, req.Content)
	if err != nil {
		log.Error("failed to edit answer", sl.Err(err))
		if appErr := apperror.From(err); appErr != nil {
			w.WriteHeader(response.HTTPStatus(appErr))
			render.JSON(w, r, response.AppError(appErr))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to edit answer"))
		return
	}

	log.Info("answer edited", slog.String("uuid", editedUUID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id":     editedUUID,
		"status": "ANSWER EDITED",
	}))
}
