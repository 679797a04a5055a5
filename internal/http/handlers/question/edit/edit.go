// Package edit реализует HTTP-обработчик редактирования вопроса.
//
// Редактировать вопрос может только его владелец: роль admin права
// на чужой вопрос не дает, такие запросы получают ATHR-003 и статус 403.
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

// Request — структура входных данных для редактирования вопроса.
type Request struct {
	Content string `json:"content" validate:"required"`
}

// Service описывает интерфейс бизнес-логики редактирования вопроса.
type Service interface {
	Edit(ctx context.Context, session *models.Session, questionUUID, content string) (string, error)
}

// Handler обрабатывает HTTP-запросы редактирования вопроса.
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
// @Summary Редактирование вопроса
// @Tags Question
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param questionId path string true "UUID вопроса"
// @Param request body Request true "Новый текст вопроса"
// @Success 200 {object} map[string]any "Вопрос изменен"
// @Failure 403 {object} response.ErrorResponse "Редактировать может только владелец"
// @Failure 404 {object} response.ErrorResponse "Вопрос не найден"
// @Router /question/edit/{questionId} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.question.edit"

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

	editedUUID, err := h.service.Edit(r.Context(), session, questionUUID, req.Content)
	if err != nil {
		log.Error("failed to edit question", sl.Err(err))
		if appErr := apperror.From(err); appErr != nil {
			w.WriteHeader(response.HTTPStatus(appErr))
			render.JSON(w, r, response.AppError(appErr))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to edit question"))
		return
	}

	log.Info("question edited", slog.String("uuid", editedUUID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id":     editedUUID,
		"status": "QUESTION EDITED",
	}))
}
