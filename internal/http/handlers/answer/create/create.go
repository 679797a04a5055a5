// Package create реализует HTTP-обработчик создания ответа на вопрос.
package create

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

// Request — структура входных данных для создания ответа.
type Request struct {
	Answer string `json:"answer" validate:"required"`
}

// Service описывает интерфейс бизнес-логики создания ответа.
type Service interface {
	Create(ctx context.Context, session *models.Session, questionUUID, content string) (string, error)
}

// Handler обрабатывает HTTP-запросы создания ответа.
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
// @Summary Создание ответа
// @Description Создает ответ на вопрос от имени владельца сессии.
// @Tags Answer
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param questionId path string true "UUID вопроса"
// @Param request body Request true "Текст ответа"
// @Success 201 {object} map[string]any "Ответ создан"
// @Failure 404 {object} response.ErrorResponse "Вопрос не найден"
// @Router /question/{questionId}/answer/create [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.answer.create"

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

	newUUID, err := h.service.Create(r.Context(), session, questionUUID, req.Answer)
	if err != nil {
		log.Error("failed to create answer", sl.Err(err))
		if appErr := apperror.From(err); appErr != nil {
			w.WriteHeader(response.HTTPStatus(appErr))
			render.JSON(w, r, response.AppError(appErr))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to create answer"))
		return
	}

	log.Info("answer created", slog.String("uuid", newUUID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id":     newUUID,
		"status": "ANSWER CREATED",
	}))
}
