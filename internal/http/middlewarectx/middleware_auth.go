// Package middlewarectx содержит HTTP middleware для разрешения токена
// доступа в сессию входа.
//
// SessionMiddleware извлекает bearer-токен из заголовка Authorization,
// разрешает его через сервис аутентификации и кладет сессию в контекст
// запроса для дальнейшего использования в обработчиках.
//
// Невыпущенный токен (ATHR-001) и завершенная сессия (ATHR-002) дают
// HTTP 401 с кодом ошибки в теле ответа.
package middlewarectx

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

// Key тип для ключей контекста HTTP-запроса.
type Key string

// SessionKey — ключ для сессии входа в контексте.
const SessionKey Key = "session"

// Service описывает интерфейс сервиса для разрешения токена в сессию.
type Service interface {
	Resolve(ctx context.Context, accessToken string) (*models.Session, error)
}

// SessionMiddleware возвращает HTTP middleware, который разрешает
// bearer-токен из заголовка Authorization в сессию входа.
//
// Если сессия действует, кладет её в контекст запроса, иначе возвращает
// ошибку с кодом ATHR-001 или ATHR-002 и статусом 401 Unauthorized.
func SessionMiddleware(authService Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.SessionMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.AppError(apperror.ErrNotSignedIn))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			session, err := authService.Resolve(r.Context(), tokenStr)
			if err != nil {
				log.Error("failed to resolve session", sl.Err(err))
				if appErr := apperror.From(err); appErr != nil {
					w.WriteHeader(response.HTTPStatus(appErr))
					render.JSON(w, r, response.AppError(appErr))
					return
				}
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error("internal error"))
				return
			}

			ctx := context.WithValue(r.Context(), SessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext возвращает сессию, положенную SessionMiddleware.
func SessionFromContext(ctx context.Context) (*models.Session, bool) {
	session, ok := ctx.Value(SessionKey).(*models.Session)
	return session, ok
}
