package qaforum

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/magabrotheeeer/qa-forum/internal/http/handlers/admin/userdelete"
	answercreate "github.com/magabrotheeeer/qa-forum/internal/http/handlers/answer/create"
	answeredit "github.com/magabrotheeeer/qa-forum/internal/http/handlers/answer/edit"
	answerlist "github.com/magabrotheeeer/qa-forum/internal/http/handlers/answer/list"
	answerremove "github.com/magabrotheeeer/qa-forum/internal/http/handlers/answer/remove"
	"github.com/magabrotheeeer/qa-forum/internal/http/handlers/auth/signin"
	"github.com/magabrotheeeer/qa-forum/internal/http/handlers/auth/signout"
	"github.com/magabrotheeeer/qa-forum/internal/http/handlers/auth/signup"
	"github.com/magabrotheeeer/qa-forum/internal/http/handlers/health"
	questioncreate "github.com/magabrotheeeer/qa-forum/internal/http/handlers/question/create"
	questionedit "github.com/magabrotheeeer/qa-forum/internal/http/handlers/question/edit"
	questionlist "github.com/magabrotheeeer/qa-forum/internal/http/handlers/question/list"
	questionlistbyuser "github.com/magabrotheeeer/qa-forum/internal/http/handlers/question/listbyuser"
	questionremove "github.com/magabrotheeeer/qa-forum/internal/http/handlers/question/remove"
	"github.com/magabrotheeeer/qa-forum/internal/http/handlers/user/profile"
	"github.com/magabrotheeeer/qa-forum/internal/http/middlewarectx"
	answerservice "github.com/magabrotheeeer/qa-forum/internal/services/answer"
	authservice "github.com/magabrotheeeer/qa-forum/internal/services/auth"
	questionservice "github.com/magabrotheeeer/qa-forum/internal/services/question"
	userservice "github.com/magabrotheeeer/qa-forum/internal/services/user"
	"github.com/magabrotheeeer/qa-forum/internal/storage/repository"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	db *repository.Storage,
	authService *authservice.AuthService,
	questionService *questionservice.QuestionService,
	answerService *answerservice.AnswerService,
	userService *userservice.UserService,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/user/signup", signup.New(logger, authService).ServeHTTP)
		r.Post("/user/signin", signin.New(logger, authService).ServeHTTP)
		// Выход читает токен сам, чтобы отличать свой код ошибки
		// от кода middleware аутентификации.
		r.Post("/user/signout", signout.New(logger, authService).ServeHTTP)

		// Группа с аутентификацией по сессии
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.SessionMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Get("/userprofile/{userId}", profile.New(logger, userService).ServeHTTP)

			r.Post("/question/create", questioncreate.New(logger, questionService).ServeHTTP)
			r.Get("/question/all", questionlist.New(logger, questionService).ServeHTTP)
			r.Get("/question/all/{userId}", questionlistbyuser.New(logger, questionService).ServeHTTP)
			r.Put("/question/edit/{questionId}", questionedit.New(logger, questionService).ServeHTTP)
			r.Delete("/question/delete/{questionId}", questionremove.New(logger, questionService).ServeHTTP)

			r.Post("/question/{questionId}/answer/create", answercreate.New(logger, answerService).ServeHTTP)
			r.Put("/answer/edit/{answerId}", answeredit.New(logger, answerService).ServeHTTP)
			r.Delete("/answer/delete/{answerId}", answerremove.New(logger, answerService).ServeHTTP)
			r.Get("/answer/all/{questionId}", answerlist.New(logger, answerService).ServeHTTP)

			r.Delete("/admin/user/{userId}", userdelete.New(logger, userService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health", health.New(logger, db).ServeHTTP)
}
