// Package qaforum собирает приложение вопросов и ответов:
// хранилище, миграции, кэш, сервисы и HTTP-сервер.
package qaforum

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/qa-forum/internal/cache"
	"github.com/magabrotheeeer/qa-forum/internal/config"
	"github.com/magabrotheeeer/qa-forum/internal/lib/token"
	"github.com/magabrotheeeer/qa-forum/internal/migrations"
	answerservice "github.com/magabrotheeeer/qa-forum/internal/services/answer"
	authservice "github.com/magabrotheeeer/qa-forum/internal/services/auth"
	questionservice "github.com/magabrotheeeer/qa-forum/internal/services/question"
	userservice "github.com/magabrotheeeer/qa-forum/internal/services/user"
	"github.com/magabrotheeeer/qa-forum/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	tokenMaker := token.NewMaker(cfg.AccessToken.SecretKey)

	authService := authservice.NewAuthService(db, db, tokenMaker)
	questionService := questionservice.NewQuestionService(db, db, cacheRedis, logger)
	answerService := answerservice.NewAnswerService(db, db, logger)
	userService := userservice.NewUserService(db, logger)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, db, authService, questionService, answerService, userService)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		return err
	}
}
