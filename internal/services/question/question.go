// Package services содержит бизнес-логику для работы с вопросами форума,
// включая проверку владения и кеширование чтений.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/qa-forum/internal/apperror"
	"github.com/magabrotheeeer/qa-forum/internal/models"
	"github.com/magabrotheeeer/qa-forum/internal/services/authz"
)

// QuestionRepository определяет методы для работы с вопросами в хранилище.
type QuestionRepository interface {
	// CreateQuestion сохраняет новый вопрос и возвращает его UUID.
	CreateQuestion(ctx context.Context, question models.Question) (string, error)
	// GetQuestionByUUID возвращает вопрос или (nil, nil), если не найден.
	GetQuestionByUUID(ctx context.Context, uuid string) (*models.Question, error)
	// ListQuestions возвращает все вопросы форума.
	ListQuestions(ctx context.Context) ([]*models.Question, error)
	// ListQuestionsByUser возвращает вопросы пользователя.
	ListQuestionsByUser(ctx context.Context, userUUID string) ([]*models.Question, error)
	// UpdateQuestionContent заменяет текст вопроса.
	UpdateQuestionContent(ctx context.Context, uuid, content string) (int64, error)
	// DeleteQuestion удаляет вопрос.
	DeleteQuestion(ctx context.Context, uuid string) (int64, error)
}

// UserFinder определяет поиск пользователя по UUID для выборки его вопросов.
type UserFinder interface {
	// GetUserByUUID возвращает пользователя или (nil, nil), если не найден.
	GetUserByUUID(ctx context.Context, uuid string) (*models.User, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// QuestionService реализует операции над вопросами с проверкой прав.
type QuestionService struct {
	repo  QuestionRepository
	users UserFinder
	cache Cache
	log   *slog.Logger
}

// NewQuestionService создает новый экземпляр QuestionService.
func NewQuestionService(repo QuestionRepository, users UserFinder, cache Cache, log *slog.Logger) *QuestionService {
	return &QuestionService{
		repo:  repo,
		users: users,
		cache: cache,
		log:   log,
	}
}

// Create создает вопрос от имени владельца сессии и возвращает его UUID.
func (s *QuestionService) Create(ctx context.Context, session *models.Session, content string) (string, error) {
	question := models.Question{
		UUID:      uuid.NewString(),
		OwnerUUID: session.User.UUID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	newUUID, err := s.repo.CreateQuestion(ctx, question)
	if err != nil {
		return "", err
	}

	s.log.Info("created new question", slog.String("uuid", newUUID))

	cacheKey := fmt.Sprintf("question:%s", newUUID)
	if err := s.cache.Set(cacheKey, question, time.Hour); err != nil {
		s.log.Warn("failed to cache question", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return newUUID, nil
}

// Find возвращает вопрос по UUID, используя кеш или репозиторий.
// Отсутствие вопроса дает QUES-001.
func (s *QuestionService) Find(ctx context.Context, questionUUID string) (*models.Question, error) {
	var cached models.Question
	cacheKey := fmt.Sprintf("question:%s", questionUUID)
	found, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read question cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return &cached, nil
	}

	question, err := s.repo.GetQuestionByUUID(ctx, questionUUID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, apperror.ErrQuestionInvalid
	}
	if err := s.cache.Set(cacheKey, question, time.Hour); err != nil {
		s.log.Warn("failed to cache question", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return question, nil
}

// ListAll возвращает все вопросы форума. Пустой форум дает QUER-002.
func (s *QuestionService) ListAll(ctx context.Context) ([]*models.Question, error) {
	questions, err := s.repo.ListQuestions(ctx)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, apperror.ErrNoQuestions
	}
	return questions, nil
}

// ListByUser возвращает вопросы пользователя. Неизвестный пользователь
// дает USR-001, отсутствие вопросов у существующего — QUER-001.
func (s *QuestionService) ListByUser(ctx context.Context, userUUID string) ([]*models.Question, error) {
	user, err := s.users.GetUserByUUID(ctx, userUUID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrQuestionsUserNotFound
	}
	questions, err := s.repo.ListQuestionsByUser(ctx, userUUID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, apperror.ErrNoQuestionsForUser
	}
	return questions, nil
}

// Edit заменяет текст вопроса. Редактировать может только владелец,
// роль admin права на чужой вопрос не дает.
func (s *QuestionService) Edit(ctx context.Context, session *models.Session, questionUUID, content string) (string, error) {
	question, err := s.resolveOwned(ctx, session, questionUUID, authz.ActionEdit)
	if err != nil {
		return "", err
	}
	if _, err = s.repo.UpdateQuestionContent(ctx, question.UUID, content); err != nil {
		return "", err
	}

	cacheKey := fmt.Sprintf("question:%s", question.UUID)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate question cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	s.log.Info("edited question", slog.String("uuid", question.UUID))
	return question.UUID, nil
}

// Remove удаляет вопрос. Удалять может владелец или админ.
func (s *QuestionService) Remove(ctx context.Context, session *models.Session, questionUUID string) (string, error) {
	question, err := s.resolveOwned(ctx, session, questionUUID, authz.ActionDelete)
	if err != nil {
		return "", err
	}
	if _, err = s.repo.DeleteQuestion(ctx, question.UUID); err != nil {
		return "", err
	}

	cacheKey := fmt.Sprintf("question:%s", question.UUID)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate question cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	s.log.Info("deleted question", slog.String("uuid", question.UUID))
	return question.UUID, nil
}

// resolveOwned находит вопрос и проверяет право на действие.
// Ресурс ищется до проверки прав: несуществующий UUID дает QUES-001,
// а не отказ в доступе.
func (s *QuestionService) resolveOwned(ctx context.Context, session *models.Session, questionUUID string, action authz.Action) (*models.Question, error) {
	question, err := s.repo.GetQuestionByUUID(ctx, questionUUID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, apperror.ErrQuestionNotFound
	}
	if err = authz.Authorize(session, question.OwnerUUID, authz.ResourceQuestion, action); err != nil {
		return nil, err
	}
	return question, nil
}
