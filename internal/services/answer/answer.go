// Package services содержит бизнес-логику для работы с ответами форума.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/qa-forum/internal/apperror"
	"github.com/magabrotheeeer/qa-forum/internal/models"
	"github.com/magabrotheeeer/qa-forum/internal/services/authz"
)

// AnswerRepository определяет методы для работы с ответами в хранилище.
type AnswerRepository interface {
	// CreateAnswer сохраняет новый ответ и возвращает его UUID.
	CreateAnswer(ctx context.Context, answer models.Answer) (string, error)
	// GetAnswerByUUID возвращает ответ или (nil, nil), если не найден.
	GetAnswerByUUID(ctx context.Context, uuid string) (*models.Answer, error)
	// ListAnswersByQuestion возвращает ответы на вопрос.
	ListAnswersByQuestion(ctx context.Context, questionUUID string) ([]*models.Answer, error)
	// UpdateAnswerContent заменяет текст ответа.
	UpdateAnswerContent(ctx context.Context, uuid, content string) (int64, error)
	// DeleteAnswer удаляет ответ.
	DeleteAnswer(ctx context.Context, uuid string) (int64, error)
}

// QuestionFinder определяет поиск вопроса по UUID.
type QuestionFinder interface {
	// GetQuestionByUUID возвращает вопрос или (nil, nil), если не найден.
	GetQuestionByUUID(ctx context.Context, uuid string) (*models.Question, error)
}

// AnswerService реализует операции над ответами с проверкой прав.
type AnswerService struct {
	repo      AnswerRepository
	questions QuestionFinder
	log       *slog.Logger
}

// NewAnswerService создает новый экземпляр AnswerService.
func NewAnswerService(repo AnswerRepository, questions QuestionFinder, log *slog.Logger) *AnswerService {
	return &AnswerService{
		repo:      repo,
		questions: questions,
		log:       log,
	}
}

// Create создает ответ на вопрос от имени владельца сессии.
// Несуществующий вопрос дает QUES-001.
func (s *AnswerService) Create(ctx context.Context, session *models.Session, questionUUID, content string) (string, error) {
	question, err := s.questions.GetQuestionByUUID(ctx, questionUUID)
	if err != nil {
		return "", err
	}
	if question == nil {
		return "", apperror.ErrQuestionInvalid
	}

	answer := models.Answer{
		UUID:         uuid.NewString(),
		OwnerUUID:    session.User.UUID,
		QuestionUUID: question.UUID,
		Content:      content,
		CreatedAt:    time.Now().UTC(),
	}
	newUUID, err := s.repo.CreateAnswer(ctx, answer)
	if err != nil {
		return "", err
	}
	s.log.Info("created new answer", slog.String("uuid", newUUID),
		slog.String("question_uuid", question.UUID))
	return newUUID, nil
}

// Edit заменяет текст ответа. Редактировать может только владелец.
func (s *AnswerService) Edit(ctx context.Context, session *models.Session, answerUUID, content string) (string, error) {
	answer, err := s.resolveOwned(ctx, session, answerUUID, authz.ActionEdit)
	if err != nil {
		return "", err
	}
	if _, err = s.repo.UpdateAnswerContent(ctx, answer.UUID, content); err != nil {
		return "", err
	}
	s.log.Info("edited answer", slog.String("uuid", answer.UUID))
	return answer.UUID, nil
}

// Remove удаляет ответ. Удалять может владелец или админ.
func (s *AnswerService) Remove(ctx context.Context, session *models.Session, answerUUID string) (string, error) {
	answer, err := s.resolveOwned(ctx, session, answerUUID, authz.ActionDelete)
	if err != nil {
		return "", err
	}
	if _, err = s.repo.DeleteAnswer(ctx, answer.UUID); err != nil {
		return "", err
	}
	s.log.Info("deleted answer", slog.String("uuid", answer.UUID))
	return answer.UUID, nil
}

// ListByQuestion возвращает ответы на вопрос. Проверка двухступенчатая:
// сначала существование самого вопроса (QUES-001), затем наличие ответов
// (OTHR-001) — пустой список у существующего вопроса это отдельный исход.
func (s *AnswerService) ListByQuestion(ctx context.Context, questionUUID string) ([]*models.Answer, error) {
	question, err := s.questions.GetQuestionByUUID(ctx, questionUUID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, apperror.ErrQuestionForAnswersAbsent
	}

	answers, err := s.repo.ListAnswersByQuestion(ctx, questionUUID)
	if err != nil {
		return nil, err
	}
	if len(answers) == 0 {
		return nil, apperror.ErrNoAnswers
	}
	return answers, nil
}

func (s *AnswerService) resolveOwned(ctx context.Context, session *models.Session, answerUUID string, action authz.Action) (*models.Answer, error) {
	answer, err := s.repo.GetAnswerByUUID(ctx, answerUUID)
	if err != nil {
		return nil, err
	}
	if answer == nil {
		return nil, apperror.ErrAnswerNotFound
	}
	if err = authz.Authorize(session, answer.OwnerUUID, authz.ResourceAnswer, action); err != nil {
		return nil, err
	}
	return answer, nil
}
