package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/qa-forum/internal/models"
)

// CreateQuestion сохраняет новый вопрос и возвращает его UUID.
// Владелец определяется по UUID пользователя.
func (s *Storage) CreateQuestion(ctx context.Context, question models.Question) (string, error) {
	const op = "storage.CreateQuestion"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUUID string
	query := `INSERT INTO questions (uuid, user_id, content)
			  SELECT $1, u.id, $3 FROM users u WHERE u.uuid = $2
			  RETURNING uuid;`
	err := s.DB.QueryRowContext(ctx, query,
		question.UUID, question.OwnerUUID, question.Content).Scan(&newUUID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUUID, nil
}

// GetQuestionByUUID возвращает вопрос по его UUID
// или (nil, nil), если такого вопроса нет.
func (s *Storage) GetQuestionByUUID(ctx context.Context, uuid string) (*models.Question, error) {
	const op = "storage.GetQuestionByUUID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT q.id, q.uuid, u.uuid, q.content, q.created_at
			  FROM questions q
			  JOIN users u ON u.id = q.user_id
			  WHERE q.uuid = $1`
	q := &models.Question{}
	err := s.DB.QueryRowContext(ctx, query, uuid).Scan(
		&q.ID, &q.UUID, &q.OwnerUUID, &q.Content, &q.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return q, nil
}

// ListQuestions возвращает все вопросы форума.
func (s *Storage) ListQuestions(ctx context.Context) ([]*models.Question, error) {
	const op = "storage.ListQuestions"
	query := `SELECT q.id, q.uuid, u.uuid, q.content, q.created_at
			  FROM questions q
			  JOIN users u ON u.id = q.user_id
			  ORDER BY q.created_at`
	return s.queryQuestions(ctx, op, query)
}

// ListQuestionsByUser возвращает вопросы, принадлежащие пользователю.
func (s *Storage) ListQuestionsByUser(ctx context.Context, userUUID string) ([]*models.Question, error) {
	const op = "storage.ListQuestionsByUser"
	query := `SELECT q.id, q.uuid, u.uuid, q.content, q.created_at
			  FROM questions q
			  JOIN users u ON u.id = q.user_id
			  WHERE u.uuid = $1
			  ORDER BY q.created_at`
	return s.queryQuestions(ctx, op, query, userUUID)
}

// UpdateQuestionContent заменяет текст вопроса и возвращает количество
// обновленных записей.
func (s *Storage) UpdateQuestionContent(ctx context.Context, uuid, content string) (int64, error) {
	const op = "storage.UpdateQuestionContent"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.DB.ExecContext(ctx,
		`UPDATE questions SET content = $1 WHERE uuid = $2`, content, uuid)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return affected, nil
}

// DeleteQuestion удаляет вопрос по UUID, ответы удаляются каскадно.
func (s *Storage) DeleteQuestion(ctx context.Context, uuid string) (int64, error) {
	const op = "storage.DeleteQuestion"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM questions WHERE uuid = $1`, uuid)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return affected, nil
}

func (s *Storage) queryQuestions(ctx context.Context, op, query string, args ...any) ([]*models.Question, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()
	var result []*models.Question
	for rows.Next() {
		var q models.Question
		if err = rows.Scan(&q.ID, &q.UUID, &q.OwnerUUID, &q.Content, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &q)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
