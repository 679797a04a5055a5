package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/qa-forum/internal/models"
)

// CreateAnswer сохраняет новый ответ и возвращает его UUID.
func (s *Storage) CreateAnswer(ctx context.Context, answer models.Answer) (string, error) {
	const op = "storage.CreateAnswer"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUUID string
	query := `INSERT INTO answers (uuid, user_id, question_id, content)
			  SELECT $1, u.id, q.id, $4
			  FROM users u, questions q
			  WHERE u.uuid = $2 AND q.uuid = $3
			  RETURNING uuid;`
	err := s.DB.QueryRowContext(ctx, query,
		answer.UUID, answer.OwnerUUID, answer.QuestionUUID, answer.Content).Scan(&newUUID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUUID, nil
}

// GetAnswerByUUID возвращает ответ по его UUID
// или (nil, nil), если такого ответа нет.
func (s *Storage) GetAnswerByUUID(ctx context.Context, uuid string) (*models.Answer, error) {
	const op = "storage.GetAnswerByUUID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT a.id, a.uuid, u.uuid, q.uuid, a.content, q.content, a.created_at
			  FROM answers a
			  JOIN users u ON u.id = a.user_id
			  JOIN questions q ON q.id = a.question_id
			  WHERE a.uuid = $1`
	a := &models.Answer{}
	err := s.DB.QueryRowContext(ctx, query, uuid).Scan(
		&a.ID, &a.UUID, &a.OwnerUUID, &a.QuestionUUID, &a.Content,
		&a.QuestionContent, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return a, nil
}

// ListAnswersByQuestion возвращает ответы на вопрос вместе с его текстом.
func (s *Storage) ListAnswersByQuestion(ctx context.Context, questionUUID string) ([]*models.Answer, error) {
	const op = "storage.ListAnswersByQuestion"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT a.id, a.uuid, u.uuid, q.uuid, a.content, q.content, a.created_at
			  FROM answers a
			  JOIN users u ON u.id = a.user_id
			  JOIN questions q ON q.id = a.question_id
			  WHERE q.uuid = $1
			  ORDER BY a.created_at`
	rows, err := s.DB.QueryContext(ctx, query, questionUUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()
	var result []*models.Answer
	for rows.Next() {
		var a models.Answer
		if err = rows.Scan(&a.ID, &a.UUID, &a.OwnerUUID, &a.QuestionUUID,
			&a.Content, &a.QuestionContent, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateAnswerContent заменяет текст ответа и возвращает количество
// обновленных записей.
func (s *Storage) UpdateAnswerContent(ctx context.Context, uuid, content string) (int64, error) {
	const op = "storage.UpdateAnswerContent"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.DB.ExecContext(ctx,
		`UPDATE answers SET content = $1 WHERE uuid = $2`, content, uuid)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return affected, nil
}

// DeleteAnswer удаляет ответ по UUID.
func (s *Storage) DeleteAnswer(ctx context.Context, uuid string) (int64, error) {
	const op = "storage.DeleteAnswer"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM answers WHERE uuid = $1`, uuid)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return affected, nil
}
