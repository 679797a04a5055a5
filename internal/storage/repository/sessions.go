package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/magabrotheeeer/qa-forum/internal/models"
)

// CreateSession сохраняет новую сессию входа и возвращает её UUID.
func (s *Storage) CreateSession(ctx context.Context, session models.Session) (string, error) {
	const op = "storage.CreateSession"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUUID string
	query := `INSERT INTO sessions (uuid, user_id, access_token, issued_at, expires_at)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING uuid;`
	err := s.DB.QueryRowContext(ctx, query,
		session.UUID, session.User.ID, session.AccessToken,
		session.IssuedAt, session.ExpiresAt).Scan(&newUUID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUUID, nil
}

// GetSessionByToken возвращает сессию по её токену доступа вместе с владельцем
// или (nil, nil), если токен никогда не выпускался. Поиск идет строго по
// строке токена, без разбора его содержимого.
func (s *Storage) GetSessionByToken(ctx context.Context, accessToken string) (*models.Session, error) {
	const op = "storage.GetSessionByToken"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT st.id, st.uuid, st.access_token, st.issued_at, st.expires_at, st.logout_at,
			      u.id, u.uuid, u.username, u.email, u.password_hash, u.role,
			      u.first_name, u.last_name, u.about_me, u.dob, u.country, u.contact_number, u.created_at
			  FROM sessions st
			  JOIN users u ON u.id = st.user_id
			  WHERE st.access_token = $1`
	row := s.DB.QueryRowContext(ctx, query, accessToken)

	session := &models.Session{User: &models.User{}}
	var logoutAt sql.NullTime
	err := row.Scan(&session.ID, &session.UUID, &session.AccessToken,
		&session.IssuedAt, &session.ExpiresAt, &logoutAt,
		&session.User.ID, &session.User.UUID, &session.User.Username,
		&session.User.Email, &session.User.PasswordHash, &session.User.Role,
		&session.User.FirstName, &session.User.LastName, &session.User.AboutMe,
		&session.User.DOB, &session.User.Country, &session.User.ContactNumber,
		&session.User.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if logoutAt.Valid {
		session.LogoutAt = &logoutAt.Time
	}
	return session, nil
}

// SetLogoutAt помечает сессию завершенной. Обновление выполняется одним
// UPDATE: повторный выход с тем же токеном перезаписывает отметку,
// конкурентные выходы сводятся к последней записи.
func (s *Storage) SetLogoutAt(ctx context.Context, accessToken string, logoutAt time.Time) error {
	const op = "storage.SetLogoutAt"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	_, err := s.DB.ExecContext(ctx,
		`UPDATE sessions SET logout_at = $1 WHERE access_token = $2`,
		logoutAt, accessToken)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
