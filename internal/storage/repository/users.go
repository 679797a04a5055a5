package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/magabrotheeeer/qa-forum/internal/models"
)

// Имена ограничений уникальности из миграции 000001_init.up.sql.
const (
	usernameConstraint = "users_username_key"
	emailConstraint    = "users_email_key"
)

// Ошибки нарушения уникальности при регистрации. Сервис переводит их
// в типизированные ошибки с кодами SGUP-*.
var (
	ErrUsernameExists = errors.New("username already exists")
	ErrEmailExists    = errors.New("email already exists")
)

const uniqueViolation = "23505"

// CreateUser сохраняет нового пользователя и возвращает его публичный UUID.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUUID string
	query := `INSERT INTO users (uuid, username, email, password_hash, role,
			      first_name, last_name, about_me, dob, country, contact_number)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  RETURNING uuid;`
	err := s.DB.QueryRowContext(ctx, query,
		user.UUID, user.Username, user.Email, user.PasswordHash, user.Role,
		user.FirstName, user.LastName, user.AboutMe, user.DOB, user.Country,
		user.ContactNumber).Scan(&newUUID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			switch pgErr.ConstraintName {
			case usernameConstraint:
				return "", fmt.Errorf("%s: %w", op, ErrUsernameExists)
			case emailConstraint:
				return "", fmt.Errorf("%s: %w", op, ErrEmailExists)
			}
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUUID, nil
}

// GetUserByUsername возвращает пользователя по его username
// или (nil, nil), если такого пользователя нет.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.GetUserByUsername"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, uuid, username, email, password_hash, role,
			      first_name, last_name, about_me, dob, country, contact_number, created_at
			  FROM users
			  WHERE username = $1`
	return s.scanUser(s.DB.QueryRowContext(ctx, query, username), op)
}

// GetUserByUUID возвращает пользователя по его публичному UUID
// или (nil, nil), если такого пользователя нет.
func (s *Storage) GetUserByUUID(ctx context.Context, uuid string) (*models.User, error) {
	const op = "storage.GetUserByUUID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, uuid, username, email, password_hash, role,
			      first_name, last_name, about_me, dob, country, contact_number, created_at
			  FROM users
			  WHERE uuid = $1`
	return s.scanUser(s.DB.QueryRowContext(ctx, query, uuid), op)
}

// DeleteUser удаляет пользователя по UUID и возвращает количество
// удаленных записей. Вопросы, ответы и сессии удаляются каскадно.
func (s *Storage) DeleteUser(ctx context.Context, uuid string) (int64, error) {
	const op = "storage.DeleteUser"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM users WHERE uuid = $1`, uuid)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return affected, nil
}

func (s *Storage) scanUser(row *sql.Row, op string) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(&u.ID, &u.UUID, &u.Username, &u.Email, &u.PasswordHash,
		&u.Role, &u.FirstName, &u.LastName, &u.AboutMe, &u.DOB, &u.Country,
		&u.ContactNumber, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}
