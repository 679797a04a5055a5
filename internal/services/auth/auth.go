// Package services содержит логику бизнес-уровня для работы с учетными
// записями и сессиями входа.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/qa-forum/internal/apperror"
	"github.com/magabrotheeeer/qa-forum/internal/lib/password"
	"github.com/magabrotheeeer/qa-forum/internal/lib/token"
	"github.com/magabrotheeeer/qa-forum/internal/models"
	"github.com/magabrotheeeer/qa-forum/internal/storage/repository"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его UUID.
	CreateUser(ctx context.Context, user models.User) (string, error)

	// GetUserByUsername возвращает пользователя по имени или (nil, nil), если не найден.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// SessionRepository описывает контракт для работы с сессиями входа.
type SessionRepository interface {
	// CreateSession сохраняет новую сессию и возвращает её UUID.
	CreateSession(ctx context.Context, session models.Session) (string, error)

	// GetSessionByToken возвращает сессию по токену или (nil, nil), если токен не выпускался.
	GetSessionByToken(ctx context.Context, accessToken string) (*models.Session, error)

	// SetLogoutAt помечает сессию завершенной.
	SetLogoutAt(ctx context.Context, accessToken string, logoutAt time.Time) error
}

// AuthService отвечает за регистрацию, вход, выход и разрешение токена в сессию.
type AuthService struct {
	users    UserRepository
	sessions SessionRepository
	tokens   token.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, sessions SessionRepository, tokens token.Maker) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
	}
}

// Register создает нового пользователя с хэшированием пароля и ролью nonadmin.
// Занятые имя пользователя и почта дают отдельные коды SGUP-001 и SGUP-002.
func (s *AuthService) Register(ctx context.Context, user models.User, rawPassword string) (string, error) {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", err
	}
	user.UUID = uuid.NewString()
	user.PasswordHash = hashed
	user.Role = models.RoleNonadmin
	newUUID, err := s.users.CreateUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUsernameExists):
			return "", apperror.ErrUsernameTaken
		case errors.Is(err, repository.ErrEmailExists):
			return "", apperror.ErrEmailTaken
		}
		return "", err
	}
	return newUUID, nil
}

// SignIn проверяет учетные данные и создает новую сессию входа.
//
// Неизвестное имя пользователя и неверный пароль дают разные коды
// (ATH-001 и ATH-002): оба отображаются клиенту как отказ в аутентификации,
// но внешние тесты различают их по коду.
func (s *AuthService) SignIn(ctx context.Context, username, rawPassword string) (*models.Session, error) {
	const op = "auth.SignIn"

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if user == nil {
		return nil, apperror.ErrUnknownUser
	}
	if !password.Verify(user.PasswordHash, rawPassword) {
		return nil, apperror.ErrWrongPassword
	}

	now := time.Now().UTC()
	session := models.Session{
		UUID:      uuid.NewString(),
		IssuedAt:  now,
		ExpiresAt: now.Add(models.SessionTTL),
		User:      user,
	}
	session.AccessToken, err = s.tokens.Issue(session.UUID, session.IssuedAt, session.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if _, err = s.sessions.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &session, nil
}

// Resolve находит сессию по токену доступа.
//
// Подпись токена проверяется до обращения к базе: строка, которую сервис
// не подписывал, дает ATHR-001 без запроса к хранилищу. Невыпущенный токен
// дает ATHR-001, завершенная сессия — ATHR-002. Поле ExpiresAt здесь не
// проверяется: сессия действует до явного выхода.
func (s *AuthService) Resolve(ctx context.Context, accessToken string) (*models.Session, error) {
	const op = "auth.Resolve"

	if _, err := s.tokens.Parse(accessToken); err != nil {
		return nil, apperror.ErrNotSignedIn
	}

	session, err := s.sessions.GetSessionByToken(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if session == nil {
		return nil, apperror.ErrNotSignedIn
	}
	if session.LogoutAt != nil {
		return nil, apperror.ErrSignedOut
	}
	return session, nil
}

// SignOut завершает сессию по токену и возвращает её владельца.
//
// Отметка выхода ставится безусловно: повторный выход с тем же токеном
// проходит успешно и перезаписывает её.
func (s *AuthService) SignOut(ctx context.Context, accessToken string) (*models.User, error) {
	const op = "auth.SignOut"

	session, err := s.sessions.GetSessionByToken(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if session == nil {
		return nil, apperror.ErrSignOutRestricted
	}
	if err = s.sessions.SetLogoutAt(ctx, accessToken, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return session.User, nil
}
