// Package services содержит бизнес-логику для просмотра профилей
// и административного удаления пользователей.
package services

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/qa-forum/internal/apperror"
	"github.com/magabrotheeeer/qa-forum/internal/models"
)

// UserRepository определяет методы для работы с пользователями в хранилище.
type UserRepository interface {
	// GetUserByUUID возвращает пользователя или (nil, nil), если не найден.
	GetUserByUUID(ctx context.Context, uuid string) (*models.User, error)
	// DeleteUser удаляет пользователя и возвращает количество удаленных записей.
	DeleteUser(ctx context.Context, uuid string) (int64, error)
}

// UserService реализует просмотр профилей и удаление учетных записей.
type UserService struct {
	repo UserRepository
	log  *slog.Logger
}

// NewUserService создает новый экземпляр UserService.
func NewUserService(repo UserRepository, log *slog.Logger) *UserService {
	return &UserService{
		repo: repo,
		log:  log,
	}
}

// GetProfile возвращает профиль пользователя по UUID. Просматривать
// профили может любой вошедший пользователь; неизвестный UUID дает USR-001.
func (s *UserService) GetProfile(ctx context.Context, targetUUID string) (*models.User, error) {
	user, err := s.repo.GetUserByUUID(ctx, targetUUID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrUserNotFound
	}
	return user, nil
}

// DeleteUser удаляет учетную запись по UUID. Действие доступно только
// админу; роль и сессии удаляемого пользователя не проверяются.
func (s *UserService) DeleteUser(ctx context.Context, session *models.Session, targetUUID string) (string, error) {
	if !session.User.IsAdmin() {
		return "", apperror.ErrNotAdmin
	}

	target, err := s.repo.GetUserByUUID(ctx, targetUUID)
	if err != nil {
		return "", err
	}
	if target == nil {
		return "", apperror.ErrUserNotFound
	}

	if _, err = s.repo.DeleteUser(ctx, target.UUID); err != nil {
		return "", err
	}
	s.log.Info("deleted user", slog.String("uuid", target.UUID),
		slog.String("deleted_by", session.User.UUID))
	return target.UUID, nil
}
