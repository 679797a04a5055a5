// Package authz реализует правила доступа к вопросам и ответам.
//
// Решение принимается по владению ресурсом и роли пользователя:
// редактировать может только владелец, удалять — владелец или админ.
// Роль admin не дает права редактирования чужих записей.
package authz

import (
	"github.com/magabrotheeeer/qa-forum/internal/apperror"
	"github.com/magabrotheeeer/qa-forum/internal/models"
)

// Action перечисляет действия над ресурсом, требующие проверки прав.
type Action int

const (
	// ActionEdit — изменение содержимого ресурса.
	ActionEdit Action = iota
	// ActionDelete — удаление ресурса.
	ActionDelete
)

// ResourceKind перечисляет виды ресурсов форума.
type ResourceKind int

const (
	// ResourceQuestion — вопрос.
	ResourceQuestion ResourceKind = iota
	// ResourceAnswer — ответ.
	ResourceAnswer
)

// Authorize решает, разрешено ли владельцу сессии выполнить действие
// над ресурсом с указанным владельцем. Возвращает nil при разрешении,
// иначе типизированную ошибку ATHR-003 с текстом под вид ресурса и действие.
func Authorize(session *models.Session, ownerUUID string, kind ResourceKind, action Action) error {
	if session.User.UUID == ownerUUID {
		return nil
	}
	if action == ActionDelete && session.User.IsAdmin() {
		return nil
	}
	return denial(kind, action)
}

func denial(kind ResourceKind, action Action) *apperror.Error {
	switch {
	case kind == ResourceQuestion && action == ActionEdit:
		return apperror.ErrEditQuestionDenied
	case kind == ResourceQuestion && action == ActionDelete:
		return apperror.ErrDeleteQuestionDenied
	case kind == ResourceAnswer && action == ActionEdit:
		return apperror.ErrEditAnswerDenied
	default:
		return apperror.ErrDeleteAnswerDenied
	}
}
