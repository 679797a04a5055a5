// Package models содержит доменную модель сессии входа.
package models

import "time"

// SessionTTL задает окно действия сессии с момента входа.
const SessionTTL = 8 * time.Hour

// Session представляет запись о входе пользователя.
// Сессия создается при успешном входе и завершается установкой LogoutAt;
// физически записи из хранилища не удаляются.
type Session struct {
	ID          int64      // Внутренний числовой идентификатор
	UUID        string     // Публичный уникальный идентификатор сессии
	AccessToken string     // Токен доступа (уникальный, повторно не используется)
	IssuedAt    time.Time  // Момент входа
	ExpiresAt   time.Time  // IssuedAt + SessionTTL
	LogoutAt    *time.Time // Момент выхода, nil пока сессия активна
	User        *User      // Владелец сессии
}

// Active сообщает, действует ли сессия. Сессия считается действующей,
// пока не выполнен явный выход: поле ExpiresAt при авторизации не проверяется.
func (s *Session) Active() bool {
	return s.LogoutAt == nil
}
