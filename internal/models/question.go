// Package models содержит доменные модели вопросов и ответов форума.
package models

import "time"

// Question представляет вопрос, заданный пользователем.
// Владелец фиксируется при создании и не меняется; редактирование
// затрагивает только содержимое.
type Question struct {
	ID        int64     // Внутренний числовой идентификатор
	UUID      string    // Публичный уникальный идентификатор
	OwnerUUID string    // UUID пользователя-владельца
	Content   string    // Текст вопроса
	CreatedAt time.Time // Дата создания
}
