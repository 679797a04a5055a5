package models

import "time"

// Answer представляет ответ на вопрос. Ссылки на владельца и на вопрос
// неизменны после создания.
type Answer struct {
	ID              int64     // Внутренний числовой идентификатор
	UUID            string    // Публичный уникальный идентификатор
	OwnerUUID       string    // UUID пользователя-владельца
	QuestionUUID    string    // UUID вопроса, к которому относится ответ
	Content         string    // Текст ответа
	QuestionContent string    // Текст вопроса, заполняется при выборке списков
	CreatedAt       time.Time // Дата создания
}
