// Package models содержит доменную модель пользователя форума,
// включающую данные учётной записи, хэш пароля, роль и поля профиля.
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// Роли пользователей. Закрытое множество из двух значений:
// только admin может удалять чужие вопросы и ответы.
const (
	RoleAdmin    = "admin"
	RoleNonadmin = "nonadmin"
)

// User представляет зарегистрированного пользователя форума.
type User struct {
	ID            int64     // Внутренний числовой идентификатор
	UUID          string    // Публичный уникальный идентификатор
	Username      string    // Имя пользователя (уникальное)
	Email         string    // Электронная почта (уникальная)
	PasswordHash  string    // Хэш пароля пользователя
	Role          string    // Роль пользователя, admin или nonadmin
	FirstName     string    // Имя
	LastName      string    // Фамилия
	AboutMe       string    // Описание профиля
	DOB           string    // Дата рождения
	Country       string    // Страна
	ContactNumber string    // Контактный номер
	CreatedAt     time.Time // Дата регистрации
}

// IsAdmin сообщает, имеет ли пользователь права администратора.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
