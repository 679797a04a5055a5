// Package token реализует выпуск и разбор токенов доступа на основе JWT.
//
// Токен подписывается секретным ключом и несёт UUID сессии и окно её
// действия. Для авторизации токен всегда разрешается через таблицу сессий:
// подпись удостоверяет только происхождение строки токена.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims описывает данные, хранящиеся в токене доступа.
type Claims struct {
	SessionUUID          string `json:"session_uuid"` // UUID сессии входа
	jwt.RegisteredClaims        // Встроенные стандартные claims JWT (ExpiresAt, IssuedAt и пр.)
}

// Maker описывает интерфейс для выпуска и разбора токенов доступа.
type Maker interface {
	// Issue создает токен для сессии с заданным окном действия.
	Issue(sessionUUID string, issuedAt, expiresAt time.Time) (string, error)
	// Parse разбирает токен и возвращает его claims.
	Parse(tokenStr string) (*Claims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа.
type MakerImpl struct {
	secretKey string // Секретный ключ для подписи токенов.
}

// NewMaker создаёт новый экземпляр MakerImpl на основе секретного ключа.
func NewMaker(secretKey string) *MakerImpl {
	return &MakerImpl{secretKey: secretKey}
}

// Issue создает JWT токен с UUID сессии, подписывая его секретным ключом.
func (m *MakerImpl) Issue(sessionUUID string, issuedAt, expiresAt time.Time) (string, error) {
	claims := Claims{
		SessionUUID: sessionUUID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(m.secretKey))
}

// Parse разбирает JWT токен, проверяет его подпись,
// возвращает Claims с данными, если токен корректен.
//
// Claims (включая ExpiresAt) не валидируются: срок действия сессии
// определяет таблица сессий, а не токен.
func (m *MakerImpl) Parse(tokenStr string) (*Claims, error) {
	const op = "token.Parse"
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(_ *jwt.Token) (any, error) {
		return []byte(m.secretKey), nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	return claims, nil
}
