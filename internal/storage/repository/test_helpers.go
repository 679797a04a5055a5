package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TestDataFactory содержит методы для создания тестовых данных
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory создает новую фабрику тестовых данных
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateUser создает тестового пользователя и возвращает его внутренний id
func (f *TestDataFactory) CreateUser(t *testing.T, userUUID, username, email, passwordHash, role string) int64 {
	var id int64
	err := f.storage.DB.QueryRow(`INSERT INTO users (uuid, username, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		userUUID, username, email, passwordHash, role).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateSession создает тестовую сессию входа
func (f *TestDataFactory) CreateSession(t *testing.T, sessionUUID string, userID int64, accessToken string,
	issuedAt, expiresAt time.Time) {
	_, err := f.storage.DB.Exec(`INSERT INTO sessions (uuid, user_id, access_token, issued_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)`,
		sessionUUID, userID, accessToken, issuedAt, expiresAt)
	require.NoError(t, err)
}

// CreateQuestion создает тестовый вопрос и возвращает его UUID
func (f *TestDataFactory) CreateQuestion(t *testing.T, userID int64, content string) string {
	questionUUID := uuid.NewString()
	_, err := f.storage.DB.Exec(`INSERT INTO questions (uuid, user_id, content)
		VALUES ($1, $2, $3)`,
		questionUUID, userID, content)
	require.NoError(t, err)
	return questionUUID
}

// CreateAnswer создает тестовый ответ на вопрос и возвращает его UUID
func (f *TestDataFactory) CreateAnswer(t *testing.T, userID int64, questionUUID, content string) string {
	answerUUID := uuid.NewString()
	_, err := f.storage.DB.Exec(`INSERT INTO answers (uuid, user_id, question_id, content)
		SELECT $1, $2, q.id, $4 FROM questions q WHERE q.uuid = $3`,
		answerUUID, userID, questionUUID, content)
	require.NoError(t, err)
	return answerUUID
}
