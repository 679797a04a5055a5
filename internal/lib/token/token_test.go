package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaker_IssueAndParse_ValidCases(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	maker := NewMaker(secretKey)

	tests := []struct {
		name string
		ttl  time.Duration
	}{
		{
			name: "eight hour window",
			ttl:  8 * time.Hour,
		},
		{
			name: "short window",
			ttl:  15 * time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessionUUID := uuid.NewString()
			issuedAt := time.Now().UTC()
			expiresAt := issuedAt.Add(tt.ttl)

			token, err := maker.Issue(sessionUUID, issuedAt, expiresAt)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := maker.Parse(token)
			require.NoError(t, err)

			assert.Equal(t, sessionUUID, claims.SessionUUID)
			assert.WithinDuration(t, issuedAt, claims.IssuedAt.Time, time.Second)
			assert.WithinDuration(t, expiresAt, claims.ExpiresAt.Time, time.Second)
		})
	}
}

func TestMaker_Parse_ExpiredTokenStillParses(t *testing.T) {
	maker := NewMaker("test_secret_key_1234567890")

	sessionUUID := uuid.NewString()
	issuedAt := time.Now().UTC().Add(-9 * time.Hour)
	expiresAt := issuedAt.Add(8 * time.Hour)

	token, err := maker.Issue(sessionUUID, issuedAt, expiresAt)
	require.NoError(t, err)

	// Окно действия истекло, но подпись верна: разбор проходит,
	// срок сессии определяет таблица сессий.
	claims, err := maker.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, sessionUUID, claims.SessionUUID)
	assert.WithinDuration(t, expiresAt, claims.ExpiresAt.Time, time.Second)
}

func TestMaker_Parse_InvalidTokens(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	maker := NewMaker(secretKey)

	now := time.Now().UTC()
	validToken, err := maker.Issue(uuid.NewString(), now, now.Add(time.Hour))
	require.NoError(t, err)

	wrongMaker := NewMaker("wrong_secret_key")
	wrongSecretToken, err := wrongMaker.Issue(uuid.NewString(), now, now.Add(time.Hour))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "empty token",
			token: "",
		},
		{
			name:  "malformed token",
			token: "invalid.token.here",
		},
		{
			name:  "wrong secret key",
			token: wrongSecretToken,
		},
		{
			name:  "tampered token",
			token: validToken + "tampered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := maker.Parse(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestMaker_DifferentSecretKeys(t *testing.T) {
	maker1 := NewMaker("first_secret_key")
	maker2 := NewMaker("different_secret_key")

	now := time.Now().UTC()
	token, err := maker1.Issue(uuid.NewString(), now, now.Add(time.Hour))
	require.NoError(t, err)

	claims, err := maker2.Parse(token)
	assert.Error(t, err)
	assert.Nil(t, claims)

	claims, err = maker1.Parse(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
}
