package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/qa-forum/internal/models"
)

func TestUser_IsAdmin(t *testing.T) {
	assert.True(t, (&models.User{Role: models.RoleAdmin}).IsAdmin())
	assert.False(t, (&models.User{Role: models.RoleNonadmin}).IsAdmin())
	assert.False(t, (&models.User{}).IsAdmin())
}

func TestSession_Active(t *testing.T) {
	now := time.Now().UTC()

	active := &models.Session{
		IssuedAt:  now,
		ExpiresAt: now.Add(models.SessionTTL),
	}
	assert.True(t, active.Active())

	// Истекшая сессия без отметки выхода остается действующей.
	expired := &models.Session{
		IssuedAt:  now.Add(-2 * models.SessionTTL),
		ExpiresAt: now.Add(-models.SessionTTL),
	}
	assert.True(t, expired.Active())

	logoutAt := now
	loggedOut := &models.Session{
		IssuedAt:  now,
		ExpiresAt: now.Add(models.SessionTTL),
		LogoutAt:  &logoutAt,
	}
	assert.False(t, loggedOut.Active())
}
