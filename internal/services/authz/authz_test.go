package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/qa-forum/internal/apperror"
	"github.com/magabrotheeeer/qa-forum/internal/models"
	"github.com/magabrotheeeer/qa-forum/internal/services/authz"
)

func sessionFor(userUUID, role string) *models.Session {
	return &models.Session{
		UUID: "session-uuid",
		User: &models.User{UUID: userUUID, Role: role},
	}
}

func TestAuthorize(t *testing.T) {
	const ownerUUID = "owner-uuid"

	tests := []struct {
		name    string
		session *models.Session
		kind    authz.ResourceKind
		action  authz.Action
		wantErr error
	}{
		{
			name:    "owner edits own question",
			session: sessionFor(ownerUUID, models.RoleNonadmin),
			kind:    authz.ResourceQuestion,
			action:  authz.ActionEdit,
		},
		{
			name:    "owner deletes own question",
			session: sessionFor(ownerUUID, models.RoleNonadmin),
			kind:    authz.ResourceQuestion,
			action:  authz.ActionDelete,
		},
		{
			name:    "stranger edits question",
			session: sessionFor("other-uuid", models.RoleNonadmin),
			kind:    authz.ResourceQuestion,
			action:  authz.ActionEdit,
			wantErr: apperror.ErrEditQuestionDenied,
		},
		{
			name:    "stranger deletes question",
			session: sessionFor("other-uuid", models.RoleNonadmin),
			kind:    authz.ResourceQuestion,
			action:  authz.ActionDelete,
			wantErr: apperror.ErrDeleteQuestionDenied,
		},
		{
			name:    "admin deletes foreign question",
			session: sessionFor("admin-uuid", models.RoleAdmin),
			kind:    authz.ResourceQuestion,
			action:  authz.ActionDelete,
		},
		{
			// Роль admin не дает права редактирования чужих записей.
			name:    "admin edits foreign question",
			session: sessionFor("admin-uuid", models.RoleAdmin),
			kind:    authz.ResourceQuestion,
			action:  authz.ActionEdit,
			wantErr: apperror.ErrEditQuestionDenied,
		},
		{
			name:    "stranger edits answer",
			session: sessionFor("other-uuid", models.RoleNonadmin),
			kind:    authz.ResourceAnswer,
			action:  authz.ActionEdit,
			wantErr: apperror.ErrEditAnswerDenied,
		},
		{
			name:    "stranger deletes answer",
			session: sessionFor("other-uuid", models.RoleNonadmin),
			kind:    authz.ResourceAnswer,
			action:  authz.ActionDelete,
			wantErr: apperror.ErrDeleteAnswerDenied,
		},
		{
			name:    "admin deletes foreign answer",
			session: sessionFor("admin-uuid", models.RoleAdmin),
			kind:    authz.ResourceAnswer,
			action:  authz.ActionDelete,
		},
		{
			name:    "admin edits foreign answer",
			session: sessionFor("admin-uuid", models.RoleAdmin),
			kind:    authz.ResourceAnswer,
			action:  authz.ActionEdit,
			wantErr: apperror.ErrEditAnswerDenied,
		},
		{
			name:    "admin edits own answer",
			session: sessionFor(ownerUUID, models.RoleAdmin),
			kind:    authz.ResourceAnswer,
			action:  authz.ActionEdit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := authz.Authorize(tt.session, ownerUUID, tt.kind, tt.action)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
