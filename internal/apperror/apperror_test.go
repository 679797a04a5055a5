package apperror_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/qa-forum/internal/apperror"
)

func TestError_Error(t *testing.T) {
	err := apperror.New(apperror.KindNotFound, "QUES-001", "Entered question uuid does not exist")
	assert.Equal(t, "QUES-001: Entered question uuid does not exist", err.Error())
}

func TestFrom(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want *apperror.Error
	}{
		{
			name: "direct app error",
			err:  apperror.ErrNotSignedIn,
			want: apperror.ErrNotSignedIn,
		},
		{
			name: "wrapped app error",
			err:  fmt.Errorf("auth.Resolve: %w", apperror.ErrSignedOut),
			want: apperror.ErrSignedOut,
		},
		{
			name: "plain error",
			err:  errors.New("db error"),
			want: nil,
		},
		{
			name: "nil error",
			err:  nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := apperror.From(tt.err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPredeclaredCodes(t *testing.T) {
	tests := []struct {
		err      *apperror.Error
		wantKind apperror.Kind
		wantCode string
	}{
		{apperror.ErrUnknownUser, apperror.KindAuthentication, "ATH-001"},
		{apperror.ErrWrongPassword, apperror.KindAuthentication, "ATH-002"},
		{apperror.ErrNotSignedIn, apperror.KindAuthorization, "ATHR-001"},
		{apperror.ErrSignedOut, apperror.KindAuthorization, "ATHR-002"},
		{apperror.ErrEditQuestionDenied, apperror.KindAuthorization, "ATHR-003"},
		{apperror.ErrDeleteQuestionDenied, apperror.KindAuthorization, "ATHR-003"},
		{apperror.ErrEditAnswerDenied, apperror.KindAuthorization, "ATHR-003"},
		{apperror.ErrDeleteAnswerDenied, apperror.KindAuthorization, "ATHR-003"},
		{apperror.ErrNotAdmin, apperror.KindAuthorization, "ATHR-003"},
		{apperror.ErrSignOutRestricted, apperror.KindSignOutRestricted, "SGR-001"},
		{apperror.ErrUserNotFound, apperror.KindNotFound, "USR-001"},
		{apperror.ErrQuestionsUserNotFound, apperror.KindNotFound, "USR-001"},
		{apperror.ErrQuestionNotFound, apperror.KindNotFound, "QUES-001"},
		{apperror.ErrQuestionInvalid, apperror.KindNotFound, "QUES-001"},
		{apperror.ErrQuestionForAnswersAbsent, apperror.KindNotFound, "QUES-001"},
		{apperror.ErrNoQuestionsForUser, apperror.KindNotFound, "QUER-001"},
		{apperror.ErrNoQuestions, apperror.KindNotFound, "QUER-002"},
		{apperror.ErrAnswerNotFound, apperror.KindNotFound, "ANS-001"},
		{apperror.ErrNoAnswers, apperror.KindNotFound, "OTHR-001"},
		{apperror.ErrUsernameTaken, apperror.KindConflict, "SGUP-001"},
		{apperror.ErrEmailTaken, apperror.KindConflict, "SGUP-002"},
	}

	for _, tt := range tests {
		t.Run(tt.wantCode+" "+tt.err.Message, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, tt.err.Kind)
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}
