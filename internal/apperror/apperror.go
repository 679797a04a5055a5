// Package apperror определяет типизированные ошибки бизнес-уровня
// с машиночитаемым кодом и человекочитаемым сообщением.
//
// Каждая ошибка относится к одному из видов (Kind), по которому
// транспортный слой выбирает класс ответа; сам пакет о транспорте
// ничего не знает. Все ошибки ядра — ожидаемые исходы, а не фатальные
// сбои, и передаются вызывающему через возвращаемое значение.
package apperror

import (
	"errors"
	"fmt"
)

// Kind определяет вид ошибки бизнес-уровня.
type Kind int

const (
	// KindAuthentication — неверные учетные данные при входе (ATH-*).
	KindAuthentication Kind = iota
	// KindAuthorization — отказ в доступе или невалидная сессия (ATHR-*).
	KindAuthorization
	// KindSignOutRestricted — попытка выхода без действующей сессии (SGR-*).
	KindSignOutRestricted
	// KindNotFound — запрошенный ресурс не существует (USR-*, QUES-*, QUER-*, ANS-*, OTHR-*).
	KindNotFound
	// KindConflict — нарушение уникальности при регистрации (SGUP-*).
	KindConflict
)

// Error — ошибка бизнес-уровня с кодом и сообщением.
// Коды различают внешне похожие ситуации (например, ATHR-001 «не входил»
// и ATHR-002 «вышел»), внешние клиенты завязаны на код, а не на текст.
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// New создает новую ошибку бизнес-уровня.
func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// Ошибки аутентификации при входе.
var (
	ErrUnknownUser   = New(KindAuthentication, "ATH-001", "This username does not exist.")
	ErrWrongPassword = New(KindAuthentication, "ATH-002", "Password Failed")
)

// Ошибки валидности сессии и доступа.
var (
	ErrNotSignedIn = New(KindAuthorization, "ATHR-001", "User has not signed in")
	ErrSignedOut   = New(KindAuthorization, "ATHR-002", "User is signed out.Sign in first to get user details")

	ErrEditQuestionDenied   = New(KindAuthorization, "ATHR-003", "Only the question owner can edit the question")
	ErrDeleteQuestionDenied = New(KindAuthorization, "ATHR-003", "Only the question owner or admin can delete the question")
	ErrEditAnswerDenied     = New(KindAuthorization, "ATHR-003", "Only the answer owner can edit the answer")
	ErrDeleteAnswerDenied   = New(KindAuthorization, "ATHR-003", "Only the answer owner or admin can delete the answer")
	ErrNotAdmin             = New(KindAuthorization, "ATHR-003", "Unauthorized Access, Logged in user is not an admin")
)

// Ошибка выхода без сессии.
var ErrSignOutRestricted = New(KindSignOutRestricted, "SGR-001", "User is not Signed in")

// Ошибки отсутствия ресурсов.
var (
	ErrUserNotFound             = New(KindNotFound, "USR-001", "User with entered uuid does not exist")
	ErrQuestionsUserNotFound    = New(KindNotFound, "USR-001", "User with entered uuid whose question details are to be seen does not exist")
	ErrQuestionNotFound         = New(KindNotFound, "QUES-001", "Entered question uuid does not exist")
	ErrQuestionInvalid          = New(KindNotFound, "QUES-001", "The question entered is invalid")
	ErrQuestionForAnswersAbsent = New(KindNotFound, "QUES-001", "The question with entered uuid whose details are to be seen does not exist")
	ErrNoQuestionsForUser       = New(KindNotFound, "QUER-001", "No questions found for user")
	ErrNoQuestions              = New(KindNotFound, "QUER-002", "No questions found for any user")
	ErrAnswerNotFound           = New(KindNotFound, "ANS-001", "Entered answer uuid does not exist")
	ErrNoAnswers                = New(KindNotFound, "OTHR-001", "No Answers available for the given question uuid")
)

// Ошибки регистрации.
var (
	ErrUsernameTaken = New(KindConflict, "SGUP-001", "Try any other Username, this Username has already been taken")
	ErrEmailTaken    = New(KindConflict, "SGUP-002", "This user has already been registered, try with any other emailId")
)

// From извлекает *Error из цепочки err. Возвращает nil,
// если в цепочке нет ошибки бизнес-уровня.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}
