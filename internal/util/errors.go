package util

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailRegistered       = errors.New("email already registered")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrPermissionDenied      = errors.New("permission denied")
	ErrQuestionnaireNotFound = errors.New("questionnaire not found")
	ErrQuestionNotFound      = errors.New("question not found")
	ErrResponseNotFound      = errors.New("response not found")
	ErrNoAnswers             = errors.New("response has no answers")
	ErrScoringConfigNotFound = errors.New("no active scoring config for questionnaire")
	ErrAmbiguousConfig       = errors.New("more than one active scoring config for questionnaire")
	ErrNotPublished          = errors.New("questionnaire not published")
)

// IsNotFound groups the error kinds that surface to callers as a 404.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrQuestionnaireNotFound) ||
		errors.Is(err, ErrQuestionNotFound) ||
		errors.Is(err, ErrResponseNotFound) ||
		errors.Is(err, ErrNoAnswers) ||
		errors.Is(err, ErrScoringConfigNotFound)
}
