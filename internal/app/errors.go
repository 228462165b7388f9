package app

import "errors"

// Error categories. Handlers map them onto HTTP statuses.
var (
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
	ErrStorage    = errors.New("storage error")
)

var (
	ErrUsernameRequired       = newError(ErrValidation, "Username is required")
	ErrUsernameTaken          = newError(ErrConflict, "Username already exists")
	ErrUserNotFound           = newError(ErrNotFound, "User not found")
	ErrExerciseFieldsRequired = newError(ErrValidation, "Description and duration are required")
	ErrInvalidDuration        = newError(ErrValidation, "Duration must be a number")
	ErrInvalidDate            = newError(ErrValidation, "Invalid date")
	ErrInvalidFrom            = newError(ErrValidation, "Invalid from date")
	ErrInvalidTo              = newError(ErrValidation, "Invalid to date")
)

// domainError carries a caller-facing message and unwraps to its category.
type domainError struct {
	kind    error
	message string
}

func newError(kind error, message string) error {
	return &domainError{kind: kind, message: message}
}

func (e *domainError) Error() string { return e.message }

func (e *domainError) Unwrap() error { return e.kind }
