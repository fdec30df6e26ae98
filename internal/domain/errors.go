package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is the root of the validation error family. Every
	// value-object construction failure wraps it, so callers can match the
	// whole family with errors.Is(err, ErrValidation).
	ErrValidation = errors.New("validation failed")

	// ErrEmptyEmail is returned when an email address is empty.
	ErrEmptyEmail = fmt.Errorf("%w: email cannot be empty", ErrValidation)

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = fmt.Errorf("%w: invalid email format", ErrValidation)

	// Password construction errors. The rules mirror what sign-up enforces:
	// at least one lowercase letter, one uppercase letter, one digit, one
	// special character, and a minimum length of 6.
	ErrPasswordNoLower   = fmt.Errorf("%w: password must contain a lowercase letter", ErrValidation)
	ErrPasswordNoUpper   = fmt.Errorf("%w: password must contain an uppercase letter", ErrValidation)
	ErrPasswordNoDigit   = fmt.Errorf("%w: password must contain a digit", ErrValidation)
	ErrPasswordNoSpecial = fmt.Errorf("%w: password must contain a special character", ErrValidation)
	ErrPasswordTooShort  = fmt.Errorf("%w: password must be at least 6 characters long", ErrValidation)

	// ErrEmptyTitle is returned when a category title is empty.
	ErrEmptyTitle = fmt.Errorf("%w: title cannot be empty", ErrValidation)

	// ErrTitleTooLong is returned when a category title exceeds 255 characters.
	ErrTitleTooLong = fmt.Errorf("%w: title must be at most 255 characters", ErrValidation)

	// ErrEmptyTaskName is returned when a task name is empty.
	ErrEmptyTaskName = fmt.Errorf("%w: task name cannot be empty", ErrValidation)

	// ErrTaskNameTooLong is returned when a task name exceeds 150 characters.
	ErrTaskNameTooLong = fmt.Errorf("%w: task name must be at most 150 characters", ErrValidation)

	// ErrDeadlineInPast is returned when a task deadline is not strictly in
	// the future at the moment it is validated.
	ErrDeadlineInPast = fmt.Errorf("%w: deadline must be in the future", ErrValidation)
)
