package errorvalues

import (
	"errors"
	"fmt"
)

// Kinds. Every specific error below wraps exactly one of them, so callers can
// match either with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidState = errors.New("invalid state")
	ErrInvalidInput = errors.New("invalid input")
)

var (
	ErrUserNotFound        = fmt.Errorf("user doesn't exist: %w", ErrNotFound)
	ErrSessionNotFound     = fmt.Errorf("focus session doesn't exist: %w", ErrNotFound)
	ErrSessionTypeNotFound = fmt.Errorf("session type doesn't exist: %w", ErrNotFound)
	ErrToDoNotFound        = fmt.Errorf("todo item doesn't exist: %w", ErrNotFound)
	ErrTagNotFound         = fmt.Errorf("tag doesn't exist: %w", ErrNotFound)
	ErrStatsNotFound       = fmt.Errorf("user stats don't exist: %w", ErrNotFound)
	ErrReferenceNotFound   = fmt.Errorf("referenced entity doesn't exist: %w", ErrNotFound)

	ErrWrongOwner = fmt.Errorf("resource belongs to another user: %w", ErrForbidden)

	ErrSessionFinished = fmt.Errorf("session is already completed or cancelled: %w", ErrInvalidState)
	ErrToDoCompleted   = fmt.Errorf("todo item is already completed: %w", ErrInvalidState)

	ErrDurationNotSet      = fmt.Errorf("neither session type nor positive custom duration provided: %w", ErrInvalidInput)
	ErrDurationConflict    = fmt.Errorf("session type and custom duration are mutually exclusive: %w", ErrInvalidInput)
	ErrSessionTypeInactive = fmt.Errorf("session type is inactive: %w", ErrInvalidInput)
	ErrInvalidSessionType  = fmt.Errorf("session type has no positive work duration: %w", ErrInvalidInput)
	ErrUnknownRecurrence   = fmt.Errorf("unknown recurrence: %w", ErrInvalidInput)
	ErrValidation          = fmt.Errorf("validation error: %w", ErrInvalidInput)
)

var (
	ErrInvalidToken = errors.New("invalid token")
)
