package screens

import (
	"errors"
	"fmt"
)

// ErrValidation marks actions rejected by local checks before any request
var ErrValidation = errors.New("validation failed")

// ErrBusy is returned when an action is started while the same action is
// still running
var ErrBusy = errors.New("action already in progress")

// ErrNoQuiz is returned when submitting without a quiz ready
var ErrNoQuiz = errors.New("no quiz to submit")

type validationError struct {
	message string
}

func (e *validationError) Error() string {
	return e.message
}

func (e *validationError) Unwrap() error {
	return ErrValidation
}

func invalid(message string) error {
	return &validationError{message: message}
}

// screenError carries the static message for a failed backend call while
// keeping the cause for logs
type screenError struct {
	message string
	cause   error
}

func (e *screenError) Error() string {
	return fmt.Sprintf("%s: %v", e.message, e.cause)
}

func (e *screenError) Unwrap() error {
	return e.cause
}

func failed(message string, cause error) error {
	return &screenError{message: message, cause: cause}
}

// Message returns the text a screen shows for err
func Message(err error) string {
	if err == nil {
		return ""
	}
	var v *validationError
	if errors.As(err, &v) {
		return v.message
	}
	var s *screenError
	if errors.As(err, &s) {
		return s.message
	}
	return err.Error()
}
