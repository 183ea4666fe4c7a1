// Package apperrors carries the structured internal error used by the use cases.
package apperrors

import "fmt"

// InternalError records where an error was raised and a message safe to show users.
type InternalError struct {
	File          string
	Function      string
	Call          string
	Message       string
	OriginalError error
}

// CreateAppError returns an InternalError scoped to the given file or component.
func CreateAppError(file string) InternalError {
	return InternalError{File: file}
}

func (e InternalError) Error() string {
	if e.OriginalError == nil {
		return fmt.Sprintf("%s - %s - %s: %s", e.File, e.Function, e.Call, e.Message)
	}

	return fmt.Sprintf("%s - %s - %s: %v", e.File, e.Function, e.Call, e.OriginalError)
}

// Unwrap exposes the original error to errors.Is and errors.As.
func (e InternalError) Unwrap() error {
	return e.OriginalError
}

// Wrap returns a copy annotated with the failing function and the call it made.
func (e InternalError) Wrap(function, call string, err error) InternalError {
	e.Function = function
	e.Call = call
	e.OriginalError = err

	if e.Message == "" && err != nil {
		e.Message = err.Error()
	}

	return e
}

// WithMessage returns a copy carrying a user facing message.
func (e InternalError) WithMessage(message string) InternalError {
	e.Message = message

	return e
}

// FriendlyMessage -.
func (e InternalError) FriendlyMessage() string {
	return e.Message
}
