package errors

import "fmt"

// UnexpectedError wraps store or provider failures that the caller cannot act
// on. Handlers map it to a generic internal error response; the cause is only
// ever logged.
type UnexpectedError struct {
	Message string
	Cause   error
}

func (e *UnexpectedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Cause.Error())
	}
	return e.Message
}

func (e *UnexpectedError) Unwrap() error {
	return e.Cause
}

// NewUnexpectedError creates a new UnexpectedError
func NewUnexpectedError(message string, cause error) *UnexpectedError {
	return &UnexpectedError{
		Message: message,
		Cause:   cause,
	}
}
