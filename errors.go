package ask

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrCancel is returned when the user aborts a prompt (Escape or Ctrl+C)
	ErrCancel = errors.New("cancelled")
	// ErrInvalidValue is returned when a number prompt cannot parse its input
	ErrInvalidValue = errors.New("invalid value")
	// ErrValidationFailed matches every *ValidationError
	ErrValidationFailed = errors.New("validation failed")
	// ErrIO is returned when the terminal cannot be read from or written to
	ErrIO = errors.New("terminal i/o failure")
	// ErrInvalidCount matches every *CountError
	ErrInvalidCount = errors.New("invalid number of selected options")
)

// ValidationError is the inline error a prompt shows when its validator
// rejects the input. It never reaches the caller of a prompt: submission is
// suppressed and the user keeps editing.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Is makes errors.Is(err, ErrValidationFailed) true.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// CountError is the inline error of a multi-select prompt submitted with
// fewer options selected than its minimum.
type CountError struct {
	Min      int
	Selected int
}

func (e *CountError) Error() string {
	if e.Min == 1 {
		return "select at least 1 option"
	}
	return fmt.Sprintf("select at least %d options", e.Min)
}

// Is makes errors.Is(err, ErrInvalidCount) true.
func (e *CountError) Is(target error) bool {
	return target == ErrInvalidCount
}

// validationError converts the result of a user validator into the error
// stored on the prompt.
func validationError(err error) error {
	if err == nil {
		return nil
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return &ValidationError{Reason: err.Error()}
}
