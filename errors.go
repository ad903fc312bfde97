package salam

import (
	"errors"
	"fmt"
	"time"
)

// Error type constants used in GreeterError.Type.
const (
	// ErrorTypeInvalidArgument marks a rejected caller-supplied value.
	ErrorTypeInvalidArgument = "InvalidArgument"
	// ErrorTypeGreeting marks a failure inside a greeting run.
	ErrorTypeGreeting = "GreetingFailure"
	// ErrorTypeValidation marks a construction-time wiring problem.
	ErrorTypeValidation = "Validation"
)

// Sentinel errors for common failure scenarios
var (
	// ErrEmptyName is wrapped by the InvalidArgument error a name mutation
	// returns when given an empty value.
	ErrEmptyName = errors.New("salam: name cannot be empty")
)

// GreeterError represents an error from the greeter. Greeting failures are
// absorbed internally and never escape a Greet call; only InvalidArgument
// and Validation errors are visible to callers.
type GreeterError struct {
	Type    string
	Message string
	Cause   error

	// Context fields, populated where known.
	Recipient string
	Processed int
	Timestamp time.Time
}

// Error implements error interface.
func (e *GreeterError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause.
func (e *GreeterError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is compares error types for errors.Is.
func (e *GreeterError) Is(target error) bool {
	if e == nil {
		return false
	}
	if targetErr, ok := target.(*GreeterError); ok {
		return e.Type == targetErr.Type
	}
	return false
}

// IsInvalidArgument reports whether err is an InvalidArgument greeter error.
func IsInvalidArgument(err error) bool {
	var greeterErr *GreeterError
	if errors.As(err, &greeterErr) {
		return greeterErr.Type == ErrorTypeInvalidArgument
	}
	return false
}

// DebugInfo renders a multi-line string with diagnostic context.
func (e *GreeterError) DebugInfo() string {
	if e == nil {
		return "Error: <nil>"
	}
	info := fmt.Sprintf("Error Type: %s\n", e.Type)
	info += fmt.Sprintf("Message: %s\n", e.Message)
	if e.Recipient != "" {
		info += fmt.Sprintf("Recipient: %s\n", e.Recipient)
	}
	if e.Processed > 0 {
		info += fmt.Sprintf("Processed: %d\n", e.Processed)
	}
	if !e.Timestamp.IsZero() {
		info += fmt.Sprintf("Timestamp: %s\n", e.Timestamp.Format(time.RFC3339))
	}
	if e.Cause != nil {
		info += fmt.Sprintf("Cause: %v\n", e.Cause)
	}
	return info
}
