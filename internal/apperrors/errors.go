package apperrors

import "fmt"

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeUsage ErrorType = "usage"
	ErrorTypeLoad  ErrorType = "load"
)

// AppError represents a structured application error
type AppError struct {
	Type     ErrorType
	Message  string
	ExitCode int
	Cause    error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewUsageError creates an error for a missing or malformed command-line
// argument. It is reported before any processing happens.
func NewUsageError(message string) *AppError {
	return &AppError{
		Type:     ErrorTypeUsage,
		Message:  message,
		ExitCode: 2,
	}
}

// NewLoadError creates an error for a path that could not be opened or
// decoded into an image. The message always carries the offending path.
func NewLoadError(path string, cause error) *AppError {
	return &AppError{
		Type:     ErrorTypeLoad,
		Message:  fmt.Sprintf("unable to open image file '%s'", path),
		ExitCode: 1,
		Cause:    cause,
	}
}

// IsType checks if the error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Type == errorType
	}
	return false
}

// GetExitCode extracts the process exit code from an error
func GetExitCode(err error) int {
	if appErr, ok := err.(*AppError); ok {
		return appErr.ExitCode
	}
	return 1
}
