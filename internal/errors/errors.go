package errors

import (
	"errors"
	"fmt"
)

// Exit codes for ssh-colors
const (
	ExitSuccess        = 0
	ExitGeneralError   = 1
	ExitConfigNotFound = 2
	ExitParseFailed    = 3
	ExitGenerateFailed = 4
	ExitSettingsError  = 5
)

// SyncError is the base error type for ssh-colors
type SyncError struct {
	Code    int
	Message string
	Cause   error
}

func (e *SyncError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *SyncError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *SyncError) ExitCode() int {
	return e.Code
}

// New creates a new SyncError
func New(code int, message string) *SyncError {
	return &SyncError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a SyncError
func Wrap(code int, message string, cause error) *SyncError {
	return &SyncError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// ConfigNotFound returns an error for a missing SSH config file
func ConfigNotFound(path string) *SyncError {
	return New(ExitConfigNotFound, fmt.Sprintf("SSH config not found: %s", path))
}

// ParseFailed returns an error for SSH config read failures
func ParseFailed(path string, cause error) *SyncError {
	return Wrap(ExitParseFailed, fmt.Sprintf("failed to read %s", path), cause)
}

// GenerateFailed returns an error for artifact generation failures
func GenerateFailed(artifact string, cause error) *SyncError {
	return Wrap(ExitGenerateFailed, fmt.Sprintf("failed to generate %s", artifact), cause)
}

// SettingsError returns an error for settings file issues
func SettingsError(message string, cause error) *SyncError {
	return Wrap(ExitSettingsError, message, cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *SyncError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var syncErr *SyncError
	if errors.As(err, &syncErr) {
		return syncErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
