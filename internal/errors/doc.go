// Package errors provides typed errors with exit codes for ssh-colors.
//
// # Error Types
//
// SyncError is the base error type that wraps an error with an exit code:
//
//	type SyncError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Defined exit codes for different error categories:
//
//	ExitSuccess        = 0  // Success
//	ExitGeneralError   = 1  // General/unknown errors
//	ExitConfigNotFound = 2  // SSH config file does not exist
//	ExitParseFailed    = 3  // SSH config could not be read
//	ExitGenerateFailed = 4  // Artifact generation failed
//	ExitSettingsError  = 5  // Settings file error
//
// # Error Constructors
//
// Use the provided constructors for consistent error creation:
//
//	errors.ConfigNotFound("/home/emma/.ssh/config")
//	errors.GenerateFailed("iTerm2 profiles", err)
//	errors.SettingsError("invalid settings file", err)
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
