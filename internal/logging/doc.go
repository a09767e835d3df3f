// Package logging provides logging utilities for ssh-colors.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("parsed host", "host", host, "iterm", termColor)
//	logging.Warn("ignoring malformed annotation", "line", line)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Found %d hosts with color annotations", n)
//	logging.UserSuccess("Generated iTerm2 profiles: %s", path)
//	logging.UserWarning("Profiles directory is not writable")
//	logging.UserError("Failed to write workspace: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
