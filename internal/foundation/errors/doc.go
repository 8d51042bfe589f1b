// Package errors provides the classified error primitives used across siteconf.
//
// Key features:
//   - ErrorCategory: Broad error classification (config, validation, filesystem, render...)
//   - ErrorSeverity: Impact level (fatal, error, warning, info)
//   - RetryStrategy: Whether a caller may retry or needs user action
//   - ClassifiedError: Structured error with category, severity, and context
//   - ErrorBuilder: Fluent API for creating classified errors
//   - CLIErrorAdapter: exit codes and user-facing messages
//
// Example usage:
//
//	err := errors.FileSystemError("ensure header snippet").
//		WithContext("path", path).
//		WithCause(originalErr).
//		Build()
package errors
