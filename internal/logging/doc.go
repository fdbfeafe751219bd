// Package logging provides structured logging utilities for the fieldbook servers.
//
// This package centralizes logging patterns to ensure consistent, structured logging
// throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - Sensitive-identifier sanitization (document ID hashing, token masking)
//   - Consistent attribute naming across the codebase
//   - Logger adapter interface for flexibility
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithOperation(slog.Default(), "drive.get")
//	logger.Info("fetched notebook",
//	    logging.Status("success"))
//
// Sanitize sensitive data before logging:
//
//	logger.Info("notebook updated",
//	    logging.DocumentHash(fileID))
//
// # Security Considerations
//
// This package is designed with security in mind:
//   - Document IDs are hashed to prevent leaking file references while allowing correlation
//   - Tokens are never logged directly
package logging
