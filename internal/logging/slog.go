package logging

import (
	"fmt"
	"log/slog"
)

// Common log attribute keys for consistent naming across the codebase.
const (
	KeyOperation   = "operation"
	KeyClient      = "client"
	KeySpreadsheet = "spreadsheet"
	KeySheet       = "sheet"
	KeyRange       = "range"
	KeyAttempt     = "attempt"
	KeyDelay       = "delay"
	KeyDuration    = "duration"
	KeyStatus      = "status"
	KeyError       = "error"
	KeyTool        = "tool"
)

// Status values for consistent logging.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// WithOperation returns a logger with the operation attribute set.
func WithOperation(logger *slog.Logger, operation string) *slog.Logger {
	return logger.With(slog.String(KeyOperation, operation))
}

// WithSpreadsheet returns a logger with the spreadsheet ID attribute set.
func WithSpreadsheet(logger *slog.Logger, id string) *slog.Logger {
	return logger.With(slog.String(KeySpreadsheet, id))
}

// Operation returns a slog attribute for the operation name.
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// Client returns a slog attribute for the client (customer) label.
func Client(name string) slog.Attr {
	return slog.String(KeyClient, name)
}

// Spreadsheet returns a slog attribute for the spreadsheet ID.
func Spreadsheet(id string) slog.Attr {
	return slog.String(KeySpreadsheet, id)
}

// Sheet returns a slog attribute for the sheet (tab) title.
func Sheet(title string) slog.Attr {
	return slog.String(KeySheet, title)
}

// Range returns a slog attribute for an A1-style range reference.
func Range(ref string) slog.Attr {
	return slog.String(KeyRange, ref)
}

// Attempt returns a slog attribute for a retry attempt number (1-based).
func Attempt(n int) slog.Attr {
	return slog.Int(KeyAttempt, n)
}

// Tool returns a slog attribute for the MCP tool name.
func Tool(tool string) slog.Attr {
	return slog.String(KeyTool, tool)
}

// Status returns a slog attribute for the status.
func Status(status string) slog.Attr {
	return slog.String(KeyStatus, status)
}

// Err returns a slog attribute for an error.
// If err is nil, returns an empty Group attribute that will be omitted from output.
// This allows safely passing Err(maybeNilErr) without adding empty attributes.
//
// Usage:
//
//	logger.Info("operation", logging.Err(err))  // Safe even if err is nil
func Err(err error) slog.Attr {
	if err == nil {
		// Return an empty Group that slog will omit from output
		return slog.Group("")
	}
	return slog.String(KeyError, err.Error())
}

// SanitizeToken returns a masked version of a token for logging.
// It returns a length indicator without exposing any token content,
// as even partial token prefixes can aid attacks.
func SanitizeToken(token string) string {
	if token == "" {
		return "<empty>"
	}
	return fmt.Sprintf("[token:%d chars]", len(token))
}
