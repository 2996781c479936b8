// Package logging provides structured logging helpers built on log/slog.
//
// It defines the canonical attribute keys used across the application
// (operation, spreadsheet, attempt, status, ...) together with small
// constructors for the corresponding slog attributes, so log lines stay
// consistent and greppable regardless of which package emits them.
package logging
