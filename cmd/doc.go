// Package cmd implements the command-line interface for content-calendar.
//
// This package provides the following commands:
//   - create: Build a content calendar spreadsheet in Google Sheets
//   - auth: Run the Google OAuth flow and cache the token
//   - serve: Start the MCP server to provide tools for AI assistants
//   - version: Display version information
//
// The create command is the default command when no subcommand is specified.
package cmd
