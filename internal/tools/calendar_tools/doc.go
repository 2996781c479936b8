// Package calendar_tools provides the MCP tool for generating content
// calendar spreadsheets.
//
// The calendar_create tool takes a client name and a planning horizon in
// weeks, sanitizes both, and builds a fresh spreadsheet with a formatted
// header row, sample posts, weekly planning rows, dropdown validations and
// an Instructions sheet. Every invocation creates a new document.
package calendar_tools
