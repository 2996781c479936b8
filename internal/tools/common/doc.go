// Package common provides shared helpers for the MCP tool packages:
// argument extraction and an instrumented handler wrapper that records
// per-tool invocation metrics.
package common
