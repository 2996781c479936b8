// Package server provides the optional Prometheus metrics HTTP server that
// runs alongside the MCP stdio transport in serve mode.
package server
