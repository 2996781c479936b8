package common

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/cadentdev/content-calendar-template/internal/instrumentation"
	"github.com/cadentdev/content-calendar-template/internal/logging"
)

// ToolHandler is the mcp-go tool handler signature.
type ToolHandler = server.ToolHandlerFunc

// InstrumentedToolHandler wraps a tool handler with invocation metrics. A
// result marked as a tool error counts as an error even though the MCP
// transport reports it as a successful call.
//
// Usage:
//
//	s.AddTool(myTool, common.InstrumentedToolHandler("my_tool", metrics, handler))
func InstrumentedToolHandler(toolName string, metrics *instrumentation.Metrics, handler ToolHandler) ToolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		result, err := handler(ctx, request)

		status := logging.StatusSuccess
		if err != nil || (result != nil && result.IsError) {
			status = logging.StatusError
		}
		metrics.RecordToolInvocation(ctx, toolName, status, time.Since(start))

		return result, err
	}
}

// StringArg extracts a string argument, returning the fallback when the
// argument is missing, empty or not a string.
func StringArg(args map[string]interface{}, key, fallback string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// BoolArg extracts a boolean argument, returning the fallback when the
// argument is missing or not a boolean.
func BoolArg(args map[string]interface{}, key string, fallback bool) bool {
	if v, ok := args[key].(bool); ok {
		return v
	}
	return fallback
}
