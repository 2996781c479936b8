package calendar_tools

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/cadentdev/content-calendar-template/internal/calendar"
	"github.com/cadentdev/content-calendar-template/internal/google"
	"github.com/cadentdev/content-calendar-template/internal/instrumentation"
	"github.com/cadentdev/content-calendar-template/internal/logging"
	"github.com/cadentdev/content-calendar-template/internal/sheets"
	"github.com/cadentdev/content-calendar-template/internal/tools/common"
	"github.com/cadentdev/content-calendar-template/internal/validate"
)

// Deps carries the shared dependencies for the calendar tools.
type Deps struct {
	Config   google.Config
	Logger   *slog.Logger
	Provider *instrumentation.Provider
}

func (d Deps) metrics() *instrumentation.Metrics {
	if d.Provider != nil {
		return d.Provider.Metrics()
	}
	return &instrumentation.Metrics{}
}

// RegisterCalendarTools registers the content-calendar tools with the MCP server
func RegisterCalendarTools(s *mcpserver.MCPServer, deps Deps) error {
	createTool := mcp.NewTool("calendar_create",
		mcp.WithDescription("Create a content calendar spreadsheet in Google Sheets with sample posts, weekly planning rows, dropdown validations and an instructions sheet"),
		mcp.WithString("clientName",
			mcp.Description("Client name used in the spreadsheet title (default: 'Sample Client'). Filesystem-hostile characters are stripped and the name is truncated to 50 characters."),
		),
		mcp.WithNumber("weeks",
			mcp.Description("Planning horizon in weeks, clamped to 1-52 (default: 4)"),
		),
		mcp.WithBoolean("share",
			mcp.Description("Also share the spreadsheet with anyone who has the link (default: false)"),
		),
	)

	s.AddTool(createTool, common.InstrumentedToolHandler("calendar_create", deps.metrics(), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleCreate(ctx, request, deps)
	}))

	return nil
}

func handleCreate(ctx context.Context, request mcp.CallToolRequest, deps Deps) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if !deps.Config.HasToken() {
		return mcp.NewToolResultError("Google OAuth token not found. Call google_get_auth_url to begin the OAuth flow, then google_save_auth_code with the authorization code."), nil
	}

	req := calendar.Request{
		ClientName:   validate.ClientName(common.StringArg(args, "clientName", "")),
		HorizonWeeks: horizonFromArgs(args),
	}

	client, err := sheets.NewClient(ctx, deps.Config, logger, deps.Provider)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create Sheets client: %v", err)), nil
	}

	generator := calendar.New(client, logger)

	result, err := generator.Create(ctx, req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create content calendar: %v", err)), nil
	}

	shared := ""
	if common.BoolArg(args, "share", false) {
		if err := generator.Share(ctx, result.Spreadsheet); err != nil {
			logger.Warn("could not share spreadsheet", logging.Spreadsheet(result.Spreadsheet.ID), logging.Err(err))
			shared = "\nSharing failed; the calendar is still complete. Share it manually from the Sheets UI."
		} else {
			shared = "\nShared: anyone with the link can view."
		}
	}

	return mcp.NewToolResultText(fmt.Sprintf("Created %q covering %d weeks.\nURL: %s%s", result.Title, req.HorizonWeeks, result.Spreadsheet.URL, shared)), nil
}

// horizonFromArgs accepts the weeks argument as a JSON number or a string;
// anything else falls back to the default horizon.
func horizonFromArgs(args map[string]interface{}) int {
	switch v := args["weeks"].(type) {
	case float64:
		return validate.Horizon(strconv.Itoa(int(v)))
	case string:
		return validate.Horizon(v)
	}
	return validate.Horizon("")
}
