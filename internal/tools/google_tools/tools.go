package google_tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/cadentdev/content-calendar-template/internal/google"
	"github.com/cadentdev/content-calendar-template/internal/logging"
)

// RegisterGoogleTools registers all Google OAuth-related tools with the MCP server
func RegisterGoogleTools(s *mcpserver.MCPServer, config google.Config) error {
	// Get OAuth URL tool
	getAuthURLTool := mcp.NewTool("google_get_auth_url",
		mcp.WithDescription("Get the OAuth URL to authorize Google Sheets and Drive access for the calendar generator"),
	)

	s.AddTool(getAuthURLTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetAuthURL(ctx, request, config)
	})

	// Save authorization code tool
	saveAuthCodeTool := mcp.NewTool("google_save_auth_code",
		mcp.WithDescription("Save the OAuth authorization code to complete Google Sheets authentication"),
		mcp.WithString("authCode",
			mcp.Required(),
			mcp.Description("The authorization code from Google OAuth"),
		),
	)

	s.AddTool(saveAuthCodeTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleSaveAuthCode(ctx, request, config)
	})

	// Auth status tool
	authStatusTool := mcp.NewTool("google_auth_status",
		mcp.WithDescription("Check whether a cached Google OAuth token exists"),
	)

	s.AddTool(authStatusTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleAuthStatus(ctx, request, config)
	})

	return nil
}

func handleGetAuthURL(_ context.Context, _ mcp.CallToolRequest, config google.Config) (*mcp.CallToolResult, error) {
	authURL, err := config.AuthURL()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to build authorization URL: %v", err)), nil
	}

	result := fmt.Sprintf(`To authorize Google Sheets and Drive access:

1. Visit this URL in your browser:
   %s

2. Sign in with your Google account
3. Grant access to Google Sheets and Drive
4. Copy the authorization code

5. Call the google_save_auth_code tool with the code to complete authentication`, authURL)

	return mcp.NewToolResultText(result), nil
}

func handleSaveAuthCode(ctx context.Context, request mcp.CallToolRequest, config google.Config) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	authCode, ok := args["authCode"].(string)
	if !ok || authCode == "" {
		return mcp.NewToolResultError("authCode is required"), nil
	}

	slog.Debug("exchanging authorization code",
		logging.Tool("google_save_auth_code"),
		slog.String("code", logging.SanitizeToken(authCode)))

	if err := config.SaveAuthCode(ctx, authCode); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to save authorization code: %v", err)), nil
	}

	return mcp.NewToolResultText("Authorization successful! Google Sheets token saved. You can now use the calendar_create tool."), nil
}

func handleAuthStatus(_ context.Context, _ mcp.CallToolRequest, config google.Config) (*mcp.CallToolResult, error) {
	if config.HasToken() {
		return mcp.NewToolResultText("Authorized: a cached OAuth token is present."), nil
	}
	return mcp.NewToolResultText("Not authorized: no cached OAuth token. Call google_get_auth_url to begin the OAuth flow."), nil
}
