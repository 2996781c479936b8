// Package google_tools provides MCP tools for Google OAuth authentication.
//
// This package registers OAuth-related tools that allow AI assistants to:
//   - Check whether a cached OAuth token exists
//   - Get the OAuth authorization URL for Google Sheets and Drive
//   - Save the OAuth authorization code to complete authentication
//
// The OAuth flow:
//  1. Call google_auth_status to check for a cached token
//  2. If none, call google_get_auth_url to get the authorization URL
//  3. User visits the URL and authorizes access
//  4. User provides the authorization code
//  5. Call google_save_auth_code with the code to save the token
//
// Once authenticated, the calendar tools work with the saved token, which is
// automatically refreshed as needed.
package google_tools
