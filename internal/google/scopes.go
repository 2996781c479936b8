package google

// OAuthScopes are the Google OAuth scopes the application requests.
//
// The scopes provide access to:
//   - Google Sheets: create and edit spreadsheets
//   - Google Drive: manage files created by this application (sharing)
var OAuthScopes = []string{
	"https://www.googleapis.com/auth/spreadsheets",
	"https://www.googleapis.com/auth/drive.file",
}
