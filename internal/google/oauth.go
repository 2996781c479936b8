package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/cadentdev/content-calendar-template/internal/validate"
)

const (
	// DefaultCredentialsFile is the OAuth client credentials descriptor,
	// downloaded from the Google Cloud Console. Read-only input.
	DefaultCredentialsFile = "credentials.json"

	// DefaultTokenFile stores the issued OAuth token between runs.
	DefaultTokenFile = "token.json"
)

// Config locates the OAuth credential artifacts on disk. Both file fields are
// bare file names resolved against Workdir; paths with directory components
// are rejected at validation time.
type Config struct {
	// Workdir is the directory holding the credentials and token files.
	// Defaults to the current directory.
	Workdir string

	// CredentialsFile is the OAuth client credentials file name.
	CredentialsFile string

	// TokenFile is the cached OAuth token file name.
	TokenFile string

	// OnTokenRefresh, when set, is notified after each token refresh with
	// the refresh outcome. Used to feed the token-refresh metric.
	OnTokenRefresh func(err error)
}

// DefaultConfig returns a Config using the current directory and default
// file names.
func DefaultConfig() Config {
	return Config{
		Workdir:         ".",
		CredentialsFile: DefaultCredentialsFile,
		TokenFile:       DefaultTokenFile,
	}
}

// Validate checks the file name inputs. These are construction-time
// precondition failures, never retried.
func (c Config) Validate() error {
	if err := validate.Filename(c.CredentialsFile); err != nil {
		return fmt.Errorf("invalid credentials file: %w", err)
	}
	if err := validate.Filename(c.TokenFile); err != nil {
		return fmt.Errorf("invalid token file: %w", err)
	}
	return nil
}

func (c Config) credentialsPath() string {
	return filepath.Join(c.workdir(), c.CredentialsFile)
}

func (c Config) tokenPath() string {
	return filepath.Join(c.workdir(), c.TokenFile)
}

func (c Config) workdir() string {
	if c.Workdir == "" {
		return "."
	}
	return c.Workdir
}

// OAuthConfig reads the credentials descriptor and builds the OAuth2
// configuration. A missing credentials file is a configuration error: fatal,
// reported once, never retried.
func (c Config) OAuthConfig() (*oauth2.Config, error) {
	b, err := os.ReadFile(c.credentialsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("credentials file not found: %s (download it from the Google Cloud Console)", c.credentialsPath())
		}
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	conf, err := google.ConfigFromJSON(b, OAuthScopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse credentials file: %w", err)
	}

	return conf, nil
}

// HasToken checks whether a cached OAuth token exists.
func (c Config) HasToken() bool {
	_, err := os.Stat(c.tokenPath())
	return err == nil
}

// AuthURL returns the OAuth consent URL for user authorization.
func (c Config) AuthURL() (string, error) {
	conf, err := c.OAuthConfig()
	if err != nil {
		return "", err
	}

	return conf.AuthCodeURL("state-token", oauth2.AccessTypeOffline), nil
}

// SaveAuthCode exchanges an authorization code for a token and persists it.
func (c Config) SaveAuthCode(ctx context.Context, authCode string) error {
	conf, err := c.OAuthConfig()
	if err != nil {
		return err
	}

	token, err := conf.Exchange(ctx, authCode)
	if err != nil {
		return fmt.Errorf("failed to exchange auth code: %w", err)
	}

	return c.saveToken(token)
}

// Token loads the cached OAuth token from disk.
func (c Config) Token() (*oauth2.Token, error) {
	f, err := os.Open(c.tokenPath())
	if err != nil {
		return nil, fmt.Errorf("no valid OAuth token found (run 'auth' first): %w", err)
	}
	defer f.Close()

	token := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(token); err != nil {
		return nil, fmt.Errorf("failed to decode token file: %w", err)
	}

	return token, nil
}

// HTTPClient returns an HTTP client configured with OAuth2 authentication.
// If the cached token had to be refreshed, the refreshed token is written
// back so the next run skips the refresh round trip.
func (c Config) HTTPClient(ctx context.Context) (*http.Client, error) {
	conf, err := c.OAuthConfig()
	if err != nil {
		return nil, err
	}

	cached, err := c.Token()
	if err != nil {
		return nil, err
	}

	ts := conf.TokenSource(ctx, cached)

	current, err := ts.Token()
	if err != nil {
		if c.OnTokenRefresh != nil {
			c.OnTokenRefresh(err)
		}
		return nil, fmt.Errorf("cached token is invalid: %w", err)
	}

	if current.AccessToken != cached.AccessToken {
		if c.OnTokenRefresh != nil {
			c.OnTokenRefresh(nil)
		}
		if err := c.saveToken(current); err != nil {
			return nil, fmt.Errorf("failed to persist refreshed token: %w", err)
		}
	}

	return oauth2.NewClient(ctx, oauth2.ReuseTokenSource(current, ts)), nil
}

// saveToken writes the token file with access restricted to the owning user.
func (c Config) saveToken(token *oauth2.Token) error {
	f, err := os.OpenFile(c.tokenPath(), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache oauth token: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(token); err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}

	return nil
}
