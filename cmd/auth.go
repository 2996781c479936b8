package cmd

import (
	"context"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/cadentdev/content-calendar-template/internal/google"
)

func newAuthCmd() *cobra.Command {
	var authCode string

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authorize Google Sheets and Drive access",
		Long: `Run the Google OAuth flow and cache the resulting token.

Prints the authorization URL, waits for the authorization code and saves the
token next to the credentials file. The cached token is refreshed
automatically afterwards; re-run this command only if access was revoked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := googleConfig()

			if authCode != "" {
				if err := config.SaveAuthCode(cmd.Context(), authCode); err != nil {
					return err
				}
				fmt.Println("Authorization successful. Token saved.")
				return nil
			}

			return runAuthFlow(cmd.Context(), config)
		},
	}

	cmd.Flags().StringVar(&authCode, "code", "", "Authorization code from Google OAuth; skips the interactive prompt")

	cmd.AddCommand(newAuthStatusCmd())

	return cmd
}

func newAuthStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether a cached OAuth token exists",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := googleConfig()

			if config.HasToken() {
				fmt.Println("Authorized: a cached OAuth token is present.")
				return nil
			}

			fmt.Println("Not authorized: no cached OAuth token. Run 'content-calendar auth'.")
			return nil
		},
	}
}

// runAuthFlow prints the authorization URL, prompts for the code and caches
// the exchanged token. Shared by the auth command and first-run create.
func runAuthFlow(ctx context.Context, config google.Config) error {
	authURL, err := config.AuthURL()
	if err != nil {
		return err
	}

	fmt.Println("Visit this URL to authorize Google Sheets and Drive access:")
	fmt.Println()
	fmt.Printf("  %s\n", authURL)
	fmt.Println()

	prompt := promptui.Prompt{
		Label: "Authorization code",
		Validate: func(input string) error {
			if input == "" {
				return fmt.Errorf("authorization code must not be empty")
			}
			return nil
		},
	}

	authCode, err := prompt.Run()
	if err != nil {
		return fmt.Errorf("authorization code prompt aborted: %w", err)
	}

	if err := config.SaveAuthCode(ctx, authCode); err != nil {
		return err
	}

	fmt.Println("Authorization successful. Token saved.")
	return nil
}
