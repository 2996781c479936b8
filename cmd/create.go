package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/cadentdev/content-calendar-template/internal/calendar"
	"github.com/cadentdev/content-calendar-template/internal/google"
	"github.com/cadentdev/content-calendar-template/internal/instrumentation"
	"github.com/cadentdev/content-calendar-template/internal/logging"
	"github.com/cadentdev/content-calendar-template/internal/sheets"
	"github.com/cadentdev/content-calendar-template/internal/validate"
)

func newCreateCmd() *cobra.Command {
	var (
		clientName string
		weeks      string
		share      bool
		noInput    bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a content calendar spreadsheet",
		Long: `Create a new content calendar in Google Sheets for a client.

Prompts for the client name and planning horizon unless they are given as
flags. The client name is stripped of filesystem-hostile characters and
truncated to 50 characters; the horizon is clamped to 1-52 weeks. Every run
creates a fresh spreadsheet.

On first use the command walks through the Google OAuth flow and caches the
token next to the credentials file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			config := googleConfig()

			if err := config.Validate(); err != nil {
				return err
			}

			if !noInput {
				var err error
				if !cmd.Flags().Changed("client") {
					clientName, err = promptClientName()
					if err != nil {
						return err
					}
				}
				if !cmd.Flags().Changed("weeks") {
					weeks, err = promptWeeks()
					if err != nil {
						return err
					}
				}
			}

			req := calendar.Request{
				ClientName:   validate.ClientName(clientName),
				HorizonWeeks: validate.Horizon(weeks),
			}

			if err := ensureToken(ctx, config, noInput); err != nil {
				return err
			}

			instrConfig := instrumentation.DefaultConfig()
			instrConfig.ServiceVersion = version

			provider, err := instrumentation.NewProvider(ctx, instrConfig)
			if err != nil {
				return fmt.Errorf("failed to create instrumentation provider: %w", err)
			}
			defer func() {
				if err := provider.Shutdown(ctx); err != nil {
					slog.Warn("instrumentation shutdown failed", logging.Err(err))
				}
			}()

			client, err := sheets.NewClient(ctx, config, slog.Default(), provider)
			if err != nil {
				return err
			}

			generator := calendar.New(client, slog.Default())

			result, err := generator.Create(ctx, req)
			if err != nil {
				return err
			}

			if share {
				if err := generator.Share(ctx, result.Spreadsheet); err != nil {
					slog.Warn("could not share spreadsheet", logging.Spreadsheet(result.Spreadsheet.ID), logging.Err(err))
				}
			}

			fmt.Printf("Created %q covering %d weeks.\n", result.Title, req.HorizonWeeks)
			fmt.Printf("URL: %s\n", result.Spreadsheet.URL)
			return nil
		},
	}

	cmd.Flags().StringVar(&clientName, "client", "", "Client name used in the spreadsheet title (default: prompt, falling back to 'Sample Client')")
	cmd.Flags().StringVar(&weeks, "weeks", "", "Planning horizon in weeks, clamped to 1-52 (default: prompt, falling back to 4)")
	cmd.Flags().BoolVar(&share, "share", false, "Also share the spreadsheet with anyone who has the link")
	cmd.Flags().BoolVar(&noInput, "no-input", false, "Never prompt; use flag values and defaults")

	return cmd
}

func promptClientName() (string, error) {
	prompt := promptui.Prompt{
		Label:   "Client name",
		Default: validate.FallbackClientName,
	}

	name, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("client name prompt aborted: %w", err)
	}
	return name, nil
}

func promptWeeks() (string, error) {
	prompt := promptui.Prompt{
		Label:   "Planning horizon (weeks)",
		Default: fmt.Sprintf("%d", validate.DefaultHorizonWeeks),
	}

	weeks, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("planning horizon prompt aborted: %w", err)
	}
	return weeks, nil
}

// ensureToken runs the interactive OAuth flow when no token is cached yet.
// With prompting disabled a missing token is an error pointing at the auth
// command.
func ensureToken(ctx context.Context, config google.Config, noInput bool) error {
	if config.HasToken() {
		return nil
	}

	if noInput {
		return fmt.Errorf("no cached OAuth token in %s; run 'content-calendar auth' first", workdir)
	}

	return runAuthFlow(ctx, config)
}
