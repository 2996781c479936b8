package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cadentdev/content-calendar-template/internal/google"
)

// rootCmd represents the base command for the content-calendar application
var rootCmd = &cobra.Command{
	Use:   "content-calendar",
	Short: "Generates content calendar spreadsheets in Google Sheets",
	Long: `content-calendar builds a ready-to-use content calendar in Google Sheets:
a formatted header row, sample posts, weekly planning rows, dropdown
validations for platform, content type and status, and an instructions sheet.

It can run as:
  - A standalone CLI tool (default)
  - An MCP (Model Context Protocol) server for AI assistants`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(debugMode)
	},
}

var (
	workdir         string
	credentialsFile string
	tokenFile       string
	debugMode       bool
)

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "content-calendar version %s\n" .Version}}`)

	// If no subcommand is provided, run the create command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "create")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// googleConfig assembles the OAuth file configuration from the persistent
// flags.
func googleConfig() google.Config {
	return google.Config{
		Workdir:         workdir,
		CredentialsFile: credentialsFile,
		TokenFile:       tokenFile,
	}
}

// setupLogging installs the default text logger on stderr. Stdout stays
// reserved for command output (and for the MCP stdio transport in serve
// mode).
func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func init() {
	defaults := google.DefaultConfig()

	rootCmd.PersistentFlags().StringVar(&workdir, "workdir", defaults.Workdir, "Directory holding the OAuth credential files")
	rootCmd.PersistentFlags().StringVar(&credentialsFile, "credentials", defaults.CredentialsFile, "OAuth client credentials file name (within workdir)")
	rootCmd.PersistentFlags().StringVar(&tokenFile, "tokens", defaults.TokenFile, "Cached OAuth token file name (within workdir)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
}
