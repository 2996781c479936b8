package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/cadentdev/content-calendar-template/internal/instrumentation"
	"github.com/cadentdev/content-calendar-template/internal/logging"
	"github.com/cadentdev/content-calendar-template/internal/server"
	"github.com/cadentdev/content-calendar-template/internal/tools/calendar_tools"
	"github.com/cadentdev/content-calendar-template/internal/tools/google_tools"
)

// MetricsConfig holds configuration for the metrics server
type MetricsConfig struct {
	// Enabled determines whether to start the metrics server (default: false)
	Enabled bool

	// Addr is the address for the metrics server (e.g., ":9090")
	Addr string
}

func newServeCmd() *cobra.Command {
	var (
		metricsEnabled bool
		metricsAddr    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start the Model Context Protocol (MCP) server over stdio, providing the
content calendar tools for AI assistants.

Tools:
  - google_auth_status:   check for a cached OAuth token
  - google_get_auth_url:  get the OAuth authorization URL
  - google_save_auth_code: complete authentication
  - calendar_create:      build a content calendar spreadsheet

Metrics:
  With --metrics, a Prometheus endpoint is served on a separate port so the
  stdio transport stays untouched. Requires METRICS_EXPORTER=prometheus.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(MetricsConfig{Enabled: metricsEnabled, Addr: metricsAddr})
		},
	}

	cmd.Flags().BoolVar(&metricsEnabled, "metrics", false, "Serve Prometheus metrics on a separate port")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", server.DefaultMetricsAddr, "Address for the metrics server")

	return cmd
}

func runServe(metricsConfig MetricsConfig) error {
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Load metrics config from environment if not set via flags
	if !metricsConfig.Enabled && os.Getenv("METRICS_ENABLED") == "true" {
		metricsConfig.Enabled = true
	}
	if addr := os.Getenv("METRICS_ADDR"); addr != "" && metricsConfig.Addr == server.DefaultMetricsAddr {
		metricsConfig.Addr = addr
	}

	instrConfig := instrumentation.DefaultConfig()
	instrConfig.ServiceVersion = version

	provider, err := instrumentation.NewProvider(shutdownCtx, instrConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(shutdownCtx); err != nil {
			slog.Warn("instrumentation shutdown failed", logging.Err(err))
		}
	}()

	var metricsServer *server.MetricsServer
	if metricsConfig.Enabled && provider.Enabled() {
		metricsServer, err = server.NewMetricsServer(server.MetricsServerConfig{
			Addr:                    metricsConfig.Addr,
			InstrumentationProvider: provider,
		})
		if err != nil {
			return fmt.Errorf("failed to create metrics server: %w", err)
		}

		metricsReady := make(chan struct{})
		metricsErr := make(chan error, 1)
		go func() {
			if err := metricsServer.StartWithReadySignal(metricsReady); err != nil && err != http.ErrServerClosed {
				metricsErr <- err
			}
			close(metricsErr)
		}()

		select {
		case <-metricsReady:
		case err := <-metricsErr:
			return fmt.Errorf("metrics server failed to start: %w", err)
		case <-time.After(5 * time.Second):
			return fmt.Errorf("metrics server startup timed out")
		}
	}
	defer func() {
		if metricsServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				slog.Warn("metrics server shutdown failed", logging.Err(err))
			}
		}
	}()

	config := googleConfig()
	if err := config.Validate(); err != nil {
		return err
	}

	mcpSrv := mcpserver.NewMCPServer("content-calendar", version,
		mcpserver.WithToolCapabilities(true),
	)

	if err := google_tools.RegisterGoogleTools(mcpSrv, config); err != nil {
		return fmt.Errorf("failed to register google tools: %w", err)
	}

	deps := calendar_tools.Deps{
		Config:   config,
		Logger:   slog.Default(),
		Provider: provider,
	}
	if err := calendar_tools.RegisterCalendarTools(mcpSrv, deps); err != nil {
		return fmt.Errorf("failed to register calendar tools: %w", err)
	}

	return runStdioServer(mcpSrv)
}

func runStdioServer(mcpSrv *mcpserver.MCPServer) error {
	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := mcpserver.ServeStdio(mcpSrv); err != nil {
			serverDone <- err
		}
	}()

	err := <-serverDone
	if err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	return nil
}
