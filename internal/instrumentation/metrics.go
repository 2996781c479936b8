package instrumentation

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics provides application-level metrics recording. A zero-value Metrics
// is a no-op recorder, so callers never need to nil-check.
type Metrics struct {
	// Sheets API metrics
	apiCallsTotal   metric.Int64Counter
	apiCallDuration metric.Float64Histogram
	apiRetriesTotal metric.Int64Counter

	// OAuth metrics
	oauthTokenRefreshTotal metric.Int64Counter

	// MCP tool metrics
	toolInvocationsTotal metric.Int64Counter
	toolDuration         metric.Float64Histogram
}

// NewMetrics creates a Metrics instance with all instruments initialized.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	m.apiCallsTotal, err = meter.Int64Counter(
		"sheets_api_calls_total",
		metric.WithDescription("Total number of Google Sheets API calls"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets_api_calls_total counter: %w", err)
	}

	m.apiCallDuration, err = meter.Float64Histogram(
		"sheets_api_call_duration_seconds",
		metric.WithDescription("Google Sheets API call duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets_api_call_duration_seconds histogram: %w", err)
	}

	m.apiRetriesTotal, err = meter.Int64Counter(
		"sheets_api_retries_total",
		metric.WithDescription("Total number of retried Google Sheets API calls"),
		metric.WithUnit("{retry}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets_api_retries_total counter: %w", err)
	}

	m.oauthTokenRefreshTotal, err = meter.Int64Counter(
		"oauth_token_refresh_total",
		metric.WithDescription("Total number of OAuth token refresh attempts"),
		metric.WithUnit("{attempt}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create oauth_token_refresh_total counter: %w", err)
	}

	m.toolInvocationsTotal, err = meter.Int64Counter(
		"mcp_tool_invocations_total",
		metric.WithDescription("Total number of MCP tool invocations"),
		metric.WithUnit("{invocation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mcp_tool_invocations_total counter: %w", err)
	}

	m.toolDuration, err = meter.Float64Histogram(
		"mcp_tool_duration_seconds",
		metric.WithDescription("MCP tool execution duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mcp_tool_duration_seconds histogram: %w", err)
	}

	return m, nil
}

// RecordAPICall records one Sheets API call with its operation name, final
// status and duration.
func (m *Metrics) RecordAPICall(ctx context.Context, operation, status string, duration time.Duration) {
	if m == nil || m.apiCallsTotal == nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("status", status),
	)
	m.apiCallsTotal.Add(ctx, 1, attrs)
	m.apiCallDuration.Record(ctx, duration.Seconds(), attrs)
}

// RecordAPIRetry records a retried API call attempt.
func (m *Metrics) RecordAPIRetry(ctx context.Context, operation string) {
	if m == nil || m.apiRetriesTotal == nil {
		return
	}

	m.apiRetriesTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
	))
}

// RecordOAuthTokenRefresh records an OAuth token refresh attempt.
// Result should be "success" or "failure".
func (m *Metrics) RecordOAuthTokenRefresh(ctx context.Context, result string) {
	if m == nil || m.oauthTokenRefreshTotal == nil {
		return
	}

	m.oauthTokenRefreshTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("result", result),
	))
}

// RecordToolInvocation records an MCP tool invocation with status and duration.
func (m *Metrics) RecordToolInvocation(ctx context.Context, toolName, status string, duration time.Duration) {
	if m == nil || m.toolInvocationsTotal == nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("tool", toolName),
		attribute.String("status", status),
	)
	m.toolInvocationsTotal.Add(ctx, 1, attrs)
	m.toolDuration.Record(ctx, duration.Seconds(), attrs)
}
