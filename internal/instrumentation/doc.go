// Package instrumentation provides OpenTelemetry metrics and tracing for the
// calendar generator: per-call Sheets API counters and durations, retry
// counts, OAuth refreshes and MCP tool invocations.
//
// Instrumentation is opt-in. The default configuration exports nothing; the
// exporters (prometheus, otlp, stdout) are selected via environment
// variables. A disabled provider degrades every recorder to a no-op.
package instrumentation
