package instrumentation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProviderDisabled(t *testing.T) {
	provider, err := NewProvider(t.Context(), Config{Enabled: false})
	require.NoError(t, err)

	assert.False(t, provider.Enabled())
	require.NotNil(t, provider.Metrics())
	assert.NotNil(t, provider.Tracer("test"))
	assert.NoError(t, provider.Shutdown(t.Context()))
}

func TestNewProviderNoExporters(t *testing.T) {
	config := Config{
		ServiceName:       "content-calendar-test",
		ServiceVersion:    "test",
		Enabled:           true,
		MetricsExporter:   ExporterNone,
		TracingExporter:   ExporterNone,
		TraceSamplingRate: 1.0,
	}

	provider, err := NewProvider(t.Context(), config)
	require.NoError(t, err)
	defer provider.Shutdown(t.Context())

	assert.True(t, provider.Enabled())
	assert.NotNil(t, provider.Metrics())
	assert.NotNil(t, provider.Tracer("test"))
}

func TestNewProviderStdoutExporters(t *testing.T) {
	config := Config{
		ServiceName:       "content-calendar-test",
		ServiceVersion:    "test",
		Enabled:           true,
		MetricsExporter:   ExporterStdout,
		TracingExporter:   ExporterStdout,
		TraceSamplingRate: 1.0,
	}

	provider, err := NewProvider(t.Context(), config)
	require.NoError(t, err)

	assert.True(t, provider.Enabled())
	assert.NoError(t, provider.Shutdown(t.Context()))
}

func TestNewProviderUnsupportedExporter(t *testing.T) {
	config := Config{
		ServiceName:     "content-calendar-test",
		Enabled:         true,
		MetricsExporter: "carrier-pigeon",
	}

	_, err := NewProvider(t.Context(), config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported metrics exporter")
}

func TestNoOpMetricsAreSafe(t *testing.T) {
	var m *Metrics
	ctx := t.Context()

	// Nil receiver and zero-value recorders must not panic.
	m.RecordAPICall(ctx, "spreadsheets.create", "success", time.Second)
	m.RecordAPIRetry(ctx, "values.update")
	m.RecordOAuthTokenRefresh(ctx, "success")
	m.RecordToolInvocation(ctx, "calendar_create", "success", time.Second)

	zero := &Metrics{}
	zero.RecordAPICall(ctx, "spreadsheets.create", "success", time.Second)
	zero.RecordAPIRetry(ctx, "values.update")
	zero.RecordOAuthTokenRefresh(ctx, "failure")
	zero.RecordToolInvocation(ctx, "calendar_create", "error", time.Second)
}

func TestRecordedMetricsWithRealMeter(t *testing.T) {
	config := Config{
		ServiceName:     "content-calendar-test",
		Enabled:         true,
		MetricsExporter: ExporterNone,
		TracingExporter: ExporterNone,
	}

	provider, err := NewProvider(t.Context(), config)
	require.NoError(t, err)
	defer provider.Shutdown(t.Context())

	m := provider.Metrics()
	m.RecordAPICall(t.Context(), "spreadsheets.create", "success", 120*time.Millisecond)
	m.RecordAPIRetry(t.Context(), "values.update")
	m.RecordToolInvocation(t.Context(), "calendar_create", "success", time.Second)
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "content-calendar", config.ServiceName)
	assert.True(t, config.Enabled)
	assert.Equal(t, ExporterNone, config.MetricsExporter)
	assert.Equal(t, ExporterNone, config.TracingExporter)
	assert.Equal(t, 1.0, config.TraceSamplingRate)
}

func TestDefaultConfigEnvOverrides(t *testing.T) {
	t.Setenv("OTEL_SERVICE_NAME", "custom-name")
	t.Setenv("INSTRUMENTATION_ENABLED", "false")
	t.Setenv("METRICS_EXPORTER", "prometheus")
	t.Setenv("TRACE_SAMPLING_RATE", "0.5")

	config := DefaultConfig()

	assert.Equal(t, "custom-name", config.ServiceName)
	assert.False(t, config.Enabled)
	assert.Equal(t, ExporterPrometheus, config.MetricsExporter)
	assert.Equal(t, 0.5, config.TraceSamplingRate)
}

func TestDefaultConfigInvalidEnvValues(t *testing.T) {
	t.Setenv("INSTRUMENTATION_ENABLED", "not-a-bool")
	t.Setenv("TRACE_SAMPLING_RATE", "2.5")

	config := DefaultConfig()

	assert.True(t, config.Enabled)
	assert.Equal(t, 1.0, config.TraceSamplingRate)
}
