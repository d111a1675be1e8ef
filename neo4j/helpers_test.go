package neo4j

import (
	"context"
	"testing"

	"github.com/kroma-labs/sentinel-neo4j/neo4j/mocks"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// testTelemetry bundles an in-memory span exporter and a manual metric
// reader with the options that route a config to them.
type testTelemetry struct {
	exporter *tracetest.InMemoryExporter
	reader   *sdkmetric.ManualReader
	opts     []Option
}

func newTestTelemetry(t *testing.T) *testTelemetry {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		_ = mp.Shutdown(context.Background())
	})

	return &testTelemetry{
		exporter: exporter,
		reader:   reader,
		opts:     []Option{WithTracerProvider(tp), WithMeterProvider(mp)},
	}
}

// with returns the telemetry options followed by opts.
func (tel *testTelemetry) with(opts ...Option) []Option {
	all := make([]Option, 0, len(tel.opts)+len(opts))
	all = append(all, tel.opts...)
	return append(all, opts...)
}

func (tel *testTelemetry) spans() tracetest.SpanStubs {
	return tel.exporter.GetSpans()
}

func (tel *testTelemetry) collect(t *testing.T) map[string]metricdata.Metrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, tel.reader.Collect(context.Background(), &rm))

	out := make(map[string]metricdata.Metrics)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

// sum returns the total of an int64 counter over data points carrying all
// of attrs. Missing metrics count as zero.
func (tel *testTelemetry) sum(t *testing.T, name string, attrs ...attribute.KeyValue) int64 {
	t.Helper()

	m, ok := tel.collect(t)[name]
	if !ok {
		return 0
	}
	data, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "metric %s is not an int64 sum", name)

	var total int64
	for _, dp := range data.DataPoints {
		if hasAttributes(dp.Attributes, attrs) {
			total += dp.Value
		}
	}
	return total
}

// histogramCount returns the number of observations of a float64 histogram
// over data points carrying all of attrs.
func (tel *testTelemetry) histogramCount(t *testing.T, name string, attrs ...attribute.KeyValue) uint64 {
	t.Helper()

	m, ok := tel.collect(t)[name]
	if !ok {
		return 0
	}
	data, ok := m.Data.(metricdata.Histogram[float64])
	require.True(t, ok, "metric %s is not a float64 histogram", name)

	var total uint64
	for _, dp := range data.DataPoints {
		if hasAttributes(dp.Attributes, attrs) {
			total += dp.Count
		}
	}
	return total
}

func hasAttributes(set attribute.Set, attrs []attribute.KeyValue) bool {
	for _, kv := range attrs {
		v, ok := set.Value(kv.Key)
		if !ok || v.Emit() != kv.Value.Emit() {
			return false
		}
	}
	return true
}

// spanByName returns the first span called name.
func spanByName(t *testing.T, spans tracetest.SpanStubs, name string) tracetest.SpanStub {
	t.Helper()

	for _, s := range spans {
		if s.Name == name {
			return s
		}
	}
	require.Failf(t, "span not found", "no span named %q", name)
	return tracetest.SpanStub{}
}

// spanAttr returns the value of key on span.
func spanAttr(span tracetest.SpanStub, key string) (attribute.Value, bool) {
	for _, kv := range span.Attributes {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

// pingableConn is a connection that also verifies connectivity.
type pingableConn struct {
	*mocks.Conn
	*mocks.Pinger
}

// describedConn is a connection that also reports server metadata.
type describedConn struct {
	*mocks.Conn
	*mocks.InfoProvider
}
