package neo4j

import (
	"fmt"
	"os"
	"strconv"
	"time"

	neo4jconfig "github.com/neo4j/neo4j-go-driver/v5/neo4j/config"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	// scope is the instrumentation scope name for OpenTelemetry.
	// This identifies the library in traces and metrics.
	scope = "github.com/kroma-labs/sentinel-neo4j/neo4j"

	// dbSystem is the value of the db.system attribute on every span.
	dbSystem = "neo4j"

	// DefaultMaxStatementLength is the default limit for recorded statements.
	DefaultMaxStatementLength = 1024

	// DefaultServiceName is used when no service name is configured and
	// OTEL_SERVICE_NAME is unset.
	DefaultServiceName = "unknown"

	defaultDatabase      = "neo4j"
	defaultServerAddress = "localhost"
	defaultServerPort    = 7687
)

// Environment variables read once when a config is built.
const (
	EnvServiceName   = "OTEL_SERVICE_NAME"
	EnvServerAddress = "NEO4J_SERVER_ADDRESS"
	EnvServerPort    = "NEO4J_SERVER_PORT"
)

// config holds the configuration for instrumentation.
type config struct {
	// TracerProvider is the tracer provider to use.
	// If not set, uses the global provider via otel.GetTracerProvider().
	TracerProvider trace.TracerProvider

	// MeterProvider is the meter provider to use.
	// Metrics are disabled while it is nil.
	MeterProvider metric.MeterProvider

	// Tracer is the tracer instance created from TracerProvider.
	// It is a no-op tracer when tracing is disabled.
	Tracer trace.Tracer

	// Meter is the meter instance created from MeterProvider.
	Meter metric.Meter

	// Metrics holds the metric instruments. Nil when metrics are disabled.
	Metrics *metrics

	// Logger receives warnings about degraded telemetry.
	Logger zerolog.Logger

	// TracingEnabled turns span creation on or off.
	TracingEnabled bool

	// ServiceName is added as the "service.name" attribute on all spans.
	ServiceName string

	// Database is the database queries run against. Empty selects the
	// server default.
	Database string

	// ServerAddress and ServerPort are used when the connection cannot
	// report them itself.
	ServerAddress string
	ServerPort    int

	// serverPortSet is true once WithServerPort ran, so the environment
	// no longer applies.
	serverPortSet bool

	// RecordStatement adds the Cypher text as "db.query.text" on spans.
	RecordStatement bool

	// MaxStatementLength caps the recorded statement in bytes.
	MaxStatementLength int

	// QuerySanitizer is applied to statements before they are recorded.
	QuerySanitizer func(query string) string

	// IncludeRelationshipTypes makes the classifier also collect [:TYPE]
	// patterns.
	IncludeRelationshipTypes bool

	// ConnectMaxTries and ConnectRetryInterval control connectivity
	// verification during Build. One try means no retry.
	ConnectMaxTries      uint
	ConnectRetryInterval time.Duration

	// DriverConfigurers are passed to neo4j.NewDriverWithContext.
	DriverConfigurers []func(*neo4jconfig.Config)

	// err is the first misuse error reported by an option.
	err error
}

// newConfig creates a new config with defaults and applies options.
func newConfig(opts ...Option) *config {
	cfg := &config{
		TracerProvider:     otel.GetTracerProvider(),
		Logger:             zerolog.Nop(),
		TracingEnabled:     true,
		ServiceName:        envOr(EnvServiceName, DefaultServiceName),
		ServerAddress:      envOr(EnvServerAddress, defaultServerAddress),
		ServerPort:         defaultServerPort,
		MaxStatementLength: DefaultMaxStatementLength,
		ConnectMaxTries:    1,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if raw, ok := os.LookupEnv(EnvServerPort); ok && !cfg.serverPortSet {
		port, err := strconv.Atoi(raw)
		if err != nil || port <= 0 || port > 65535 {
			cfg.Logger.Warn().
				Str("variable", EnvServerPort).
				Str("value", raw).
				Int("default", defaultServerPort).
				Msg("invalid server port, using default")
		} else {
			cfg.ServerPort = port
		}
	}

	if cfg.TracingEnabled && cfg.TracerProvider != nil {
		cfg.Tracer = cfg.TracerProvider.Tracer(scope)
	} else {
		cfg.Tracer = noop.NewTracerProvider().Tracer(scope)
	}

	if cfg.MeterProvider != nil {
		cfg.Meter = cfg.MeterProvider.Meter(scope)

		var err error
		cfg.Metrics, err = newMetrics(cfg.Meter)
		if err != nil {
			cfg.Logger.Warn().Err(err).Msg("failed to create metric instruments, metrics disabled")
			cfg.Metrics = nil
		}
	}

	return cfg
}

// validate reports configuration misuse.
func (cfg *config) validate() error {
	if cfg.err != nil {
		return cfg.err
	}
	if cfg.MaxStatementLength < 0 {
		return fmt.Errorf("%w: max statement length must be >= 0, got %d",
			ErrInvalidConfig, cfg.MaxStatementLength)
	}
	if cfg.ConnectMaxTries == 0 {
		return fmt.Errorf("%w: connect max tries must be >= 1", ErrInvalidConfig)
	}
	return nil
}

// setErr records the first misuse error.
func (cfg *config) setErr(err error) {
	if cfg.err == nil {
		cfg.err = err
	}
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// Option configures the instrumentation.
type Option func(*config)

// WithTracing turns span creation on or off. Tracing is on by default.
func WithTracing(enabled bool) Option {
	return func(cfg *config) {
		cfg.TracingEnabled = enabled
	}
}

// WithTracerProvider sets a custom tracer provider.
// If not called, the global provider from otel.GetTracerProvider() is used.
//
// Example:
//
//	tp := sdktrace.NewTracerProvider(...)
//	graph, _ := sentinelneo4j.Open(ctx, uri, auth,
//	    sentinelneo4j.WithTracerProvider(tp),
//	)
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(cfg *config) {
		if tp == nil {
			cfg.setErr(fmt.Errorf("%w: nil tracer provider", ErrInvalidConfig))
			return
		}
		cfg.TracerProvider = tp
	}
}

// WithMeterProvider enables metrics using the given meter provider.
// Metrics are off unless this option is supplied.
//
// Example:
//
//	mp := sdkmetric.NewMeterProvider(...)
//	graph, _ := sentinelneo4j.Open(ctx, uri, auth,
//	    sentinelneo4j.WithMeterProvider(mp),
//	)
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(cfg *config) {
		if mp == nil {
			cfg.setErr(fmt.Errorf("%w: nil meter provider", ErrInvalidConfig))
			return
		}
		cfg.MeterProvider = mp
	}
}

// WithServiceName sets the "service.name" span attribute.
// Defaults to $OTEL_SERVICE_NAME, or "unknown".
func WithServiceName(name string) Option {
	return func(cfg *config) {
		cfg.ServiceName = name
	}
}

// WithDatabase selects the database queries run against and sets the
// "db.name" attribute.
func WithDatabase(name string) Option {
	return func(cfg *config) {
		cfg.Database = name
	}
}

// WithServerAddress overrides the server address reported on spans when the
// connection cannot report it itself.
func WithServerAddress(address string) Option {
	return func(cfg *config) {
		cfg.ServerAddress = address
	}
}

// WithServerPort overrides the server port reported on spans when the
// connection cannot report it itself. It takes precedence over
// $NEO4J_SERVER_PORT. Ports outside 1-65535 are rejected with
// ErrInvalidConfig.
func WithServerPort(port int) Option {
	return func(cfg *config) {
		if port <= 0 || port > 65535 {
			cfg.setErr(fmt.Errorf("%w: server port must be in 1-65535, got %d", ErrInvalidConfig, port))
			return
		}
		cfg.ServerPort = port
		cfg.serverPortSet = true
	}
}

// WithStatementRecording adds the Cypher text to spans as "db.query.text".
// Off by default; statements may contain sensitive data.
//
// Example:
//
//	graph, _ := sentinelneo4j.Open(ctx, uri, auth,
//	    sentinelneo4j.WithStatementRecording(true),
//	    sentinelneo4j.WithQuerySanitizer(sentinelneo4j.DefaultQuerySanitizer),
//	)
func WithStatementRecording(enabled bool) Option {
	return func(cfg *config) {
		cfg.RecordStatement = enabled
	}
}

// WithMaxStatementLength caps the recorded statement length in bytes.
func WithMaxStatementLength(n int) Option {
	return func(cfg *config) {
		cfg.MaxStatementLength = n
	}
}

// WithQuerySanitizer sets a function applied to statements before they are
// recorded. Only relevant with statement recording on.
//
// Example:
//
//	// Query: "MATCH (u:User {email: 'a@b.c'}) RETURN u"
//	// Recorded as: "MATCH (u:User {email: '?'}) RETURN u"
func WithQuerySanitizer(fn func(string) string) Option {
	return func(cfg *config) {
		cfg.QuerySanitizer = fn
	}
}

// WithRelationshipTypes makes the query classifier also extract
// relationship types such as [:KNOWS]. They are appended to the
// "db.query.summary" attribute after node labels.
func WithRelationshipTypes() Option {
	return func(cfg *config) {
		cfg.IncludeRelationshipTypes = true
	}
}

// WithLogger sets the logger used for telemetry warnings.
// Defaults to zerolog.Nop().
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger
	}
}

// WithConnectRetry retries connectivity verification during Build up to
// maxTries attempts with exponential backoff starting at interval.
// Authentication failures are never retried.
//
// Example:
//
//	graph, _ := sentinelneo4j.NewBuilder(uri, auth).
//	    WithConnectRetry(5, 200*time.Millisecond).
//	    Build(ctx)
func WithConnectRetry(maxTries uint, interval time.Duration) Option {
	return func(cfg *config) {
		cfg.ConnectMaxTries = maxTries
		cfg.ConnectRetryInterval = interval
	}
}

// WithDriverConfig passes configurers to neo4j.NewDriverWithContext.
// Ignored when wrapping an existing connection.
func WithDriverConfig(configurers ...func(*neo4jconfig.Config)) Option {
	return func(cfg *config) {
		cfg.DriverConfigurers = append(cfg.DriverConfigurers, configurers...)
	}
}
