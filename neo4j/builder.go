package neo4j

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/kroma-labs/sentinel-neo4j/neo4j/driver"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/auth"
	neo4jconfig "github.com/neo4j/neo4j-go-driver/v5/neo4j/config"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// dialFunc produces the connection a Builder instruments.
type dialFunc func(ctx context.Context, cfg *config) (driver.Conn, error)

// Builder assembles an instrumented Graph.
//
// Builder is a value: every With method returns a new Builder and leaves the
// receiver untouched, so a partially configured Builder can be shared and
// extended safely.
//
// Example:
//
//	base := sentinelneo4j.NewBuilder("neo4j://localhost:7687", neo4j.BasicAuth("neo4j", "secret", "")).
//	    WithServiceName("order-service").
//	    WithMetrics(mp)
//
//	graph, err := base.WithDatabase("orders").Build(ctx)
type Builder struct {
	opts   []Option
	dial   dialFunc
	verify bool
}

// NewBuilder returns a Builder that connects to target through the official
// Neo4j driver. Build verifies connectivity before returning.
func NewBuilder(target string, token auth.TokenManager) Builder {
	return Builder{
		dial: func(_ context.Context, cfg *config) (driver.Conn, error) {
			drv, err := neo4j.NewDriverWithContext(target, token, cfg.DriverConfigurers...)
			if err != nil {
				return nil, err
			}
			return driver.NewAdapter(drv, cfg.Database), nil
		},
		verify: true,
	}
}

// NewTelemetryBuilder returns a Builder that instruments an existing
// connection. Build does not verify connectivity.
func NewTelemetryBuilder(conn driver.Conn) Builder {
	return Builder{
		dial: func(context.Context, *config) (driver.Conn, error) {
			if conn == nil {
				return nil, fmt.Errorf("%w: nil connection", ErrInvalidConfig)
			}
			return conn, nil
		},
	}
}

// with returns a copy of b with opt appended to a fresh option list.
func (b Builder) with(opt Option) Builder {
	opts := make([]Option, len(b.opts), len(b.opts)+1)
	copy(opts, b.opts)
	b.opts = append(opts, opt)
	return b
}

// WithOptions appends functional options.
func (b Builder) WithOptions(opts ...Option) Builder {
	for _, opt := range opts {
		b = b.with(opt)
	}
	return b
}

// WithTracing turns span creation on or off.
func (b Builder) WithTracing(enabled bool) Builder {
	return b.with(WithTracing(enabled))
}

// WithTracerProvider sets the tracer provider.
func (b Builder) WithTracerProvider(tp trace.TracerProvider) Builder {
	return b.with(WithTracerProvider(tp))
}

// WithMetrics enables metrics using mp.
func (b Builder) WithMetrics(mp metric.MeterProvider) Builder {
	return b.with(WithMeterProvider(mp))
}

// WithServiceName sets the "service.name" span attribute.
func (b Builder) WithServiceName(name string) Builder {
	return b.with(WithServiceName(name))
}

// WithServerAddress sets the fallback server address reported on spans.
func (b Builder) WithServerAddress(address string) Builder {
	return b.with(WithServerAddress(address))
}

// WithServerPort sets the fallback server port reported on spans.
func (b Builder) WithServerPort(port int) Builder {
	return b.with(WithServerPort(port))
}

// WithStatementRecording adds the Cypher text to spans.
func (b Builder) WithStatementRecording(enabled bool) Builder {
	return b.with(WithStatementRecording(enabled))
}

// WithMaxStatementLength caps the recorded statement length in bytes.
func (b Builder) WithMaxStatementLength(n int) Builder {
	return b.with(WithMaxStatementLength(n))
}

// WithDatabase selects the database queries run against.
func (b Builder) WithDatabase(name string) Builder {
	return b.with(WithDatabase(name))
}

// WithQuerySanitizer sets the function applied to recorded statements.
func (b Builder) WithQuerySanitizer(fn func(string) string) Builder {
	return b.with(WithQuerySanitizer(fn))
}

// WithRelationshipTypes makes the classifier extract relationship types.
func (b Builder) WithRelationshipTypes() Builder {
	return b.with(WithRelationshipTypes())
}

// WithLogger sets the logger used for telemetry warnings.
func (b Builder) WithLogger(logger zerolog.Logger) Builder {
	return b.with(WithLogger(logger))
}

// WithConnectRetry retries connectivity verification.
func (b Builder) WithConnectRetry(maxTries uint, interval time.Duration) Builder {
	return b.with(WithConnectRetry(maxTries, interval))
}

// WithDriverConfig passes configurers to the Neo4j driver.
func (b Builder) WithDriverConfig(configurers ...func(*neo4jconfig.Config)) Builder {
	return b.with(WithDriverConfig(configurers...))
}

// Build validates the configuration, obtains the connection, verifies it
// when the Builder came from NewBuilder, and returns the instrumented Graph.
//
// Errors from the Neo4j driver are returned unchanged. If verification
// fails the connection is closed before returning.
func (b Builder) Build(ctx context.Context) (*Graph, error) {
	cfg := newConfig(b.opts...)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if b.dial == nil {
		return nil, fmt.Errorf("%w: builder has no connection source", ErrInvalidConfig)
	}

	conn, err := b.dial(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if b.verify {
		if err := verifyConnectivity(ctx, conn, cfg); err != nil {
			if cerr := conn.Close(ctx); cerr != nil {
				cfg.Logger.Warn().Err(cerr).Msg("failed to close neo4j connection after failed verification")
			}
			return nil, err
		}
	}

	return newGraph(ctx, conn, cfg), nil
}

// verifyConnectivity pings conn, retrying with exponential backoff up to
// cfg.ConnectMaxTries attempts. Authentication failures stop immediately.
func verifyConnectivity(ctx context.Context, conn driver.Conn, cfg *config) error {
	pinger, ok := conn.(driver.Pinger)
	if !ok {
		return nil
	}

	b := backoff.NewExponentialBackOff()
	if cfg.ConnectRetryInterval > 0 {
		b.InitialInterval = cfg.ConnectRetryInterval
	}

	attempt := 0
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		err := pinger.Ping(ctx)
		if err != nil && ClassifyError(err).Type == ErrorTypeAuthentication {
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, err
	},
		backoff.WithBackOff(b),
		backoff.WithMaxTries(cfg.ConnectMaxTries),
		backoff.WithNotify(func(err error, next time.Duration) {
			attempt++
			cfg.Logger.Warn().
				Err(err).
				Int("attempt", attempt).
				Dur("next", next).
				Msg("neo4j connectivity check failed, retrying")
		}),
	)

	return err
}
