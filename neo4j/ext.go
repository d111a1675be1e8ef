package neo4j

import (
	"context"
	"fmt"

	"github.com/kroma-labs/sentinel-neo4j/neo4j/driver"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/auth"
)

// Open connects to target through the official Neo4j driver, verifies
// connectivity and returns an instrumented Graph.
//
// Example:
//
//	graph, err := sentinelneo4j.Open(ctx, "neo4j://localhost:7687",
//	    neo4j.BasicAuth("neo4j", "secret", ""),
//	    sentinelneo4j.WithDatabase("movies"),
//	    sentinelneo4j.WithMeterProvider(mp),
//	)
//	if err != nil {
//	    return err
//	}
//	defer graph.Close(ctx)
func Open(ctx context.Context, target string, token auth.TokenManager, opts ...Option) (*Graph, error) {
	return NewBuilder(target, token).WithOptions(opts...).Build(ctx)
}

// Wrap instruments an existing connection. Connectivity is not verified.
//
// Example:
//
//	graph, err := sentinelneo4j.Wrap(ctx, conn,
//	    sentinelneo4j.WithServiceName("order-service"),
//	)
func Wrap(ctx context.Context, conn driver.Conn, opts ...Option) (*Graph, error) {
	return NewTelemetryBuilder(conn).WithOptions(opts...).Build(ctx)
}

// WrapDriver instruments an existing neo4j.DriverWithContext. The caller
// keeps ownership of the driver until Graph.Close is called.
//
// Example:
//
//	drv, _ := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, pass, ""))
//	graph, err := sentinelneo4j.WrapDriver(ctx, drv)
func WrapDriver(ctx context.Context, drv neo4j.DriverWithContext, opts ...Option) (*Graph, error) {
	b := Builder{
		dial: func(_ context.Context, cfg *config) (driver.Conn, error) {
			if drv == nil {
				return nil, fmt.Errorf("%w: nil driver", ErrInvalidConfig)
			}
			return driver.NewAdapter(drv, cfg.Database), nil
		},
	}
	return b.WithOptions(opts...).Build(ctx)
}

// WithTelemetry instruments conn with default settings: tracing through the
// global tracer provider, metrics off.
func WithTelemetry(ctx context.Context, conn driver.Conn) *Graph {
	return newGraph(ctx, conn, newConfig())
}

// ExecuteTraced runs conn.Execute inside a span without building a Graph.
// No connection metadata is looked up and the active connection count is
// left alone.
//
// Example:
//
//	res, err := sentinelneo4j.ExecuteTraced(ctx, conn,
//	    "MATCH (p:Person {name: $name}) RETURN p", map[string]any{"name": "Ada"},
//	)
func ExecuteTraced(
	ctx context.Context,
	conn driver.Conn,
	cypher string,
	params map[string]any,
	opts ...Option,
) (*neo4j.EagerResult, error) {
	cfg := newConfig(opts...)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return traceQuery(ctx, cfg, oneShotCall(cfg, spanExecute, cypher),
		func(ctx context.Context) (*neo4j.EagerResult, error) {
			return conn.Execute(ctx, cypher, params)
		},
	)
}

// RunTraced runs conn.Run inside a span without building a Graph.
func RunTraced(
	ctx context.Context,
	conn driver.Conn,
	cypher string,
	params map[string]any,
	opts ...Option,
) (neo4j.ResultSummary, error) {
	cfg := newConfig(opts...)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return traceQuery(ctx, cfg, oneShotCall(cfg, spanRun, cypher),
		func(ctx context.Context) (neo4j.ResultSummary, error) {
			return conn.Run(ctx, cypher, params)
		},
	)
}

func oneShotCall(cfg *config, name, cypher string) queryCall {
	info := defaultConnectionInfo(cfg)
	return queryCall{
		name:     name,
		cypher:   cypher,
		database: info.Database,
		info:     info,
	}
}
