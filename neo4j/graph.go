package neo4j

import (
	"context"
	"sync"
	"time"

	"github.com/kroma-labs/sentinel-neo4j/neo4j/driver"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.opentelemetry.io/otel/trace"
)

// Compile-time interface checks.
var (
	_ driver.Conn   = (*Graph)(nil)
	_ driver.Pinger = (*Graph)(nil)
)

// Graph wraps a driver.Conn with OpenTelemetry instrumentation.
// Every call is forwarded to the wrapped connection; its values and errors
// are returned unchanged.
//
// A Graph is safe for concurrent use if the wrapped connection is.
type Graph struct {
	conn driver.Conn
	cfg  *config
	info driver.ConnectionInfo

	closeOnce sync.Once
}

// newGraph creates an instrumented connection and counts it as active.
func newGraph(ctx context.Context, conn driver.Conn, cfg *config) *Graph {
	g := &Graph{
		conn: conn,
		cfg:  cfg,
		info: resolveConnectionInfo(ctx, conn, cfg),
	}
	cfg.Metrics.recordConnectionDelta(ctx, 1)
	return g
}

// defaultConnectionInfo returns connection metadata from configuration
// alone.
func defaultConnectionInfo(cfg *config) driver.ConnectionInfo {
	info := driver.ConnectionInfo{
		Database:      cfg.Database,
		ServerAddress: cfg.ServerAddress,
		ServerPort:    cfg.ServerPort,
		Version:       versionUnknown,
	}
	if info.Database == "" {
		info.Database = defaultDatabase
	}
	return info
}

// resolveConnectionInfo starts from configured defaults and overlays
// whatever the connection reports about itself. Lookup failures are logged
// and never fail the caller.
func resolveConnectionInfo(ctx context.Context, conn driver.Conn, cfg *config) driver.ConnectionInfo {
	info := defaultConnectionInfo(cfg)

	provider, ok := conn.(driver.InfoProvider)
	if !ok {
		return info
	}

	got, err := provider.ConnectionInfo(ctx)
	if err != nil {
		cfg.Logger.Warn().Err(err).Msg("failed to resolve neo4j connection info, using defaults")
	}

	if got.Database != "" && cfg.Database == "" {
		info.Database = got.Database
	}
	if got.ServerAddress != "" {
		info.ServerAddress = got.ServerAddress
	}
	if got.ServerPort > 0 {
		info.ServerPort = got.ServerPort
	}
	if got.Version != "" {
		info.Version = got.Version
	}

	return info
}

// ConnectionInfo returns the connection metadata resolved at construction.
func (g *Graph) ConnectionInfo() driver.ConnectionInfo {
	return g.info
}

// Unwrap returns the wrapped connection.
func (g *Graph) Unwrap() driver.Conn {
	return g.conn
}

// Execute implements driver.Conn.
func (g *Graph) Execute(ctx context.Context, cypher string, params map[string]any) (*neo4j.EagerResult, error) {
	return traceQuery(ctx, g.cfg, g.queryCall(spanExecute, cypher, ""),
		func(ctx context.Context) (*neo4j.EagerResult, error) {
			return g.conn.Execute(ctx, cypher, params)
		},
	)
}

// ExecuteOn implements driver.Conn.
func (g *Graph) ExecuteOn(
	ctx context.Context,
	database, cypher string,
	params map[string]any,
) (*neo4j.EagerResult, error) {
	return traceQuery(ctx, g.cfg, g.queryCall(spanExecute, cypher, database),
		func(ctx context.Context) (*neo4j.EagerResult, error) {
			return g.conn.ExecuteOn(ctx, database, cypher, params)
		},
	)
}

// Run implements driver.Conn.
func (g *Graph) Run(ctx context.Context, cypher string, params map[string]any) (neo4j.ResultSummary, error) {
	return traceQuery(ctx, g.cfg, g.queryCall(spanRun, cypher, ""),
		func(ctx context.Context) (neo4j.ResultSummary, error) {
			return g.conn.Run(ctx, cypher, params)
		},
	)
}

// RunOn implements driver.Conn.
func (g *Graph) RunOn(
	ctx context.Context,
	database, cypher string,
	params map[string]any,
) (neo4j.ResultSummary, error) {
	return traceQuery(ctx, g.cfg, g.queryCall(spanRun, cypher, database),
		func(ctx context.Context) (neo4j.ResultSummary, error) {
			return g.conn.RunOn(ctx, database, cypher, params)
		},
	)
}

// BeginTx implements driver.Conn. The returned driver.Tx is a *Transaction
// whose span stays open until Commit or Rollback.
//
// The transaction runs on the Graph's database. Unlike ExecuteOn and RunOn
// there is no per-call database override.
func (g *Graph) BeginTx(ctx context.Context) (driver.Tx, error) {
	database := g.database("")
	start := time.Now()

	txCtx, span := g.cfg.Tracer.Start(ctx, spanTransaction,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(g.cfg.baseAttributes(g.info, database)...),
	)

	tx, err := g.conn.BeginTx(txCtx)
	if err != nil {
		errInfo := g.cfg.recordSpanError(span, spanTransaction, err)
		span.End()
		g.cfg.Metrics.recordError(ctx, errInfo.Type, operationBegin, database)
		return nil, err
	}

	g.cfg.Metrics.recordTransactionStart(ctx, database)
	return newTransaction(tx, g.cfg, g.info, database, span, start), nil
}

// Ping implements driver.Pinger. A wrapped connection that cannot ping is
// treated as reachable.
func (g *Graph) Ping(ctx context.Context) error {
	database := g.database("")

	ctx, span := g.cfg.Tracer.Start(ctx, spanPing,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(g.cfg.baseAttributes(g.info, database)...),
	)

	var err error
	if pinger, ok := g.conn.(driver.Pinger); ok {
		err = pinger.Ping(ctx)
	}

	if err != nil {
		errInfo := g.cfg.recordSpanError(span, spanPing, err)
		span.End()
		g.cfg.Metrics.recordError(ctx, errInfo.Type, operationPing, database)
		return err
	}
	span.End()

	return nil
}

// Close implements driver.Conn. The wrapped connection is closed on every
// call; the active connection count drops only once.
func (g *Graph) Close(ctx context.Context) error {
	err := g.conn.Close(ctx)
	g.closeOnce.Do(func() {
		g.cfg.Metrics.recordConnectionDelta(ctx, -1)
	})
	return err
}

// database returns the database a call runs against, for telemetry only.
func (g *Graph) database(override string) string {
	if override != "" {
		return override
	}
	return g.info.Database
}

func (g *Graph) queryCall(name, cypher, database string) queryCall {
	return queryCall{
		name:     name,
		cypher:   cypher,
		database: g.database(database),
		info:     g.info,
	}
}
