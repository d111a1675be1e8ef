package neo4j

import (
	"context"
	"time"

	"github.com/kroma-labs/sentinel-neo4j/neo4j/driver"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span names.
const (
	spanExecute            = "neo4j.execute"
	spanRun                = "neo4j.run"
	spanPing               = "neo4j.ping"
	spanTransaction        = "neo4j.transaction"
	spanTransactionExecute = "neo4j.transaction.execute"
	spanTransactionRun     = "neo4j.transaction.run"
	spanTransactionBatch   = "neo4j.transaction.run_queries"
)

// Operation names used for calls that carry no Cypher.
const (
	operationPing     = "PING"
	operationBegin    = "BEGIN"
	operationCommit   = "COMMIT"
	operationRollback = "ROLLBACK"
)

// Attribute keys.
const (
	attrDBSystem         = "db.system"
	attrOtelKind         = "otel.kind"
	attrServiceName      = "service.name"
	attrDBName           = "db.name"
	attrServerAddress    = "server.address"
	attrServerPort       = "server.port"
	attrDBVersion        = "db.version"
	attrOperationName    = "db.operation.name"
	attrCollectionName   = "db.collection.name"
	attrQuerySummary     = "db.query.summary"
	attrQueryText        = "db.query.text"
	attrErrorType        = "error.type"
	attrResponseStatus   = "db.response.status_code"
	attrBatchSize        = "db.operation.batch.size"
	attrTxOutcome        = "neo4j.transaction.outcome"
	attrTxDurationMillis = "neo4j.transaction.duration_ms"
)

const (
	otelKindClient = "client"
	versionUnknown = "unknown"
)

// baseAttributes returns the attributes shared by every span of a connection.
func (cfg *config) baseAttributes(info driver.ConnectionInfo, database string) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, 7)
	attrs = append(attrs,
		attribute.String(attrDBSystem, dbSystem),
		attribute.String(attrOtelKind, otelKindClient),
		attribute.String(attrServiceName, cfg.ServiceName),
	)

	if database != "" {
		attrs = append(attrs, attribute.String(attrDBName, database))
	}
	if info.ServerAddress != "" {
		attrs = append(attrs, attribute.String(attrServerAddress, info.ServerAddress))
	}
	if info.ServerPort > 0 {
		attrs = append(attrs, attribute.Int(attrServerPort, info.ServerPort))
	}
	if info.Version != "" && info.Version != versionUnknown {
		attrs = append(attrs, attribute.String(attrDBVersion, info.Version))
	}

	return attrs
}

// queryAttributes returns base attributes plus what the classifier inferred,
// and the statement when recording is enabled. An unrecognized operation
// leaves "db.operation.name" unset; metrics still label it "unknown".
func (cfg *config) queryAttributes(
	info driver.ConnectionInfo,
	database, cypher string,
	q QueryAttributes,
) []attribute.KeyValue {
	attrs := cfg.baseAttributes(info, database)

	if q.Operation != OperationUnknown {
		attrs = append(attrs, attribute.String(attrOperationName, q.Operation))
	}
	if c := q.Collection(); c != "" {
		attrs = append(attrs, attribute.String(attrCollectionName, c))
	}
	if s := q.Summary(); s != "" {
		attrs = append(attrs, attribute.String(attrQuerySummary, s))
	}
	if stmt := cfg.statement(cypher); stmt != "" {
		attrs = append(attrs, attribute.String(attrQueryText, stmt))
	}

	return attrs
}

// statement returns the text to record for cypher, or "" when statements
// are not recorded.
func (cfg *config) statement(cypher string) string {
	if !cfg.RecordStatement || cfg.MaxStatementLength == 0 {
		return ""
	}
	if cfg.QuerySanitizer != nil {
		cypher = cfg.QuerySanitizer(cypher)
	}
	return truncateStatement(cypher, cfg.MaxStatementLength)
}

// recordSpanError marks span as failed. The status message is the error
// type, never the raw error text.
func (cfg *config) recordSpanError(span trace.Span, name string, err error) ErrorInfo {
	info := ClassifyError(err)

	span.RecordError(err)
	span.SetStatus(codes.Error, info.Type)
	span.SetAttributes(attribute.String(attrErrorType, info.Type))
	if info.StatusCode != "" {
		span.SetAttributes(attribute.String(attrResponseStatus, info.StatusCode))
	}

	cfg.Logger.Debug().
		Err(err).
		Str("span", name).
		Str("error_type", info.Type).
		Msg("neo4j operation failed")

	return info
}

// queryCall describes one traced query.
type queryCall struct {
	name     string
	cypher   string
	database string
	info     driver.ConnectionInfo
}

// traceQuery opens a client span around fn, then records query metrics.
// The value and error from fn are returned unchanged.
func traceQuery[T any](
	ctx context.Context,
	cfg *config,
	call queryCall,
	fn func(ctx context.Context) (T, error),
) (T, error) {
	q := Classify(call.cypher, cfg.IncludeRelationshipTypes)

	start := time.Now()
	ctx, span := cfg.Tracer.Start(ctx, call.name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(cfg.queryAttributes(call.info, call.database, call.cypher, q)...),
	)

	res, err := fn(ctx)
	duration := time.Since(start)

	if err != nil {
		cfg.recordSpanError(span, call.name, err)
	}
	span.End()

	cfg.Metrics.recordQuery(ctx, duration, q.Operation, call.database, err)

	return res, err
}
