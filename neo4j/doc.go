// Package neo4j provides an instrumented Neo4j connection wrapper
// with automatic OpenTelemetry tracing and metrics.
//
// # Features
//
//   - OpenTelemetry tracing with a client span per query
//   - Transaction spans that parent every query run inside them
//   - Metrics for queries, transactions, errors and active connections
//   - Heuristic Cypher classification (MATCH, CREATE, MERGE, DELETE, SET, REMOVE)
//   - Optional statement recording with sanitization and truncation
//   - Values and errors from the Neo4j driver returned unchanged
//
// # Quick Start
//
// Open a connection with instrumentation:
//
//	import (
//	    "github.com/neo4j/neo4j-go-driver/v5/neo4j"
//	    sentinelneo4j "github.com/kroma-labs/sentinel-neo4j/neo4j"
//	)
//
//	graph, err := sentinelneo4j.Open(ctx, "neo4j://localhost:7687",
//	    neo4j.BasicAuth("neo4j", "secret", ""),
//	    sentinelneo4j.WithDatabase("movies"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer graph.Close(ctx)
//
//	res, err := graph.Execute(ctx, "MATCH (p:Person) RETURN p.name AS name", nil)
//
// # Builder
//
// The Builder is an immutable alternative to functional options:
//
//	graph, err := sentinelneo4j.NewBuilder(uri, neo4j.BasicAuth(user, pass, "")).
//	    WithServiceName("order-service").
//	    WithMetrics(meterProvider).
//	    WithConnectRetry(5, 200*time.Millisecond).
//	    Build(ctx)
//
// Existing connections are instrumented with NewTelemetryBuilder, Wrap,
// WrapDriver or WithTelemetry. ExecuteTraced and RunTraced trace a single
// call without holding a Graph.
//
// # Transactions
//
//	tx, err := graph.BeginTx(ctx)
//	if err != nil {
//	    return err
//	}
//	if _, err := tx.Run(ctx, "CREATE (o:Order {id: $id})", params); err != nil {
//	    _ = tx.Rollback(ctx)
//	    return err
//	}
//	return tx.Commit(ctx)
//
// The transaction span stays open until Commit or Rollback. A failed commit
// is reported as a rollback. RunQueries runs a batch under one
// neo4j.transaction.run_queries span and stops at the first error.
// Transactions always use the Graph's database.
//
// # Statement Recording
//
// Statements are not recorded by default. When enabled they are sanitized
// (if a sanitizer is set) and truncated to 1024 bytes:
//
//	graph, _ := sentinelneo4j.Open(ctx, uri, token,
//	    sentinelneo4j.WithStatementRecording(true),
//	    sentinelneo4j.WithQuerySanitizer(sentinelneo4j.DefaultQuerySanitizer),
//	)
//
// # Observability
//
// Traces:
//   - Spans: neo4j.execute, neo4j.run, neo4j.ping, neo4j.transaction,
//     neo4j.transaction.execute, neo4j.transaction.run,
//     neo4j.transaction.run_queries
//   - Attributes: db.system, otel.kind, db.name, server.address, server.port,
//     db.version, db.operation.name, db.collection.name, db.query.summary,
//     db.operation.batch.size, error.type, db.response.status_code
//
// Metrics (only with WithMeterProvider):
//   - neo4j.queries.total, neo4j.query.duration
//   - neo4j.transactions.total, neo4j.transaction.duration
//   - neo4j.transaction.commits, neo4j.transaction.rollbacks
//   - neo4j.errors.total
//   - neo4j.connections.active
//
// # Limitations
//
// A span covers only the wrapped call. Use Execute, which collects records
// eagerly, when the span should include record retrieval.
package neo4j
