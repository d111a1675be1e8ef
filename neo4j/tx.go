package neo4j

import (
	"context"
	"sync"
	"time"

	"github.com/kroma-labs/sentinel-neo4j/neo4j/driver"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Compile-time interface check.
var _ driver.Tx = (*Transaction)(nil)

// Transaction wraps a driver.Tx with OpenTelemetry instrumentation.
//
// The transaction span opened by Graph.BeginTx is the parent of every query
// run through the Transaction. Commit or Rollback ends it. Telemetry for the
// end of a transaction is recorded once even if both are called; the calls
// themselves are always forwarded.
type Transaction struct {
	tx       driver.Tx
	cfg      *config
	info     driver.ConnectionInfo
	database string
	span     trace.Span
	start    time.Time

	endOnce sync.Once
}

// newTransaction creates a new instrumented transaction.
func newTransaction(
	tx driver.Tx,
	cfg *config,
	info driver.ConnectionInfo,
	database string,
	span trace.Span,
	start time.Time,
) *Transaction {
	return &Transaction{
		tx:       tx,
		cfg:      cfg,
		info:     info,
		database: database,
		span:     span,
		start:    start,
	}
}

// Unwrap returns the wrapped transaction.
func (t *Transaction) Unwrap() driver.Tx {
	return t.tx
}

// Execute implements driver.Tx.
func (t *Transaction) Execute(ctx context.Context, cypher string, params map[string]any) (*neo4j.EagerResult, error) {
	return traceQuery(trace.ContextWithSpan(ctx, t.span), t.cfg, t.queryCall(spanTransactionExecute, cypher),
		func(ctx context.Context) (*neo4j.EagerResult, error) {
			return t.tx.Execute(ctx, cypher, params)
		},
	)
}

// Run implements driver.Tx.
func (t *Transaction) Run(ctx context.Context, cypher string, params map[string]any) (neo4j.ResultSummary, error) {
	return traceQuery(trace.ContextWithSpan(ctx, t.span), t.cfg, t.queryCall(spanTransactionRun, cypher),
		func(ctx context.Context) (neo4j.ResultSummary, error) {
			return t.tx.Run(ctx, cypher, params)
		},
	)
}

// RunQueries implements driver.Tx. The batch gets one span, a child of the
// transaction span, carrying "db.operation.batch.size". Each query runs
// through the wrapped transaction's Run inside its own child span and is
// counted like a single Run. The first error stops the batch and is
// returned unchanged.
func (t *Transaction) RunQueries(ctx context.Context, queries []driver.Query) error {
	attrs := t.cfg.baseAttributes(t.info, t.database)
	attrs = append(attrs, attribute.Int(attrBatchSize, len(queries)))

	ctx, span := t.cfg.Tracer.Start(trace.ContextWithSpan(ctx, t.span), spanTransactionBatch,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
	defer span.End()

	for _, q := range queries {
		_, err := traceQuery(ctx, t.cfg, t.queryCall(spanTransactionRun, q.Cypher),
			func(ctx context.Context) (neo4j.ResultSummary, error) {
				return t.tx.Run(ctx, q.Cypher, q.Params)
			},
		)
		if err != nil {
			t.cfg.recordSpanError(span, spanTransactionBatch, err)
			return err
		}
	}
	return nil
}

// Commit implements driver.Tx. A failed commit is reported as a rollback.
func (t *Transaction) Commit(ctx context.Context) error {
	err := t.tx.Commit(ctx)
	t.end(ctx, err == nil, operationCommit, err)
	return err
}

// Rollback implements driver.Tx.
func (t *Transaction) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	t.end(ctx, false, operationRollback, err)
	return err
}

// end closes the transaction span and records the outcome once.
func (t *Transaction) end(ctx context.Context, committed bool, operation string, err error) {
	t.endOnce.Do(func() {
		duration := time.Since(t.start)

		outcome := outcomeRollback
		if committed {
			outcome = outcomeCommit
		}
		t.span.SetAttributes(
			attribute.String(attrTxOutcome, outcome),
			attribute.Float64(attrTxDurationMillis, durationMillis(duration)),
		)

		var errInfo ErrorInfo
		if err != nil {
			errInfo = t.cfg.recordSpanError(t.span, spanTransaction, err)
		}
		t.span.End()

		if err != nil {
			t.cfg.Metrics.recordError(ctx, errInfo.Type, operation, t.database)
		}
		t.cfg.Metrics.recordTransactionEnd(ctx, duration, committed, t.database)
	})
}

func (t *Transaction) queryCall(name, cypher string) queryCall {
	return queryCall{
		name:     name,
		cypher:   cypher,
		database: t.database,
		info:     t.info,
	}
}
