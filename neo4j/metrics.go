package neo4j

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric names.
const (
	metricQueriesTotal         = "neo4j.queries.total"
	metricQueryDuration        = "neo4j.query.duration"
	metricTransactionsTotal    = "neo4j.transactions.total"
	metricTransactionDuration  = "neo4j.transaction.duration"
	metricTransactionCommits   = "neo4j.transaction.commits"
	metricTransactionRollbacks = "neo4j.transaction.rollbacks"
	metricErrorsTotal          = "neo4j.errors.total"
	metricConnectionsActive    = "neo4j.connections.active"
)

// Transaction outcomes.
const (
	outcomeCommit   = "commit"
	outcomeRollback = "rollback"
)

// metrics holds the metric instruments for Neo4j operations.
// All record methods are nil-safe and never fail.
type metrics struct {
	queriesTotal         metric.Int64Counter
	queryDuration        metric.Float64Histogram
	transactionsTotal    metric.Int64Counter
	transactionDuration  metric.Float64Histogram
	transactionCommits   metric.Int64Counter
	transactionRollbacks metric.Int64Counter
	errorsTotal          metric.Int64Counter
	connectionsActive    metric.Int64UpDownCounter
}

// newMetrics creates and registers metric instruments.
func newMetrics(meter metric.Meter) (*metrics, error) {
	m := &metrics{}
	var err error

	m.queriesTotal, err = meter.Int64Counter(
		metricQueriesTotal,
		metric.WithDescription("Total number of Neo4j queries executed"),
		metric.WithUnit("{query}"),
	)
	if err != nil {
		return nil, err
	}

	m.queryDuration, err = meter.Float64Histogram(
		metricQueryDuration,
		metric.WithDescription("Duration of Neo4j query execution in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(
			1, 5, 10, 25, 50, 75, 100, 250, 500, 750, 1000, 2500, 5000, 10000,
		),
	)
	if err != nil {
		return nil, err
	}

	m.transactionsTotal, err = meter.Int64Counter(
		metricTransactionsTotal,
		metric.WithDescription("Total number of Neo4j transactions started"),
		metric.WithUnit("{transaction}"),
	)
	if err != nil {
		return nil, err
	}

	m.transactionDuration, err = meter.Float64Histogram(
		metricTransactionDuration,
		metric.WithDescription("Duration of Neo4j transactions in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(
			1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000, 60000,
		),
	)
	if err != nil {
		return nil, err
	}

	m.transactionCommits, err = meter.Int64Counter(
		metricTransactionCommits,
		metric.WithDescription("Number of successful transaction commits"),
		metric.WithUnit("{transaction}"),
	)
	if err != nil {
		return nil, err
	}

	m.transactionRollbacks, err = meter.Int64Counter(
		metricTransactionRollbacks,
		metric.WithDescription("Number of transaction rollbacks"),
		metric.WithUnit("{transaction}"),
	)
	if err != nil {
		return nil, err
	}

	m.errorsTotal, err = meter.Int64Counter(
		metricErrorsTotal,
		metric.WithDescription("Total number of Neo4j errors encountered"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	m.connectionsActive, err = meter.Int64UpDownCounter(
		metricConnectionsActive,
		metric.WithDescription("Number of active Neo4j connections"),
		metric.WithUnit("{connection}"),
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// recordQuery records one query. A non-nil err also counts as an error
// against the same operation.
func (m *metrics) recordQuery(
	ctx context.Context,
	duration time.Duration,
	operation, database string,
	err error,
) {
	if m == nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.Bool("success", err == nil),
		attribute.String("database", database),
		attribute.String("operation", operation),
	)
	m.queriesTotal.Add(ctx, 1, attrs)
	m.queryDuration.Record(ctx, durationMillis(duration), attrs)

	if err != nil {
		m.recordError(ctx, ClassifyError(err).Type, operation, database)
	}
}

// recordError counts one error.
func (m *metrics) recordError(ctx context.Context, errorType, operation, database string) {
	if m == nil {
		return
	}
	m.errorsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("error_type", errorType),
		attribute.String("database", database),
		attribute.String("operation", operation),
	))
}

// recordTransactionStart counts one started transaction.
func (m *metrics) recordTransactionStart(ctx context.Context, database string) {
	if m == nil {
		return
	}
	m.transactionsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("database", database),
	))
}

// recordTransactionEnd records the transaction duration and counts a commit
// or rollback.
func (m *metrics) recordTransactionEnd(
	ctx context.Context,
	duration time.Duration,
	committed bool,
	database string,
) {
	if m == nil {
		return
	}

	outcome := outcomeRollback
	if committed {
		outcome = outcomeCommit
	}
	m.transactionDuration.Record(ctx, durationMillis(duration), metric.WithAttributes(
		attribute.String("database", database),
		attribute.String("outcome", outcome),
	))

	dbAttr := metric.WithAttributes(attribute.String("database", database))
	if committed {
		m.transactionCommits.Add(ctx, 1, dbAttr)
	} else {
		m.transactionRollbacks.Add(ctx, 1, dbAttr)
	}
}

// recordConnectionDelta adjusts the active connections gauge by +1 or -1.
func (m *metrics) recordConnectionDelta(ctx context.Context, delta int64) {
	if m == nil {
		return
	}
	m.connectionsActive.Add(ctx, delta)
}

func durationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
