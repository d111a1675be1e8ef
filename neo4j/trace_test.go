package neo4j

import (
	"context"
	"strings"
	"testing"

	"github.com/kroma-labs/sentinel-neo4j/neo4j/driver"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

func attrMap(attrs []attribute.KeyValue) map[string]attribute.Value {
	out := make(map[string]attribute.Value, len(attrs))
	for _, kv := range attrs {
		out[string(kv.Key)] = kv.Value
	}
	return out
}

func TestConfig_BaseAttributes(t *testing.T) {
	type args struct {
		info     driver.ConnectionInfo
		database string
	}

	tests := []struct {
		name       string
		args       args
		wantAssert func(*testing.T, map[string]attribute.Value)
	}{
		{
			name: "given full connection info, then includes every known attribute",
			args: args{
				info: driver.ConnectionInfo{
					ServerAddress: "graph.internal",
					ServerPort:    7687,
					Version:       "5.13.0",
				},
				database: "movies",
			},
			wantAssert: func(t *testing.T, got map[string]attribute.Value) {
				assert.Equal(t, "neo4j", got[attrDBSystem].AsString())
				assert.Equal(t, "client", got[attrOtelKind].AsString())
				assert.Equal(t, "checkout", got[attrServiceName].AsString())
				assert.Equal(t, "movies", got[attrDBName].AsString())
				assert.Equal(t, "graph.internal", got[attrServerAddress].AsString())
				assert.Equal(t, int64(7687), got[attrServerPort].AsInt64())
				assert.Equal(t, "5.13.0", got[attrDBVersion].AsString())
			},
		},
		{
			name: "given unknown metadata, then omits it",
			args: args{
				info: driver.ConnectionInfo{Version: versionUnknown},
			},
			wantAssert: func(t *testing.T, got map[string]attribute.Value) {
				assert.Len(t, got, 3)
				assert.NotContains(t, got, attrDBName)
				assert.NotContains(t, got, attrServerAddress)
				assert.NotContains(t, got, attrServerPort)
				assert.NotContains(t, got, attrDBVersion)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newConfig(WithServiceName("checkout"))

			tt.wantAssert(t, attrMap(cfg.baseAttributes(tt.args.info, tt.args.database)))
		})
	}
}

func TestConfig_QueryAttributes(t *testing.T) {
	longQuery := "MATCH (p:Person {name: 'Ada'}) WHERE p.age > 30 RETURN p" + strings.Repeat(" ", 100)

	tests := []struct {
		name       string
		opts       []Option
		cypher     string
		wantAssert func(*testing.T, map[string]attribute.Value)
	}{
		{
			name:   "given labelled query, then adds operation, collection and summary",
			cypher: "CREATE (a:Order)-[:CONTAINS]->(b:Item)",
			wantAssert: func(t *testing.T, got map[string]attribute.Value) {
				assert.Equal(t, "CREATE", got[attrOperationName].AsString())
				assert.Equal(t, "Order", got[attrCollectionName].AsString())
				assert.Equal(t, "CREATE Order Item", got[attrQuerySummary].AsString())
				assert.NotContains(t, got, attrQueryText)
			},
		},
		{
			name:   "given relationship types enabled, then summary includes them",
			opts:   []Option{WithRelationshipTypes()},
			cypher: "CREATE (a:Order)-[:CONTAINS]->(b:Item)",
			wantAssert: func(t *testing.T, got map[string]attribute.Value) {
				assert.Equal(t, "CREATE Order Item CONTAINS", got[attrQuerySummary].AsString())
			},
		},
		{
			name:   "given unknown query, then omits operation, collection and summary",
			cypher: "CALL db.labels()",
			wantAssert: func(t *testing.T, got map[string]attribute.Value) {
				assert.NotContains(t, got, attrOperationName)
				assert.NotContains(t, got, attrCollectionName)
				assert.NotContains(t, got, attrQuerySummary)
			},
		},
		{
			name:   "given statement recording, then records statement",
			opts:   []Option{WithStatementRecording(true)},
			cypher: "MATCH (n:Person) RETURN n",
			wantAssert: func(t *testing.T, got map[string]attribute.Value) {
				assert.Equal(t, "MATCH (n:Person) RETURN n", got[attrQueryText].AsString())
			},
		},
		{
			name: "given statement recording with sanitizer and limit, then sanitizes then truncates",
			opts: []Option{
				WithStatementRecording(true),
				WithQuerySanitizer(DefaultQuerySanitizer),
				WithMaxStatementLength(30),
			},
			cypher: longQuery,
			wantAssert: func(t *testing.T, got map[string]attribute.Value) {
				assert.Equal(t, "MATCH (p:Person {name: '?'}) W", got[attrQueryText].AsString())
			},
		},
		{
			name:   "given statement recording with zero limit, then omits statement",
			opts:   []Option{WithStatementRecording(true), WithMaxStatementLength(0)},
			cypher: "MATCH (n:Person) RETURN n",
			wantAssert: func(t *testing.T, got map[string]attribute.Value) {
				assert.NotContains(t, got, attrQueryText)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newConfig(tt.opts...)
			q := Classify(tt.cypher, cfg.IncludeRelationshipTypes)

			attrs := cfg.queryAttributes(driver.ConnectionInfo{}, "neo4j", tt.cypher, q)

			tt.wantAssert(t, attrMap(attrs))
		})
	}
}

func TestConfig_RecordSpanError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantType       string
		wantStatusCode string
	}{
		{
			name:           "given Neo4j error, then sets type and status code",
			err:            &neo4j.Neo4jError{Code: "Neo.ClientError.Statement.SyntaxError", Msg: "Invalid input"},
			wantType:       ErrorTypeSyntax,
			wantStatusCode: "Neo.ClientError.Statement.SyntaxError",
		},
		{
			name:     "given plain error, then sets generic type only",
			err:      assert.AnError,
			wantType: ErrorTypeGeneric,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tel := newTestTelemetry(t)
			cfg := newConfig(tel.opts...)

			_, span := cfg.Tracer.Start(context.Background(), "test")
			info := cfg.recordSpanError(span, "test", tt.err)
			span.End()

			assert.Equal(t, tt.wantType, info.Type)

			spans := tel.spans()
			require.Len(t, spans, 1)
			assert.Equal(t, codes.Error, spans[0].Status.Code)
			assert.Equal(t, tt.wantType, spans[0].Status.Description)
			assert.Len(t, spans[0].Events, 1)

			errType, ok := spanAttr(spans[0], attrErrorType)
			require.True(t, ok)
			assert.Equal(t, tt.wantType, errType.AsString())

			status, ok := spanAttr(spans[0], attrResponseStatus)
			if tt.wantStatusCode == "" {
				assert.False(t, ok)
			} else {
				assert.Equal(t, tt.wantStatusCode, status.AsString())
			}
		})
	}
}

func TestTraceQuery(t *testing.T) {
	t.Run("given delegate result, then returns it unchanged inside a client span", func(t *testing.T) {
		tel := newTestTelemetry(t)
		cfg := newConfig(tel.opts...)
		want := &neo4j.EagerResult{Keys: []string{"n"}}

		var delegateSpan trace.SpanContext
		got, err := traceQuery(context.Background(), cfg,
			queryCall{name: spanExecute, cypher: "MATCH (n:Person) RETURN n", database: "neo4j"},
			func(ctx context.Context) (*neo4j.EagerResult, error) {
				delegateSpan = trace.SpanContextFromContext(ctx)
				return want, nil
			},
		)

		require.NoError(t, err)
		assert.Same(t, want, got)

		spans := tel.spans()
		require.Len(t, spans, 1)
		assert.Equal(t, spanExecute, spans[0].Name)
		assert.Equal(t, trace.SpanKindClient, spans[0].SpanKind)
		assert.Equal(t, spans[0].SpanContext.SpanID(), delegateSpan.SpanID())
		assert.Equal(t, int64(1), tel.sum(t, metricQueriesTotal, attribute.String("operation", "MATCH")))
	})

	t.Run("given delegate error, then returns the same error", func(t *testing.T) {
		tel := newTestTelemetry(t)
		cfg := newConfig(tel.opts...)
		want := &neo4j.Neo4jError{Code: "Neo.TransientError.General.DatabaseUnavailable"}

		got, err := traceQuery(context.Background(), cfg,
			queryCall{name: spanRun, cypher: "MERGE (c:City {name: $name})", database: "neo4j"},
			func(context.Context) (neo4j.ResultSummary, error) {
				return nil, want
			},
		)

		assert.Nil(t, got)
		assert.Same(t, want, err)
		assert.Equal(t, int64(1), tel.sum(t, metricErrorsTotal,
			attribute.String("error_type", ErrorTypeTransient),
			attribute.String("operation", "MERGE"),
		))
	})
}
