package neo4j

import (
	"context"
	"testing"

	"github.com/kroma-labs/sentinel-neo4j/neo4j/mocks"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		opts    []Option
		wantErr func(*testing.T, error)
	}{
		{
			name:   "given invalid option, then returns ErrInvalidConfig",
			target: "neo4j://localhost:7687",
			opts:   []Option{WithMaxStatementLength(-1)},
			wantErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			},
		},
		{
			name:   "given unsupported scheme, then returns the driver error",
			target: "bogus://localhost:7687",
			wantErr: func(t *testing.T, err error) {
				assert.NotErrorIs(t, err, ErrInvalidConfig)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Open(context.Background(), tt.target, neo4j.NoAuth(), tt.opts...)

			require.Error(t, err)
			tt.wantErr(t, err)
			assert.Nil(t, g)
		})
	}
}

func TestWrap(t *testing.T) {
	t.Run("given connection, then wraps it without verifying", func(t *testing.T) {
		tel := newTestTelemetry(t)
		conn := mocks.NewConn(t)

		g, err := Wrap(context.Background(), conn, tel.with(WithDatabase("movies"))...)

		require.NoError(t, err)
		assert.Same(t, conn, g.Unwrap())
		assert.Equal(t, "movies", g.ConnectionInfo().Database)
		assert.Equal(t, int64(1), tel.sum(t, metricConnectionsActive))
	})

	t.Run("given nil connection, then returns ErrInvalidConfig", func(t *testing.T) {
		g, err := Wrap(context.Background(), nil)

		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Nil(t, g)
	})
}

func TestWrapDriver(t *testing.T) {
	t.Run("given nil driver, then returns ErrInvalidConfig", func(t *testing.T) {
		g, err := WrapDriver(context.Background(), nil)

		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Nil(t, g)
	})
}

func TestWithTelemetry(t *testing.T) {
	t.Run("given connection, then traces through the global provider with metrics off", func(t *testing.T) {
		clearEnv(t)
		exporter := tracetest.NewInMemoryExporter()
		tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
		prev := otel.GetTracerProvider()
		otel.SetTracerProvider(tp)
		t.Cleanup(func() {
			otel.SetTracerProvider(prev)
			_ = tp.Shutdown(context.Background())
		})

		conn := mocks.NewConn(t)
		conn.EXPECT().Run(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

		g := WithTelemetry(context.Background(), conn)
		_, err := g.Run(context.Background(), "MATCH (n:Person) RETURN n", nil)

		require.NoError(t, err)
		assert.Nil(t, g.cfg.Metrics)
		require.Len(t, exporter.GetSpans(), 1)

		service, ok := spanAttr(exporter.GetSpans()[0], attrServiceName)
		require.True(t, ok)
		assert.Equal(t, DefaultServiceName, service.AsString())
	})
}

func TestExecuteTraced(t *testing.T) {
	t.Run("given connection, then traces one call without touching the connection gauge", func(t *testing.T) {
		tel := newTestTelemetry(t)
		want := &neo4j.EagerResult{Keys: []string{"p"}}
		conn := mocks.NewConn(t)
		conn.EXPECT().Execute(mock.Anything, "MATCH (p:Person) RETURN p", mock.Anything).Return(want, nil)

		got, err := ExecuteTraced(context.Background(), conn, "MATCH (p:Person) RETURN p", nil, tel.opts...)

		require.NoError(t, err)
		assert.Same(t, want, got)
		assert.Equal(t, spanExecute, tel.spans()[0].Name)
		assert.Equal(t, int64(1), tel.sum(t, metricQueriesTotal))
		assert.NotContains(t, tel.collect(t), metricConnectionsActive)
	})

	t.Run("given invalid option, then does not call the connection", func(t *testing.T) {
		conn := mocks.NewConn(t)

		got, err := ExecuteTraced(context.Background(), conn, "MATCH (n) RETURN n", nil, WithTracerProvider(nil))

		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Nil(t, got)
	})
}

func TestRunTraced(t *testing.T) {
	t.Run("given failing call, then returns the driver error unchanged", func(t *testing.T) {
		tel := newTestTelemetry(t)
		conn := mocks.NewConn(t)
		conn.EXPECT().Run(mock.Anything, "REMOVE n.tmp", mock.Anything).Return(nil, assert.AnError)

		_, err := RunTraced(context.Background(), conn, "REMOVE n.tmp", nil, tel.opts...)

		assert.Same(t, assert.AnError, err)
		assert.Equal(t, spanRun, tel.spans()[0].Name)
		assert.Equal(t, int64(1), tel.sum(t, metricErrorsTotal))
	})
}
