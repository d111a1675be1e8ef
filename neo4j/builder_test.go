package neo4j

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kroma-labs/sentinel-neo4j/neo4j/driver"
	"github.com/kroma-labs/sentinel-neo4j/neo4j/mocks"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	neo4jconfig "github.com/neo4j/neo4j-go-driver/v5/neo4j/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestBuilder_Immutable(t *testing.T) {
	t.Run("given shared base, then derived builders do not affect each other", func(t *testing.T) {
		base := NewTelemetryBuilder(mocks.NewConn(t)).
			WithServiceName("checkout").
			WithStatementRecording(true)

		movies := base.WithDatabase("movies")
		orders := base.WithDatabase("orders").WithMaxStatementLength(16)

		assert.Len(t, base.opts, 2)
		assert.Len(t, movies.opts, 3)
		assert.Len(t, orders.opts, 4)

		baseCfg := newConfig(base.opts...)
		moviesCfg := newConfig(movies.opts...)
		ordersCfg := newConfig(orders.opts...)

		assert.Empty(t, baseCfg.Database)
		assert.Equal(t, "movies", moviesCfg.Database)
		assert.Equal(t, DefaultMaxStatementLength, moviesCfg.MaxStatementLength)
		assert.Equal(t, "orders", ordersCfg.Database)
		assert.Equal(t, 16, ordersCfg.MaxStatementLength)
		assert.Equal(t, "checkout", ordersCfg.ServiceName)
		assert.True(t, ordersCfg.RecordStatement)
	})
}

func TestBuilder_ChainMethods(t *testing.T) {
	t.Run("given every chain method, then config reflects all of them", func(t *testing.T) {
		tp := sdktrace.NewTracerProvider()
		mp := sdkmetric.NewMeterProvider()
		defer tp.Shutdown(context.Background())
		defer mp.Shutdown(context.Background())

		b := NewTelemetryBuilder(mocks.NewConn(t)).
			WithTracing(true).
			WithTracerProvider(tp).
			WithMetrics(mp).
			WithServiceName("checkout").
			WithStatementRecording(true).
			WithMaxStatementLength(64).
			WithDatabase("movies").
			WithServerAddress("graph.internal").
			WithServerPort(7690).
			WithQuerySanitizer(DefaultQuerySanitizer).
			WithRelationshipTypes().
			WithLogger(zerolog.New(zerolog.NewTestWriter(t))).
			WithConnectRetry(3, time.Millisecond).
			WithDriverConfig(func(c *neo4jconfig.Config) { c.FetchSize = 500 })

		cfg := newConfig(b.opts...)

		require.NoError(t, cfg.validate())
		assert.Same(t, tp, cfg.TracerProvider)
		assert.NotNil(t, cfg.Metrics)
		assert.True(t, cfg.TracingEnabled)
		assert.True(t, cfg.RecordStatement)
		assert.Equal(t, "checkout", cfg.ServiceName)
		assert.Equal(t, 64, cfg.MaxStatementLength)
		assert.Equal(t, "movies", cfg.Database)
		assert.Equal(t, "graph.internal", cfg.ServerAddress)
		assert.Equal(t, 7690, cfg.ServerPort)
		assert.NotNil(t, cfg.QuerySanitizer)
		assert.True(t, cfg.IncludeRelationshipTypes)
		assert.Equal(t, uint(3), cfg.ConnectMaxTries)
		assert.Equal(t, time.Millisecond, cfg.ConnectRetryInterval)
		assert.Len(t, cfg.DriverConfigurers, 1)
	})
}

func TestBuilder_Build(t *testing.T) {
	dialErr := errors.New("dial failed")
	authErr := &neo4j.Neo4jError{Code: "Neo.ClientError.Security.Unauthorized"}
	connErr := &neo4j.ConnectivityError{Inner: errors.New("connection refused")}

	tests := []struct {
		name       string
		builder    func(t *testing.T) Builder
		wantErr    func(*testing.T, error)
		wantGraph  bool
		wantActive int64
	}{
		{
			name: "given telemetry builder, then builds without verifying",
			builder: func(t *testing.T) Builder {
				return NewTelemetryBuilder(mocks.NewConn(t))
			},
			wantGraph:  true,
			wantActive: 1,
		},
		{
			name: "given nil connection, then returns ErrInvalidConfig",
			builder: func(*testing.T) Builder {
				return NewTelemetryBuilder(nil)
			},
			wantErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			},
		},
		{
			name: "given zero builder, then returns ErrInvalidConfig",
			builder: func(*testing.T) Builder {
				return Builder{}
			},
			wantErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			},
		},
		{
			name: "given invalid option, then returns ErrInvalidConfig before dialing",
			builder: func(t *testing.T) Builder {
				return Builder{
					dial: func(context.Context, *config) (driver.Conn, error) {
						t.Fatal("dial must not be called")
						return nil, nil
					},
				}.WithMaxStatementLength(-1)
			},
			wantErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			},
		},
		{
			name: "given dial error, then returns it unchanged",
			builder: func(*testing.T) Builder {
				return Builder{
					dial: func(context.Context, *config) (driver.Conn, error) {
						return nil, dialErr
					},
					verify: true,
				}
			},
			wantErr: func(t *testing.T, err error) {
				assert.Same(t, dialErr, err)
			},
		},
		{
			name: "given transient ping failures within retry budget, then builds",
			builder: func(t *testing.T) Builder {
				pinger := mocks.NewPinger(t)
				pinger.EXPECT().Ping(mock.Anything).Return(connErr).Times(2)
				pinger.EXPECT().Ping(mock.Anything).Return(nil).Once()
				return verifyingBuilder(pingableConn{Conn: mocks.NewConn(t), Pinger: pinger}).
					WithConnectRetry(3, time.Millisecond)
			},
			wantGraph:  true,
			wantActive: 1,
		},
		{
			name: "given ping failures beyond retry budget, then closes and returns last error",
			builder: func(t *testing.T) Builder {
				conn := mocks.NewConn(t)
				conn.EXPECT().Close(mock.Anything).Return(nil).Once()
				pinger := mocks.NewPinger(t)
				pinger.EXPECT().Ping(mock.Anything).Return(connErr).Times(2)
				return verifyingBuilder(pingableConn{Conn: conn, Pinger: pinger}).
					WithConnectRetry(2, time.Millisecond)
			},
			wantErr: func(t *testing.T, err error) {
				assert.Same(t, connErr, err)
			},
		},
		{
			name: "given authentication failure, then does not retry",
			builder: func(t *testing.T) Builder {
				conn := mocks.NewConn(t)
				conn.EXPECT().Close(mock.Anything).Return(nil).Once()
				pinger := mocks.NewPinger(t)
				pinger.EXPECT().Ping(mock.Anything).Return(authErr).Once()
				return verifyingBuilder(pingableConn{Conn: conn, Pinger: pinger}).
					WithConnectRetry(5, time.Millisecond)
			},
			wantErr: func(t *testing.T, err error) {
				assert.Same(t, authErr, err)
			},
		},
		{
			name: "given verifying builder over connection without ping, then builds",
			builder: func(t *testing.T) Builder {
				return verifyingBuilder(mocks.NewConn(t))
			},
			wantGraph:  true,
			wantActive: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tel := newTestTelemetry(t)

			g, err := tt.builder(t).WithOptions(tel.opts...).Build(context.Background())

			if tt.wantErr != nil {
				require.Error(t, err)
				tt.wantErr(t, err)
				assert.Nil(t, g)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantGraph, g != nil)
			assert.Equal(t, tt.wantActive, tel.sum(t, metricConnectionsActive))
		})
	}
}

func TestBuilder_Build_Telemetry(t *testing.T) {
	t.Run("given built graph, then queries are traced with configured service name", func(t *testing.T) {
		tel := newTestTelemetry(t)
		conn := mocks.NewConn(t)
		conn.EXPECT().Run(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

		g, err := NewTelemetryBuilder(conn).
			WithOptions(tel.opts...).
			WithServiceName("checkout").
			WithDatabase("movies").
			Build(context.Background())
		require.NoError(t, err)

		_, err = g.Run(context.Background(), "SET n.seen = true", nil)
		require.NoError(t, err)

		service, ok := spanAttr(tel.spans()[0], attrServiceName)
		require.True(t, ok)
		assert.Equal(t, "checkout", service.AsString())
		assert.Equal(t, int64(1), tel.sum(t, metricQueriesTotal,
			attribute.String("database", "movies"),
			attribute.String("operation", "SET"),
		))
	})
}

func TestNewBuilder(t *testing.T) {
	t.Run("given unsupported scheme, then returns the driver error", func(t *testing.T) {
		g, err := NewBuilder("bogus://localhost:7687", neo4j.NoAuth()).Build(context.Background())

		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidConfig)
		assert.Nil(t, g)
	})
}

// verifyingBuilder returns a Builder that verifies conn like NewBuilder does.
func verifyingBuilder(conn driver.Conn) Builder {
	return Builder{
		dial: func(context.Context, *config) (driver.Conn, error) {
			return conn, nil
		},
		verify: true,
	}
}
