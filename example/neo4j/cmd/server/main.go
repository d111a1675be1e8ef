package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kroma-labs/sentinel-neo4j/example/neo4j/internal/config"
	"github.com/kroma-labs/sentinel-neo4j/example/neo4j/internal/graph"
	"github.com/kroma-labs/sentinel-neo4j/example/neo4j/internal/telemetry"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

func main() {
	ctx := context.Background()
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	// 1. Setup OpenTelemetry (Tracing + Metrics)
	shutdownTracing, shutdownMetrics, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to setup otel")
	}
	defer func() {
		_ = shutdownTracing(ctx)
		_ = shutdownMetrics(ctx)
	}()

	// 2. Start Prometheus Metrics Server
	metricsServer := &http.Server{Addr: config.MetricsPort, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		logger.Info().Str("addr", config.MetricsPort).Msg("starting prometheus metrics server")
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("metrics server failed")
		}
	}()

	// 3. Connect to Neo4j with Sentinel
	g, err := graph.New(ctx, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to neo4j")
	}
	defer g.Close(ctx)

	// 4. Run graph operations in a loop
	tracer := otel.Tracer("example-app")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	if err := g.CreateConstraint(ctx); err != nil {
		logger.Warn().Err(err).Msg("failed to create constraint")
	}

	ticker := time.NewTicker(time.Duration(config.OperationInterval) * time.Second)
	defer ticker.Stop()

	logger.Info().
		Str("metrics", "http://localhost:2112/metrics").
		Str("grafana", "http://localhost:3000").
		Msg("neo4j example app started, press Ctrl+C to stop")

	for {
		select {
		case <-ticker.C:
			ctx, span := tracer.Start(ctx, "graph-operations")

			if err := g.MergePeople(ctx); err != nil {
				logger.Error().Err(err).Msg("failed to merge people")
			}

			if err := g.QueryPeople(ctx); err != nil {
				logger.Error().Err(err).Msg("failed to query people")
			}

			if err := g.FollowWithTransaction(ctx); err != nil {
				logger.Error().Err(err).Msg("failed transaction")
			}

			if err := g.Ping(ctx); err != nil {
				logger.Warn().Err(err).Msg("ping failed")
			}

			span.End()
			logger.Info().Msg("graph operations completed")

		case <-sigChan:
			logger.Info().Msg("shutting down gracefully")
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := metricsServer.Shutdown(ctx); err != nil {
				logger.Error().Err(err).Msg("metrics server shutdown error")
			}
			return
		}
	}
}
