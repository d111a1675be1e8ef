package graph

import (
	"context"

	"github.com/kroma-labs/sentinel-neo4j/example/neo4j/internal/config"
	sentinelneo4j "github.com/kroma-labs/sentinel-neo4j/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	neo4jconfig "github.com/neo4j/neo4j-go-driver/v5/neo4j/config"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

// Graph wraps the instrumented Neo4j connection
type Graph struct {
	*sentinelneo4j.Graph
	logger zerolog.Logger
}

// New connects to Neo4j with Sentinel instrumentation
func New(ctx context.Context, logger zerolog.Logger) (*Graph, error) {
	g, err := sentinelneo4j.NewBuilder(
		config.DefaultURI,
		neo4j.BasicAuth(config.DefaultUser, config.DefaultPassword, ""),
	).
		WithServiceName(config.ServiceName).
		WithDatabase(config.DefaultDatabase).
		WithMetrics(otel.GetMeterProvider()).
		WithStatementRecording(true).
		WithQuerySanitizer(sentinelneo4j.DefaultQuerySanitizer).
		WithRelationshipTypes().
		WithLogger(logger).
		WithDriverConfig(func(c *neo4jconfig.Config) {
			c.MaxConnectionPoolSize = config.DefaultPoolSize
		}).
		Build(ctx)
	if err != nil {
		return nil, err
	}

	info := g.ConnectionInfo()
	logger.Info().
		Str("database", info.Database).
		Str("server", info.ServerAddress).
		Int("port", info.ServerPort).
		Str("version", info.Version).
		Msg("connected to neo4j")

	return &Graph{Graph: g, logger: logger}, nil
}
