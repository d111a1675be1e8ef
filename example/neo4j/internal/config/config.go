package config

const (
	// Neo4j configuration
	DefaultURI      = "neo4j://localhost:7687"
	DefaultUser     = "neo4j"
	DefaultPassword = "password"
	DefaultDatabase = "neo4j"
	DefaultHost     = "localhost"
	DefaultPoolSize = 50

	// Server configuration
	MetricsPort = ":2112"

	// OpenTelemetry configuration
	OTLPEndpoint   = "localhost:4317"
	ServiceName    = "sentinel-neo4j-example"
	ServiceVersion = "0.1.0"

	// Operation intervals
	OperationInterval = 5 // seconds
)
