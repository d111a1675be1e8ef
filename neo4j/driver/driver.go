// Package driver defines the interfaces an underlying Neo4j connection must
// implement to be instrumented by the sentinel neo4j package, and an Adapter
// that implements them on top of the official Neo4j Go driver.
//
// The split mirrors database/sql/driver: the instrumented wrapper and the raw
// connection share one capability set, so call sites can accept either.
package driver

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Conn is the capability set shared by a raw Neo4j connection and its
// instrumented counterpart.
type Conn interface {
	// Execute runs a query against the default database and returns all
	// records eagerly.
	Execute(ctx context.Context, cypher string, params map[string]any) (*neo4j.EagerResult, error)

	// ExecuteOn is Execute against a named database.
	ExecuteOn(ctx context.Context, database, cypher string, params map[string]any) (*neo4j.EagerResult, error)

	// Run runs a query, discards records and returns the result summary.
	Run(ctx context.Context, cypher string, params map[string]any) (neo4j.ResultSummary, error)

	// RunOn is Run against a named database.
	RunOn(ctx context.Context, database, cypher string, params map[string]any) (neo4j.ResultSummary, error)

	// BeginTx starts an explicit transaction on the connection's database.
	BeginTx(ctx context.Context) (Tx, error)

	// Close releases the connection.
	Close(ctx context.Context) error
}

// Tx is an explicit transaction. A Tx must not be used after Commit or
// Rollback; behavior in that case is whatever the implementation defines.
type Tx interface {
	Execute(ctx context.Context, cypher string, params map[string]any) (*neo4j.EagerResult, error)
	Run(ctx context.Context, cypher string, params map[string]any) (neo4j.ResultSummary, error)

	// RunQueries runs queries in order and stops at the first error.
	RunQueries(ctx context.Context, queries []Query) error

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Query is one statement of a batch passed to Tx.RunQueries.
type Query struct {
	Cypher string
	Params map[string]any
}

// Pinger is an optional interface for connections that can verify
// connectivity to the server.
type Pinger interface {
	Ping(ctx context.Context) error
}

// InfoProvider is an optional interface for connections that can report
// server metadata. Implementations may return partially filled info together
// with an error.
type InfoProvider interface {
	ConnectionInfo(ctx context.Context) (ConnectionInfo, error)
}

// ConnectionInfo describes the server a connection talks to.
// Zero values mean "unknown".
type ConnectionInfo struct {
	Database      string
	ServerAddress string
	ServerPort    int
	Version       string
}
