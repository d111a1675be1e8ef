package driver

import (
	"context"
	"net"
	"strconv"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"golang.org/x/sync/errgroup"
)

// Compile-time interface checks.
var (
	_ Conn         = (*Adapter)(nil)
	_ Pinger       = (*Adapter)(nil)
	_ InfoProvider = (*Adapter)(nil)
	_ Tx           = (*adapterTx)(nil)
)

const dbInfoQuery = "CALL db.info() YIELD name RETURN name"

// Adapter implements Conn on top of a neo4j.DriverWithContext.
// It adds no telemetry of its own.
type Adapter struct {
	drv      neo4j.DriverWithContext
	database string
}

// NewAdapter returns an Adapter over drv. An empty database selects the
// server's default database.
func NewAdapter(drv neo4j.DriverWithContext, database string) *Adapter {
	return &Adapter{
		drv:      drv,
		database: database,
	}
}

// Driver returns the underlying Neo4j driver.
func (a *Adapter) Driver() neo4j.DriverWithContext {
	return a.drv
}

// Execute implements Conn.
func (a *Adapter) Execute(ctx context.Context, cypher string, params map[string]any) (*neo4j.EagerResult, error) {
	return a.ExecuteOn(ctx, a.database, cypher, params)
}

// ExecuteOn implements Conn.
func (a *Adapter) ExecuteOn(
	ctx context.Context,
	database, cypher string,
	params map[string]any,
) (*neo4j.EagerResult, error) {
	var opts []neo4j.ExecuteQueryConfigurationOption
	if database != "" {
		opts = append(opts, neo4j.ExecuteQueryWithDatabase(database))
	}
	return neo4j.ExecuteQuery(ctx, a.drv, cypher, params, neo4j.EagerResultTransformer, opts...)
}

// Run implements Conn.
func (a *Adapter) Run(ctx context.Context, cypher string, params map[string]any) (neo4j.ResultSummary, error) {
	return a.RunOn(ctx, a.database, cypher, params)
}

// RunOn implements Conn.
func (a *Adapter) RunOn(
	ctx context.Context,
	database, cypher string,
	params map[string]any,
) (summary neo4j.ResultSummary, err error) {
	session := a.drv.NewSession(ctx, neo4j.SessionConfig{DatabaseName: database})
	defer func() {
		if cerr := session.Close(ctx); err == nil {
			err = cerr
		}
	}()

	result, err := session.Run(ctx, cypher, params)
	if err != nil {
		return nil, err
	}
	return result.Consume(ctx)
}

// BeginTx implements Conn. The transaction owns a session that is closed
// when the transaction commits or rolls back.
//
// Transactions always target the database given to NewAdapter; there is no
// per-call database override as there is for ExecuteOn and RunOn.
func (a *Adapter) BeginTx(ctx context.Context) (Tx, error) {
	session := a.drv.NewSession(ctx, neo4j.SessionConfig{DatabaseName: a.database})
	tx, err := session.BeginTransaction(ctx)
	if err != nil {
		_ = session.Close(ctx)
		return nil, err
	}
	return &adapterTx{tx: tx, session: session}, nil
}

// Ping implements Pinger.
func (a *Adapter) Ping(ctx context.Context) error {
	return a.drv.VerifyConnectivity(ctx)
}

// Close implements Conn.
func (a *Adapter) Close(ctx context.Context) error {
	return a.drv.Close(ctx)
}

// ConnectionInfo implements InfoProvider. Server info and database name are
// looked up concurrently; whatever succeeded is returned along with the
// first error.
func (a *Adapter) ConnectionInfo(ctx context.Context) (ConnectionInfo, error) {
	var (
		info ConnectionInfo
		g    errgroup.Group
	)

	g.Go(func() error {
		si, err := a.drv.GetServerInfo(ctx)
		if err != nil {
			return err
		}
		info.ServerAddress, info.ServerPort = SplitAddress(si.Address())
		info.Version = AgentVersion(si.Agent())
		return nil
	})

	g.Go(func() error {
		if a.database != "" {
			info.Database = a.database
			return nil
		}
		res, err := neo4j.ExecuteQuery(ctx, a.drv, dbInfoQuery, nil,
			neo4j.EagerResultTransformer,
			neo4j.ExecuteQueryWithReadersRouting(),
		)
		if err != nil {
			return err
		}
		if len(res.Records) > 0 {
			if name, ok := res.Records[0].Get("name"); ok {
				if s, ok := name.(string); ok {
					info.Database = s
				}
			}
		}
		return nil
	})

	err := g.Wait()
	return info, err
}

// SplitAddress splits a "host:port" address. A missing or invalid port is
// returned as 0.
//
// Example:
//
//	SplitAddress("db.internal:7687") // "db.internal", 7687
//	SplitAddress("db.internal")      // "db.internal", 0
func SplitAddress(address string) (string, int) {
	host, portStr, err := net.SplitHostPort(address)
	if err != nil {
		return address, 0
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return host, 0
	}
	return host, port
}

// AgentVersion extracts the version from a server agent string such as
// "Neo4j/5.13.0". Agents without a slash are returned unchanged.
func AgentVersion(agent string) string {
	if i := strings.LastIndexByte(agent, '/'); i >= 0 {
		return agent[i+1:]
	}
	return agent
}

// adapterTx wraps an explicit transaction and its owning session.
type adapterTx struct {
	tx      neo4j.ExplicitTransaction
	session neo4j.SessionWithContext
}

// Execute implements Tx.
func (t *adapterTx) Execute(ctx context.Context, cypher string, params map[string]any) (*neo4j.EagerResult, error) {
	result, err := t.tx.Run(ctx, cypher, params)
	if err != nil {
		return nil, err
	}
	keys, err := result.Keys()
	if err != nil {
		return nil, err
	}
	records, err := result.Collect(ctx)
	if err != nil {
		return nil, err
	}
	summary, err := result.Consume(ctx)
	if err != nil {
		return nil, err
	}
	return &neo4j.EagerResult{
		Keys:    keys,
		Records: records,
		Summary: summary,
	}, nil
}

// Run implements Tx.
func (t *adapterTx) Run(ctx context.Context, cypher string, params map[string]any) (neo4j.ResultSummary, error) {
	result, err := t.tx.Run(ctx, cypher, params)
	if err != nil {
		return nil, err
	}
	return result.Consume(ctx)
}

// RunQueries implements Tx.
func (t *adapterTx) RunQueries(ctx context.Context, queries []Query) error {
	for _, q := range queries {
		if _, err := t.Run(ctx, q.Cypher, q.Params); err != nil {
			return err
		}
	}
	return nil
}

// Commit implements Tx.
func (t *adapterTx) Commit(ctx context.Context) error {
	err := t.tx.Commit(ctx)
	if cerr := t.session.Close(ctx); err == nil {
		err = cerr
	}
	return err
}

// Rollback implements Tx.
func (t *adapterTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if cerr := t.session.Close(ctx); err == nil {
		err = cerr
	}
	return err
}
