package graph

import (
	"context"

	"github.com/kroma-labs/sentinel-neo4j/neo4j/driver"
)

// Person is a node in the example graph
type Person struct {
	Name  string
	Email string
}

var people = []Person{
	{"Alice", "alice@example.com"},
	{"Bob", "bob@example.com"},
	{"Charlie", "charlie@example.com"},
}

// CreateConstraint makes Person.email unique
func (g *Graph) CreateConstraint(ctx context.Context) error {
	_, err := g.Run(ctx,
		"CREATE CONSTRAINT person_email IF NOT EXISTS FOR (p:Person) REQUIRE p.email IS UNIQUE",
		nil,
	)
	return err
}

// MergePeople upserts the sample people
func (g *Graph) MergePeople(ctx context.Context) error {
	for _, p := range people {
		_, err := g.Run(ctx,
			"MERGE (p:Person {email: $email}) SET p.name = $name",
			map[string]any{"email": p.Email, "name": p.Name},
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// QueryPeople reads people back and logs how many were found
func (g *Graph) QueryPeople(ctx context.Context) error {
	res, err := g.Execute(ctx, "MATCH (p:Person) RETURN p.name AS name, p.email AS email LIMIT 10", nil)
	if err != nil {
		return err
	}
	g.logger.Info().Int("count", len(res.Records)).Msg("queried people")
	return nil
}

// FollowWithTransaction links people inside an explicit transaction
func (g *Graph) FollowWithTransaction(ctx context.Context) (err error) {
	tx, err := g.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	follow := "MATCH (a:Person {name: $from}), (b:Person {name: $to}) MERGE (a)-[:FOLLOWS]->(b)"
	err = tx.RunQueries(ctx, []driver.Query{
		{Cypher: follow, Params: map[string]any{"from": "Alice", "to": "Bob"}},
		{Cypher: follow, Params: map[string]any{"from": "Bob", "to": "Charlie"}},
	})
	if err != nil {
		return err
	}

	res, err := tx.Execute(ctx,
		"MATCH (:Person {name: $from})-[f:FOLLOWS]->(:Person) RETURN count(f) AS follows",
		map[string]any{"from": "Alice"},
	)
	if err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return err
	}
	g.logger.Info().Int("records", len(res.Records)).Msg("transaction committed")
	return nil
}
