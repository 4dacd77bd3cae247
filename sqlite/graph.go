package sqlite

import (
	"context"
	"fmt"

	"github.com/fwojciec/pagegraph"
)

// Compile-time interface verification.
var _ pagegraph.GraphStore = (*GraphStore)(nil)

// GraphStore implements pagegraph.GraphStore using SQLite.
type GraphStore struct {
	db *DB
}

// NewGraphStore creates a new GraphStore.
func NewGraphStore(db *DB) *GraphStore {
	return &GraphStore{db: db}
}

// SaveGraph replaces the stored graph with g in a single transaction.
func (s *GraphStore) SaveGraph(ctx context.Context, g *pagegraph.Graph) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM edges"); err != nil {
		return fmt.Errorf("failed to clear edges: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM nodes"); err != nil {
		return fmt.Errorf("failed to clear nodes: %w", err)
	}

	for i, n := range g.Nodes() {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO nodes (position, id) VALUES (?, ?)
		`, i, n.ID); err != nil {
			return fmt.Errorf("failed to insert node %q: %w", n.ID, err)
		}
	}

	for i, e := range g.Edges() {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO edges (position, source, target, relationship) VALUES (?, ?, ?, ?)
		`, i, e.Source, e.Target, e.Relationship); err != nil {
			return fmt.Errorf("failed to insert edge %q -> %q: %w", e.Source, e.Target, err)
		}
	}

	return tx.Commit()
}

// LoadGraph returns the stored graph. Every stored edge is kept, so the
// graph uses pagegraph.EdgePolicyAll.
func (s *GraphStore) LoadGraph(ctx context.Context) (*pagegraph.Graph, error) {
	g := pagegraph.NewGraph(pagegraph.EdgePolicyAll)

	rows, err := s.db.QueryContext(ctx, "SELECT id FROM nodes ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query nodes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan node: %w", err)
		}
		g.AddNode(id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	edgeRows, err := s.db.QueryContext(ctx, `
		SELECT source, target, relationship FROM edges ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query edges: %w", err)
	}
	defer edgeRows.Close()

	for edgeRows.Next() {
		var source, target, relationship string
		if err := edgeRows.Scan(&source, &target, &relationship); err != nil {
			return nil, fmt.Errorf("failed to scan edge: %w", err)
		}
		if err := g.AddEdge(source, target, relationship); err != nil {
			return nil, pagegraph.Errorf(pagegraph.EINTERNAL, "stored edge is dangling: %s", pagegraph.ErrorMessage(err))
		}
	}
	if err := edgeRows.Err(); err != nil {
		return nil, err
	}

	return g, nil
}
