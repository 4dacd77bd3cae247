package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/pagegraph"
	"github.com/fwojciec/pagegraph/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildGraph(t *testing.T) *pagegraph.Graph {
	t.Helper()
	g := pagegraph.NewGraph(pagegraph.EdgePolicyLast)
	g.AddNode("index")
	g.AddNode("sub/child")
	require.NoError(t, g.AddEdge("index", "sub/child", "Go"))
	require.NoError(t, g.AddEdge("sub/child", "index", "Back"))
	return g
}

func TestGraphStore_SaveGraph(t *testing.T) {
	t.Parallel()

	t.Run("round-trips nodes and edges in order", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewGraphStore(db)
		ctx := context.Background()

		require.NoError(t, store.SaveGraph(ctx, buildGraph(t)))

		got, err := store.LoadGraph(ctx)
		require.NoError(t, err)

		assert.Equal(t, []pagegraph.Node{{ID: "index"}, {ID: "sub/child"}}, got.Nodes())
		assert.Equal(t, []pagegraph.Edge{
			{Source: "index", Target: "sub/child", Relationship: "Go"},
			{Source: "sub/child", Target: "index", Relationship: "Back"},
		}, got.Edges())
	})

	t.Run("replaces previous contents", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewGraphStore(db)
		ctx := context.Background()

		require.NoError(t, store.SaveGraph(ctx, buildGraph(t)))

		smaller := pagegraph.NewGraph(pagegraph.EdgePolicyLast)
		smaller.AddNode("about")
		require.NoError(t, store.SaveGraph(ctx, smaller))

		got, err := store.LoadGraph(ctx)
		require.NoError(t, err)

		assert.Equal(t, []pagegraph.Node{{ID: "about"}}, got.Nodes())
		assert.Empty(t, got.Edges())
	})

	t.Run("keeps parallel edges", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewGraphStore(db)
		ctx := context.Background()

		g := pagegraph.NewGraph(pagegraph.EdgePolicyAll)
		g.AddNode("a")
		g.AddNode("b")
		require.NoError(t, g.AddEdge("a", "b", "first"))
		require.NoError(t, g.AddEdge("a", "b", "second"))
		require.NoError(t, store.SaveGraph(ctx, g))

		got, err := store.LoadGraph(ctx)
		require.NoError(t, err)

		assert.Equal(t, 2, got.EdgeCount())
	})

	t.Run("saves an empty graph", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewGraphStore(db)
		ctx := context.Background()

		require.NoError(t, store.SaveGraph(ctx, pagegraph.NewGraph("")))

		got, err := store.LoadGraph(ctx)
		require.NoError(t, err)

		assert.Equal(t, 0, got.NodeCount())
		assert.Equal(t, 0, got.EdgeCount())
	})

	t.Run("returns error when context is cancelled", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewGraphStore(db)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := store.SaveGraph(ctx, buildGraph(t))

		require.Error(t, err)
	})
}
