package etree_test

import (
	"bytes"
	"testing"

	"github.com/beevik/etree"
	"github.com/fwojciec/pagegraph"
	pgetree "github.com/fwojciec/pagegraph/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphMLEncoder_EncodeGraph(t *testing.T) {
	t.Parallel()

	t.Run("writes nodes and labeled edges", func(t *testing.T) {
		t.Parallel()

		g := pagegraph.NewGraph(pagegraph.EdgePolicyLast)
		g.AddNode("index")
		g.AddNode("sub/child")
		require.NoError(t, g.AddEdge("index", "sub/child", "Go"))
		require.NoError(t, g.AddEdge("sub/child", "index", "Back & forth"))

		var buf bytes.Buffer
		err := pgetree.NewGraphMLEncoder().EncodeGraph(&buf, g)
		require.NoError(t, err)

		doc := etree.NewDocument()
		require.NoError(t, doc.ReadFromBytes(buf.Bytes()))

		root := doc.Root()
		require.NotNil(t, root)
		assert.Equal(t, "graphml", root.Tag)
		assert.Equal(t, pgetree.GraphMLNamespace, root.SelectAttrValue("xmlns", ""))

		graph := root.SelectElement("graph")
		require.NotNil(t, graph)
		assert.Equal(t, "directed", graph.SelectAttrValue("edgedefault", ""))

		nodes := graph.SelectElements("node")
		require.Len(t, nodes, 2)
		assert.Equal(t, "index", nodes[0].SelectAttrValue("id", ""))
		assert.Equal(t, "sub/child", nodes[1].SelectAttrValue("id", ""))

		edges := graph.SelectElements("edge")
		require.Len(t, edges, 2)
		assert.Equal(t, "index", edges[0].SelectAttrValue("source", ""))
		assert.Equal(t, "sub/child", edges[0].SelectAttrValue("target", ""))
		assert.Equal(t, "Go", edges[0].SelectElement("data").Text())
		assert.Equal(t, "Back & forth", edges[1].SelectElement("data").Text())
	})

	t.Run("declares the relationship key", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := pgetree.NewGraphMLEncoder().EncodeGraph(&buf, pagegraph.NewGraph(""))
		require.NoError(t, err)

		doc := etree.NewDocument()
		require.NoError(t, doc.ReadFromBytes(buf.Bytes()))

		key := doc.FindElement("//key")
		require.NotNil(t, key)
		assert.Equal(t, "relationship", key.SelectAttrValue("id", ""))
		assert.Equal(t, "edge", key.SelectAttrValue("for", ""))
		assert.Empty(t, doc.FindElements("//node"))
	})
}
