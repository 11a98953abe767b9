package pathgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epsclean/pathgraph"
)

func TestAddEdge_DiscardsZeroLength(t *testing.T) {
	g := pathgraph.New()

	ok := g.AddEdge("1 1", "1 1")
	require.False(t, ok)
	require.True(t, g.Empty())
}

func TestAddEdge_InternsAndTracksDegree(t *testing.T) {
	g := pathgraph.New()

	require.True(t, g.AddEdge("0 0", "1 0"))
	require.True(t, g.AddEdge("1 0", "2 0"))

	a, ok := g.Lookup("0 0")
	require.True(t, ok)
	b, ok := g.Lookup("1 0")
	require.True(t, ok)
	c, ok := g.Lookup("2 0")
	require.True(t, ok)

	require.Equal(t, 1, g.Degree(a))
	require.Equal(t, 2, g.Degree(b))
	require.Equal(t, 1, g.Degree(c))
	require.Equal(t, "1 0", g.Label(b))
}

func TestCollapseParallel_Dedupes(t *testing.T) {
	g := pathgraph.New(pathgraph.WithCollapseParallel())

	g.AddEdge("0 0", "1 0")
	g.AddEdge("0 0", "1 0")
	g.AddEdge("1 0", "0 0")

	a, _ := g.Lookup("0 0")
	b, _ := g.Lookup("1 0")
	require.Equal(t, 1, g.Use(a, b))
}

func TestMultiplicity_Retained(t *testing.T) {
	g := pathgraph.New()

	g.AddEdge("0 0", "1 0")
	g.AddEdge("0 0", "1 0")

	a, _ := g.Lookup("0 0")
	b, _ := g.Lookup("1 0")
	require.Equal(t, 2, g.Use(a, b))
}

func TestConsume(t *testing.T) {
	g := pathgraph.New()
	g.AddEdge("0 0", "1 0")

	a, _ := g.Lookup("0 0")
	b, _ := g.Lookup("1 0")

	require.True(t, g.Consume(a, b))
	require.Equal(t, 0, g.Use(a, b))
	require.False(t, g.Consume(a, b))
}

func TestSeeds_AscendingDegree(t *testing.T) {
	g := pathgraph.New()
	// 0-1-2 open chain plus a 3-4 isolated edge: vertex 1 has degree 2,
	// all others have degree 1.
	g.AddEdge("0 0", "1 0")
	g.AddEdge("1 0", "2 0")
	g.AddEdge("3 0", "4 0")

	seeds := g.Seeds()
	require.Len(t, seeds, 5)

	one, _ := g.Lookup("1 0")
	// The degree-2 vertex must not be the first seed.
	require.NotEqual(t, one, seeds[0])
}

func TestPolygonTrace(t *testing.T) {
	g := pathgraph.New(pathgraph.WithPolygonTrace())

	g.AddPolygonEdge("0 0", "1 0")
	g.AddPolygonEdge("1 0", "1 1")
	g.AddPolygonEdge("1 1", "0 0")
	g.ClosePolygon()

	polys := g.Polygons()
	require.Len(t, polys, 1)
	require.Len(t, polys[0], 3)
}

func TestPolygonTrace_PanicsWithoutOption(t *testing.T) {
	g := pathgraph.New()
	require.Panics(t, func() {
		g.AddPolygonEdge("0 0", "1 0")
	})
}
