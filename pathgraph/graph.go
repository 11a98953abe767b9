package pathgraph

// AddEdge adds an undirected edge between the points named fromLabel and
// toLabel, interning both as needed. A zero-length edge — the two labels
// are byte-identical — is silently discarded and reports false, per the
// engine's simple-graph invariant (no self-loops).
func (g *Graph) AddEdge(fromLabel, toLabel string) bool {
	if fromLabel == toLabel {
		return false
	}

	u := g.intern(fromLabel)
	v := g.intern(toLabel)
	g.link(u, v)

	return true
}

// link records one undirected edge use between u and v. Under
// [WithCollapseParallel], repeated calls for the same pair are idempotent.
func (g *Graph) link(u, v ID) {
	if g.adj[u] == nil {
		g.adj[u] = make(map[ID]int)
	}
	if g.adj[v] == nil {
		g.adj[v] = make(map[ID]int)
	}

	if g.collapse {
		if g.adj[u][v] == 0 {
			g.adj[u][v] = 1
			g.adj[v][u] = 1
		}

		return
	}

	g.adj[u][v]++
	g.adj[v][u]++
}

// AddPolygonEdge behaves like AddEdge but additionally appends the directed
// edge to the polygon currently being traced (see [Graph.ClosePolygon]).
// It panics if the Graph was not constructed with [WithPolygonTrace], since
// that indicates a wiring bug rather than malformed input.
func (g *Graph) AddPolygonEdge(fromLabel, toLabel string) bool {
	if !g.tracing {
		panic("pathgraph: AddPolygonEdge called without WithPolygonTrace")
	}
	if fromLabel == toLabel {
		return false
	}

	u := g.intern(fromLabel)
	v := g.intern(toLabel)
	g.link(u, v)
	g.current = append(g.current, Edge{From: u, To: v})

	return true
}

// ClosePolygon ends the polygon currently being traced, committing its
// directed edge sequence to [Graph.Polygons]. Calling it with no pending
// edges is a no-op, so callers may close defensively between subpaths.
func (g *Graph) ClosePolygon() {
	if len(g.current) == 0 {
		return
	}

	g.polygons = append(g.polygons, g.current)
	g.current = nil
}

// Polygons returns the directed edge sequence recorded for each polygon
// traced so far, in encounter order. The slice and its elements must not be
// mutated by callers; [polygon.Merge] is the only intended consumer.
func (g *Graph) Polygons() [][]Edge {
	return g.polygons
}

// Consume removes one use of the edge between u and v, if any remains. It
// reports whether a use was available to consume.
func (g *Graph) Consume(u, v ID) bool {
	if g.adj[u][v] <= 0 {
		return false
	}

	g.adj[u][v]--
	g.adj[v][u]--

	return true
}
