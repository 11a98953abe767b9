package pathgraph

import "sort"

// ID is an interned vertex identifier. Ids are assigned densely from 0 in
// interning order, so 0 is the first vertex seen; callers obtain them from
// [Graph.Lookup], [Graph.Vertices], [Graph.Neighbors], [Graph.Seeds] or
// [Graph.Polygons], never by fabricating them.
type ID int

// Edge is a directed point-to-point edge as walked by the parser, used to
// reconstruct the polygon-order edge list a fill block was traced in.
type Edge struct {
	From, To ID
}

// GraphOption configures a [Graph] at construction time, mirroring the
// functional-options style used throughout this codebase's ancestry.
type GraphOption func(*Graph)

// WithCollapseParallel deduplicates parallel edges: adding the same
// undirected pair more than once leaves its use-count at 1. Stroke graphs
// use this — a repeated stroke segment is a parsing artifact to remove, not
// a distinct line to redraw.
func WithCollapseParallel() GraphOption {
	return func(g *Graph) { g.collapse = true }
}

// WithPolygonTrace enables per-polygon directed edge-sequence bookkeeping
// via [Graph.AddPolygonEdge] and [Graph.ClosePolygon]. Fill graphs use this
// when area combining is enabled; plain stroke graphs never need it.
func WithPolygonTrace() GraphOption {
	return func(g *Graph) { g.tracing = true }
}

// Graph is an undirected multigraph over interned point ids. It is not
// safe for concurrent use: the engine that owns it is single-threaded by
// design (see the engine's concurrency model), so no locking is attempted.
type Graph struct {
	collapse bool
	tracing  bool

	index  map[string]ID
	labels []string

	// adj[u][v] is the number of remaining (unconsumed) edge uses between
	// u and v. It is kept symmetric: adj[u][v] == adj[v][u] always.
	adj map[ID]map[ID]int

	polygons [][]Edge
	current  []Edge
}

// New creates an empty Graph with the given options applied.
func New(opts ...GraphOption) *Graph {
	g := &Graph{
		index: make(map[string]ID),
		adj:   make(map[ID]map[ID]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// intern returns the id for label, creating one if this is the first time
// label has been seen by this Graph.
func (g *Graph) intern(label string) ID {
	if id, ok := g.index[label]; ok {
		return id
	}

	id := ID(len(g.labels))
	g.index[label] = id
	g.labels = append(g.labels, label)

	return id
}

// Label recovers the verbatim textual point id for id. Point ids are never
// reformatted: whatever string was interned is returned byte-for-byte.
func (g *Graph) Label(id ID) string {
	return g.labels[id]
}

// Lookup returns the id already assigned to label, if any.
func (g *Graph) Lookup(label string) (ID, bool) {
	id, ok := g.index[label]

	return id, ok
}

// Empty reports whether the graph has no edges at all.
func (g *Graph) Empty() bool {
	for _, nbrs := range g.adj {
		for _, use := range nbrs {
			if use > 0 {
				return false
			}
		}
	}

	return true
}

// Vertices returns every vertex id that has at least one edge, in
// ascending id order (which is interning/insertion order).
func (g *Graph) Vertices() []ID {
	out := make([]ID, 0, len(g.adj))
	for u := range g.adj {
		if g.Degree(u) > 0 {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Degree returns the sum of remaining edge uses incident to u.
func (g *Graph) Degree(u ID) int {
	total := 0
	for _, use := range g.adj[u] {
		total += use
	}

	return total
}

// Neighbors returns the ids adjacent to u that still have remaining edge
// uses, in ascending id order.
func (g *Graph) Neighbors(u ID) []ID {
	out := make([]ID, 0, len(g.adj[u]))
	for v, use := range g.adj[u] {
		if use > 0 {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Use returns the number of remaining, unconsumed edges between u and v.
func (g *Graph) Use(u, v ID) int {
	return g.adj[u][v]
}
