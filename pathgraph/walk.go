package pathgraph

import "sort"

// Seeds returns every vertex with at least one remaining edge, ordered by
// ascending degree (ties broken by vertex id). Degree-1 vertices — the
// endpoints of open polylines — sort first, so a trail walk that starts
// from each seed in this order traces open paths in their natural
// direction before falling back to interior cycles.
func (g *Graph) Seeds() []ID {
	vs := g.Vertices()
	sort.SliceStable(vs, func(i, j int) bool {
		return g.Degree(vs[i]) < g.Degree(vs[j])
	})

	return vs
}
