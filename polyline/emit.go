package polyline

import "github.com/katalvlaran/epsclean/pathgraph"

// Emit traces g's stroke edges into a deterministic sequence of M/L/cp
// lines terminated by a single S, consuming every edge exactly once. It
// returns nil for an empty graph.
//
// Vertices are (re-)selected by ascending remaining degree before every
// new trail: a degree-1 endpoint is always preferred while one remains, so
// open polylines are traced from one end to the other before any interior
// cycle is touched. A vertex whose incident edges were only partly drained
// by an earlier trail is revisited once its turn comes again, guaranteeing
// every edge is eventually consumed regardless of branching.
func Emit(g *pathgraph.Graph) []string {
	if g.Empty() {
		return nil
	}

	var out []string
	for !g.Empty() {
		seeds := g.Seeds()
		seed := seeds[0]

		firstNode := seed
		cur := seed
		emittedMove := false

		for g.Degree(cur) > 0 {
			next := g.Neighbors(cur)[0]
			if !emittedMove {
				out = append(out, g.Label(cur)+" M")
				firstNode = cur
				emittedMove = true
			}

			g.Consume(cur, next)
			if next == firstNode {
				out = append(out, "cp")
			} else {
				out = append(out, g.Label(next)+" L")
			}

			cur = next
		}
	}

	if len(out) == 0 {
		return nil
	}

	return append(out, "S")
}
