package polygon

import "github.com/katalvlaran/epsclean/pathgraph"

// key is an undirected edge, vertices ordered so (u,v) and (v,u) collide.
type key struct{ u, v pathgraph.ID }

func undirectedKey(u, v pathgraph.ID) key {
	if u <= v {
		return key{u, v}
	}

	return key{v, u}
}

// openEnds is the pair of endpoints last recorded for a (p,q) merge,
// guarding a second shared edge between the same two polygons against
// disconnecting the outline (see the greedy-merge contract).
type openEnds struct {
	u, v pathgraph.ID
}

// Merge merges g's traced polygons that share an edge, per the engine's
// two-pass greedy algorithm, and returns the resulting N/M/L/cp/f
// sequence. It mutates g: dissolved shared edges are consumed so the
// emission walk sees only the merged outline's remaining edges.
func Merge(g *pathgraph.Graph) []string {
	polys := g.Polygons()
	if len(polys) == 0 {
		return nil
	}

	edgesOf := make([][][2]pathgraph.ID, len(polys))
	for i, p := range polys {
		for _, e := range p {
			edgesOf[i] = append(edgesOf[i], [2]pathgraph.ID{e.From, e.To})
		}
	}

	selfTouch := make([]bool, len(polys))
	excluded := make(map[key]bool)
	for i := range edgesOf {
		markSelfTouch(i, edgesOf, selfTouch, excluded)
	}

	rep := make([]int, len(polys))
	for i := range rep {
		rep[i] = i
	}
	find := makeFind(rep)

	owner := make(map[key]int)
	touched := make(map[[2]int]openEnds)

	for p := 0; p < len(polys); p++ {
		if find(p) != p {
			continue
		}

		handled, dissolved := mergeOnePass(g, p, edgesOf, selfTouch, excluded, owner, touched, find)

		edgesOf[p] = filterOut(edgesOf[p], dissolved)
		for q := range handled {
			rep[q] = p
			edgesOf[p] = append(edgesOf[p], filterOut(edgesOf[q], dissolved)...)
			edgesOf[q] = nil
		}

		markSelfTouch(p, edgesOf, selfTouch, excluded)
	}

	return emit(g)
}

// mergeOnePass walks polygon p's own edges once, claiming unowned edges
// and removing the first shared edge found with each distinct neighbor
// polygon q (or, on a second shared edge with the same q, removing it only
// when doing so provably cannot disconnect the outline). It returns the
// set of polygon ids merged into p during this pass and the set of edges
// dissolved by those merges.
func mergeOnePass(
	g *pathgraph.Graph,
	p int,
	edgesOf [][][2]pathgraph.ID,
	selfTouch []bool,
	excluded map[key]bool,
	owner map[key]int,
	touched map[[2]int]openEnds,
	find func(int) int,
) (handled map[int]bool, dissolved map[key]bool) {
	handled = make(map[int]bool)
	dissolved = make(map[key]bool)

	for _, e := range edgesOf[p] {
		u, v := e[0], e[1]
		k := undirectedKey(u, v)
		if excluded[k] {
			continue
		}

		o, ok := owner[k]
		if !ok {
			owner[k] = p

			continue
		}

		q := find(o)
		if q == p || selfTouch[q] {
			continue
		}

		pair := [2]int{p, q}
		ends, wasTouched := touched[pair]
		switch {
		case !wasTouched:
			g.Consume(u, v)
			g.Consume(u, v)
			delete(owner, k)
			touched[pair] = openEnds{u: u, v: v}
			handled[q] = true
			dissolved[k] = true
		case (u == ends.u || u == ends.v || v == ends.u || v == ends.v) && g.Use(u, v) <= 1:
			g.Consume(u, v)
			delete(owner, k)
			touched[pair] = openEnds{u: u, v: v}
			handled[q] = true
			dissolved[k] = true
		}
	}

	return handled, dissolved
}

func filterOut(edges [][2]pathgraph.ID, dissolved map[key]bool) [][2]pathgraph.ID {
	out := edges[:0:0]
	for _, e := range edges {
		if !dissolved[undirectedKey(e[0], e[1])] {
			out = append(out, e)
		}
	}

	return out
}

func markSelfTouch(i int, edgesOf [][][2]pathgraph.ID, selfTouch []bool, excluded map[key]bool) {
	seen := make(map[key]int)
	for _, e := range edgesOf[i] {
		seen[undirectedKey(e[0], e[1])]++
	}
	for k, c := range seen {
		if c >= 2 {
			selfTouch[i] = true
			excluded[k] = true
		}
	}
}

func makeFind(rep []int) func(int) int {
	var find func(int) int
	find = func(x int) int {
		for rep[x] != x {
			rep[x] = rep[rep[x]]
			x = rep[x]
		}

		return x
	}

	return find
}
