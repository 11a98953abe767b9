package polygon

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/epsclean/pathgraph"
)

// emit traces g's surviving edges into an N/M/L/cp/f sequence. It mirrors
// polyline.Emit's ascending-degree seed selection and consume-once trail
// walk, with two refinements: neighbors are tried in descending residual
// use count (double-used boundary edges first), and a vertex with two or
// more live choices is disambiguated by chirality once a winding direction
// has been established.
func emit(g *pathgraph.Graph) []string {
	if g.Empty() {
		return nil
	}

	out := []string{"N"}

	for !g.Empty() {
		seed := g.Seeds()[0]

		firstNode := seed
		cur := seed
		prev := seed
		havePrev := false
		emittedMove := false
		chirality := 0

		for g.Degree(cur) > 0 {
			nbrs := neighborsByDescendingUse(g, cur)
			next := chooseNeighbor(g, prev, cur, havePrev, nbrs, &chirality)

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

			prev, havePrev = cur, true
			cur = next
		}
	}

	return append(out, "f")
}

func neighborsByDescendingUse(g *pathgraph.Graph, u pathgraph.ID) []pathgraph.ID {
	nbrs := g.Neighbors(u)
	sort.SliceStable(nbrs, func(i, j int) bool {
		return g.Use(u, nbrs[i]) > g.Use(u, nbrs[j])
	})

	return nbrs
}

// chooseNeighbor picks the next vertex to visit from cur. chirality is 0
// until a branching, double-used edge forces a winding-direction choice;
// once that choice sets it to ±1, subsequent branches must agree with it (a
// colinear choice leaves it 0, so the next branch chooses afresh).
func chooseNeighbor(g *pathgraph.Graph, prev, cur pathgraph.ID, havePrev bool, nbrs []pathgraph.ID, chirality *int) pathgraph.ID {
	if len(nbrs) < 2 || !havePrev {
		return nbrs[0]
	}

	if *chirality != 0 {
		for _, cand := range nbrs {
			if side, ok := chiralitySide(g, prev, cur, cand); ok && side == *chirality {
				return cand
			}
		}

		return nbrs[0]
	}

	if g.Use(cur, nbrs[0]) != 2 {
		return nbrs[0]
	}

	n, a := nbrs[0], nbrs[1]
	sideN, okN := chiralitySide(g, prev, cur, n)
	sideA, okA := chiralitySide(g, prev, cur, a)
	if !okN || !okA {
		return n
	}

	if sideN != sideA {
		*chirality = sideN

		return n
	}

	// Same side: the tighter turn (larger dot product) wins.
	_, dotN, _ := vectorsCrossDot(g, prev, cur, n)
	_, dotA, _ := vectorsCrossDot(g, prev, cur, a)
	if dotN >= dotA {
		*chirality = sideN

		return n
	}
	*chirality = sideA

	return a
}

// chiralitySide reports the sign of the cross product of the candidate
// direction (cur->cand) with the incoming direction (prev->cur): +1 when the
// candidate turns right, -1 when it turns left, 0 colinear. ok is false if either point id fails to parse as
// coordinates.
func chiralitySide(g *pathgraph.Graph, prev, cur, cand pathgraph.ID) (int, bool) {
	cross, _, ok := vectorsCrossDot(g, prev, cur, cand)
	if !ok {
		return 0, false
	}

	switch {
	case cross > 0:
		return 1, true
	case cross < 0:
		return -1, true
	default:
		return 0, true
	}
}

func vectorsCrossDot(g *pathgraph.Graph, prev, cur, cand pathgraph.ID) (cross, dot float64, ok bool) {
	px, py, ok1 := parsePoint(g.Label(prev))
	cx, cy, ok2 := parsePoint(g.Label(cur))
	nx, ny, ok3 := parsePoint(g.Label(cand))
	if !ok1 || !ok2 || !ok3 {
		return 0, 0, false
	}

	v1x, v1y := cx-px, cy-py
	v2x, v2y := nx-cx, ny-cy

	cross = v2x*v1y - v2y*v1x
	dot = v2x*v1x + v2y*v1y

	return cross, dot, true
}

func parsePoint(label string) (x, y float64, ok bool) {
	parts := strings.SplitN(label, " ", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}

	x, err1 := strconv.ParseFloat(parts[0], 64)
	y, err2 := strconv.ParseFloat(parts[1], 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}

	return x, y, true
}
