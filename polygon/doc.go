// Package polygon merges adjacent filled polygons that share an edge and
// re-emits the merged outline as an N/M/L/cp/f sequence.
//
// Merge is new domain logic — no teacher package merges planar polygons —
// built on [pathgraph.Graph]'s multiplicity-aware edge-use accounting and
// the same ascending-degree seed selection [polyline] uses, so the two
// emitters share vertex ordering and edge-consumption bookkeeping even
// though their neighbor-choice rules differ: the polygon emitter prefers
// double-used edges first and disambiguates branching vertices by
// chirality, a left/right test against an already-established winding
// direction. Coordinate arithmetic for that test is grounded on the
// teacher's gridgraph package's integer offset style (gridgraph.go),
// adapted to float64 vectors parsed on demand from point-id strings.
package polygon
