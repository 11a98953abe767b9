// Package polyline reconstructs continuous M/L/cp/S sequences from a
// block's stroke graph: a greedy, Eulerian-trail-style traversal grounded
// on the teacher's [tsp.EulerianCircuit] (Hierholzer's algorithm), adapted
// from "closed circuit from a fixed start" to "maximal trail from the
// lowest-remaining-degree vertex, possibly open, repeated until every
// edge is consumed."
package polyline
