// Package pathgraph implements the point-adjacency multigraph shared by the
// stroke and fill reconstruction passes of epsclean.
//
// A Graph interns textual point ids (the coordinate substring preceding an
// M/L/cp operator, e.g. "123 456") into small integer vertex ids, and keeps
// an undirected edge-use count per pair of vertices. Stroke graphs collapse
// parallel edges — a duplicate stroke segment is noise, not signal — while
// fill graphs retain multiplicity, since two distinct polygons legitimately
// sharing a boundary edge is exactly what the polygon merger looks for.
//
// Fill graphs additionally record, per polygon, the ordered sequence of
// directed edges the parser walked to trace it (see [Graph.AddPolygonEdge]
// and [Graph.Polygons]); the polygon merger needs that ordering to detect
// self-touching polygons and to relabel merged polygons.
//
// Complexity: interning, edge insertion, and edge-use queries are amortized
// O(1); degree queries are O(deg(v)), and neighbor queries are
// O(deg(v) log deg(v)) since neighbors are returned sorted.
package pathgraph
