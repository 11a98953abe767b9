// Package epsclean reconstructs fragmented Encapsulated PostScript (EPS)
// output from numerical-plotting toolkits.
//
// 🚀 What is epsclean?
//
//	A streaming post-processor that takes an EPS file whose vector output
//	is pathologically fragmented — thousands of one-segment paths and
//	one-polygon fills, each its own gsave/grestore block — and rewrites it
//	into a file with far fewer blocks, continuous polylines, and (optionally)
//	merged fill regions, while leaving everything it does not understand
//	byte-for-byte untouched.
//
// ✨ Why use it?
//
//   - Smaller files, fewer layers in downstream vector editors
//   - No thin anti-aliasing gaps between polygons that should read as one region
//   - Deterministic: same input + options always produce the same output
//
// Under the hood, the engine is organized as a small pipeline:
//
//	lines/     — line-oriented reader that isolates prolog/body/trailer
//	epstoken/  — stateless classification of each body line
//	epsblock/  — the GS/GR block state machine and prefix registry
//	pathgraph/ — the point-adjacency multigraph shared by strokes and fills
//	polyline/  — reconstructs continuous M/L/cp/S sequences from a stroke graph
//	polygon/   — merges adjacent fill polygons that share an edge
//	epswriter/ — streams the reconstructed document back out
//
// Call [Clean] or [CleanFile] to run the full pipeline:
//
//	err := epsclean.CleanFile("figure.eps",
//	    epsclean.WithGroupSoft(true),
//	    epsclean.WithCombineAreas(true),
//	)
//
//	go get github.com/katalvlaran/epsclean
package epsclean
