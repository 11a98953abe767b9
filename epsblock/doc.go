// Package epsblock implements the GS/GR block state machine and the
// prefix-keyed block registry: the core partitioning of an EPS body into
// blocks, each reduced to a prefix plus a stroke graph, a fill graph, and a
// list of passthrough content lines.
//
// The machine is a small struct-based walker, in the style of this
// codebase's other traversal walkers: it holds accumulated parse state in
// fields and advances an explicit line cursor, rather than recursing or
// generating a parser. GS/GR nesting is tracked with a plain int counter,
// exactly as the engine's design notes allow.
//
// Parse returns an ordered list of [Item] values: free-standing lines seen
// outside any block, interleaved with the blocks as they are flushed from
// the [Registry], in final emission order. A caller (see
// [github.com/katalvlaran/epsclean/epswriter]) streams that list to
// reconstruct the document body.
package epsblock
