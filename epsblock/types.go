package epsblock

import (
	"github.com/katalvlaran/epsclean/lines"
	"github.com/katalvlaran/epsclean/pathgraph"
)

// Policy bundles the three independent grouping options from the engine's
// configuration surface that the state machine and registry need to see
// directly (the fourth, outFile, is the root package's concern alone).
type Policy struct {
	RemoveBoxes  bool
	GroupSoft    bool
	CombineAreas bool
}

// Record is the accumulated per-prefix block state: passthrough content
// line indices, and the stroke/fill graphs fed by every occurrence of this
// prefix seen so far.
type Record struct {
	Prefix      string
	Passthrough []int
	Stroke      *pathgraph.Graph
	Fill        *pathgraph.Graph
	IsFill      bool
	ClipTail    bool
}

func newRecord(prefix string) *Record {
	return &Record{
		Prefix: prefix,
		Stroke: pathgraph.New(pathgraph.WithCollapseParallel()),
		Fill:   pathgraph.New(pathgraph.WithPolygonTrace()),
	}
}

// ItemKind distinguishes the two kinds of entry in a Parse result.
type ItemKind int

const (
	// ItemLine is a free-standing line seen in the Idle state, outside any
	// GS/GR block.
	ItemLine ItemKind = iota
	// ItemBlock is a flushed block record, ready for the writer.
	ItemBlock
)

// Item is one entry of the ordered list [Parse] returns: either a raw line
// or a block, interleaved in final emission order.
type Item struct {
	Kind  ItemKind
	Line  lines.Line
	Block *Record
}
