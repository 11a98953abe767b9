package epsblock

import (
	"strings"

	"github.com/katalvlaran/epsclean/epstoken"
	"github.com/katalvlaran/epsclean/lines"
)

const (
	stateIdle = iota
	statePrefix
	stateContent
)

// subpath is one traced M...L...[cp] run, buffered until the block is
// known to be a stroke or a fill so its edges can be routed to the right
// graph (or discarded, if it turns out to precede a clip).
type subpath struct {
	edges [][2]string
}

// machine walks a document body and partitions it into blocks, in the
// style of this codebase's other traversal walkers: a struct holding
// accumulated state plus an explicit run loop, rather than a generated
// parser.
type machine struct {
	doc      *lines.Document
	policy   Policy
	registry *Registry

	state   int
	nesting int

	prefixLines []string
	hasLineCap  bool
	isDashMode  bool
	inBitmap    bool

	fullIdx []int
	passIdx []int

	subpaths      []subpath
	firstPoint    string
	lastPoint     string
	isFillBlock   bool
	badBlock      bool
	prevClosePath bool
	clipTail      bool
}

// Parse partitions doc's body into blocks under policy, returning the
// ordered item list a writer streams to reconstruct the document.
func Parse(doc *lines.Document, policy Policy) []Item {
	m := &machine{
		doc:      doc,
		policy:   policy,
		registry: NewRegistry(policy.GroupSoft),
	}
	m.run()

	return m.registry.Items()
}

func (m *machine) run() {
	n := m.doc.Len()
	i := 1
	for i <= n {
		line := m.doc.At(i)
		switch m.state {
		case stateIdle:
			i = m.stepIdle(i, line)
		case statePrefix:
			i = m.stepPrefix(i, line)
		case stateContent:
			i = m.stepContent(i, line)
		}
	}

	if m.state != stateIdle {
		// Unbalanced input: tolerate by closing the in-progress block as if
		// an implicit GR had been seen.
		m.finishBlock(m.state == statePrefix)
	}

	m.registry.FinalFlush()
}

func (m *machine) stepIdle(i int, line lines.Line) int {
	switch epstoken.Classify(line.Text) {
	case epstoken.GSave:
		m.beginBlock()
		m.state = statePrefix
	case epstoken.GRestore:
		// Stray GR: dropped silently, per the defensive Idle contract.
	default:
		m.registry.AppendLine(Item{Kind: ItemLine, Line: line})
	}

	return i + 1
}

func (m *machine) beginBlock() {
	m.nesting = 0
	m.prefixLines = nil
	m.hasLineCap = false
	m.isDashMode = false
	m.inBitmap = false
	m.fullIdx = nil
	m.passIdx = nil
	m.subpaths = nil
	m.firstPoint = ""
	m.lastPoint = ""
	m.isFillBlock = false
	m.badBlock = false
	m.prevClosePath = false
	m.clipTail = false
}

func (m *machine) stepPrefix(i int, line lines.Line) int {
	text := line.Text

	if m.inBitmap {
		m.prefixLines = append(m.prefixLines, line.String())
		if epstoken.Classify(text) == epstoken.BitmapEnd {
			m.inBitmap = false
		}

		return i + 1
	}

	switch epstoken.Classify(text) {
	case epstoken.BitmapBegin:
		m.inBitmap = true
		m.prefixLines = append(m.prefixLines, line.String())
	case epstoken.GSave:
		m.nesting++
		m.prefixLines = append(m.prefixLines, line.String())
	case epstoken.GRestore:
		if m.nesting == 0 {
			m.finishBlock(true)
			m.state = stateIdle

			return i + 1
		}
		m.nesting--
		m.prefixLines = append(m.prefixLines, line.String())
	case epstoken.NewPath:
		m.state = stateContent
	case epstoken.SetLineCap:
		m.hasLineCap = true
		m.prefixLines = append(m.prefixLines, line.String())
	case epstoken.SetDash:
		m.isDashMode = true
		m.prefixLines = append(m.prefixLines, line.String())
	case epstoken.LineJoin:
		if !m.hasLineCap && !m.isDashMode {
			m.prefixLines = append(m.prefixLines, "1 setlinecap"+line.Sep)
		}
		m.prefixLines = append(m.prefixLines, line.String())
	default:
		m.prefixLines = append(m.prefixLines, line.String())
	}

	return i + 1
}

func (m *machine) stepContent(i int, line lines.Line) int {
	if m.inBitmap {
		m.fullIdx = append(m.fullIdx, i)
		m.passIdx = append(m.passIdx, i)
		if epstoken.Classify(line.Text) == epstoken.BitmapEnd {
			m.inBitmap = false
		}
		m.prevClosePath = false
		m.clipTail = false

		return i + 1
	}

	kind := epstoken.Classify(line.Text)
	next := i + 1

	switch kind {
	case epstoken.BitmapBegin:
		m.inBitmap = true
		m.fullIdx = append(m.fullIdx, i)
		m.passIdx = append(m.passIdx, i)
	case epstoken.GSave:
		m.nesting++
		m.fullIdx = append(m.fullIdx, i)
		m.passIdx = append(m.passIdx, i)
	case epstoken.GRestore:
		if m.nesting == 0 {
			m.finishBlock(false)
			m.state = stateIdle

			return next
		}
		m.nesting--
		m.fullIdx = append(m.fullIdx, i)
		m.passIdx = append(m.passIdx, i)
	case epstoken.MoveTo:
		next = m.handleMoveTo(i)
	case epstoken.LineTo:
		m.handleLineTo(i, line.Text)
	case epstoken.ClosePath:
		m.handleClosePath(i)
	case epstoken.Fill:
		m.handleFill(i)
	case epstoken.Stroke:
		// Silently dropped: the emitter issues its own S.
	case epstoken.Rect:
		if m.policy.RemoveBoxes {
			m.badBlock = true
		} else {
			m.fullIdx = append(m.fullIdx, i)
			m.passIdx = append(m.passIdx, i)
		}
	case epstoken.Clip:
		m.handleClip(i, line)
	default:
		m.fullIdx = append(m.fullIdx, i)
		m.passIdx = append(m.passIdx, i)
	}

	m.prevClosePath = kind == epstoken.ClosePath
	m.clipTail = kind == epstoken.Clip

	return next
}

func (m *machine) handleMoveTo(i int) int {
	from := pointID(m.doc.At(i).Text)

	n := m.doc.Len()
	if i+1 > n {
		m.fullIdx = append(m.fullIdx, i)
		m.firstPoint, m.lastPoint = from, from

		return i + 1
	}

	to := pointID(m.doc.At(i + 1).Text)

	m.subpaths = append(m.subpaths, subpath{})
	cur := &m.subpaths[len(m.subpaths)-1]
	if from != to {
		cur.edges = append(cur.edges, [2]string{from, to})
	}

	m.firstPoint = from
	m.lastPoint = to
	m.fullIdx = append(m.fullIdx, i, i+1)

	return i + 2
}

func (m *machine) handleLineTo(i int, text string) {
	to := pointID(text)

	if len(m.subpaths) > 0 {
		cur := &m.subpaths[len(m.subpaths)-1]
		from := m.lastPoint
		if from != to {
			cur.edges = append(cur.edges, [2]string{from, to})
		}
		m.lastPoint = to
	}

	m.fullIdx = append(m.fullIdx, i)
}

func (m *machine) handleClosePath(i int) {
	if len(m.subpaths) > 0 {
		cur := &m.subpaths[len(m.subpaths)-1]
		if m.lastPoint != m.firstPoint {
			cur.edges = append(cur.edges, [2]string{m.lastPoint, m.firstPoint})
		}
		m.lastPoint = m.firstPoint
	}

	m.fullIdx = append(m.fullIdx, i)
}

func (m *machine) handleFill(i int) {
	m.isFillBlock = true
	m.fullIdx = append(m.fullIdx, i)

	if m.policy.CombineAreas && !m.prevClosePath {
		m.passIdx = append(m.passIdx, i)
	}
}

func (m *machine) handleClip(i int, line lines.Line) {
	for _, idx := range m.fullIdx {
		m.prefixLines = append(m.prefixLines, m.doc.At(idx).String())
	}
	m.prefixLines = append(m.prefixLines, line.String())

	m.subpaths = nil
	m.fullIdx = nil
	m.passIdx = nil
}

// flushSubpaths routes the edges traced since the last clip (or block
// start) into the destination graph appropriate for whether this turned
// out to be a fill block, once that is finally known.
func (m *machine) flushSubpaths(rec *Record) {
	if len(m.subpaths) == 0 {
		return
	}

	switch {
	case m.isFillBlock && m.policy.CombineAreas:
		for _, sp := range m.subpaths {
			for _, e := range sp.edges {
				rec.Fill.AddPolygonEdge(e[0], e[1])
			}
			rec.Fill.ClosePolygon()
		}
	case !m.isFillBlock:
		for _, sp := range m.subpaths {
			for _, e := range sp.edges {
				rec.Stroke.AddEdge(e[0], e[1])
			}
		}
	}

	m.subpaths = nil
}

// finishBlock commits the in-progress block to the registry and resets
// parse state for the next one. emptyContent is true when the block
// closed directly from the Prefix state, having never reached N.
func (m *machine) finishBlock(emptyContent bool) {
	if m.badBlock {
		m.beginBlock()

		return
	}

	prefix := strings.Join(m.prefixLines, "")
	rec := m.registry.Commit(prefix)
	rec.ClipTail = m.clipTail

	if !emptyContent {
		m.flushSubpaths(rec)

		finalPass := m.passIdx
		if m.isFillBlock && !m.policy.CombineAreas {
			finalPass = m.fullIdx
		}
		rec.Passthrough = append(rec.Passthrough, finalPass...)

		if m.isFillBlock {
			rec.IsFill = true
		}
	}

	m.beginBlock()
}

// pointID strips the trailing one-character operator and its preceding
// space from a classified M/L line, yielding the point id.
func pointID(text string) string {
	if text == "" {
		return text
	}

	return strings.TrimRight(text[:len(text)-1], " ")
}
