package epstoken

import "strings"

// Kind identifies which recognized EPS operator, if any, a line represents.
type Kind int

const (
	// Other is the opaque-passthrough catch-all: anything the engine does
	// not specifically recognize.
	Other Kind = iota
	// GSave is an exact "GS" line: gsave / block start.
	GSave
	// GRestore is an exact "GR" line: grestore / block end.
	GRestore
	// NewPath is an exact "N" line: the prefix/content boundary.
	NewPath
	// ClosePath is an exact "cp" line.
	ClosePath
	// Fill is an exact "f" line.
	Fill
	// Stroke is an exact "S" line, elided by the polyline emitter.
	Stroke
	// Clip is an exact "clip" line.
	Clip
	// MoveTo is a line with the "M" suffix (moveto; precedes a LineTo).
	MoveTo
	// LineTo is a line with the "L" suffix.
	LineTo
	// Rect is a line with the "re" suffix (rectangle).
	Rect
	// SetLineCap is a line with the "setlinecap" suffix.
	SetLineCap
	// SetDash is a line with the "setdash" suffix.
	SetDash
	// LineJoin is a line with the "LJ" suffix.
	LineJoin
	// BitmapBegin is a line with the "%AXGBegin" prefix, opening a raw
	// bitmap-passthrough region.
	BitmapBegin
	// BitmapEnd is a line with the "%AXGEnd" prefix, closing that region.
	BitmapEnd
)

const (
	bitmapBeginPrefix = "%AXGBegin"
	bitmapEndPrefix   = "%AXGEnd"
)

// exact maps a line's full text to its Kind, for the fixed-string
// operators the engine recognizes only as the whole line (no surrounding
// whitespace is tolerated — matches are byte-exact).
var exact = map[string]Kind{
	"GS":   GSave,
	"GR":   GRestore,
	"N":    NewPath,
	"cp":   ClosePath,
	"f":    Fill,
	"S":    Stroke,
	"clip": Clip,
}

// suffixes lists the suffix-matched operators in the order they are
// tested. No entry is a trailing substring of another ("LJ" ends in "J",
// so it never matches the "L" test), so the order does not change the
// result; the two long operator names are simply tested first.
var suffixes = []struct {
	suffix string
	kind   Kind
}{
	{"setlinecap", SetLineCap},
	{"setdash", SetDash},
	{"re", Rect},
	{"M", MoveTo},
	{"L", LineTo},
	{"LJ", LineJoin},
}

// Classify reports the Kind of a single body line. text must already have
// its line separator stripped (see [github.com/katalvlaran/epsclean/lines]).
func Classify(text string) Kind {
	if kind, ok := exact[text]; ok {
		return kind
	}

	switch {
	case strings.HasPrefix(text, bitmapBeginPrefix):
		return BitmapBegin
	case strings.HasPrefix(text, bitmapEndPrefix):
		return BitmapEnd
	}

	for _, s := range suffixes {
		if strings.HasSuffix(text, s.suffix) {
			return s.kind
		}
	}

	return Other
}
