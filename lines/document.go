package lines

import "io"

// endPageSetup and trailerMarker are the two exact-match lines that bound
// the prolog and trailer, per the engine's external interface contract.
const (
	endPageSetup  = "%%EndPageSetup"
	trailerMarker = "%%Trailer"
)

// Line is a single body line: its text with the trailing separator
// stripped, and the separator itself ("\n", "\r\n", or "" for a final line
// with no trailing newline).
type Line struct {
	Text string
	Sep  string
}

// String reconstructs the line verbatim, separator included.
func (l Line) String() string {
	return l.Text + l.Sep
}

// Document is an EPS file split into its three regions: prolog bytes
// (preserved verbatim), addressable body lines, and trailer bytes
// (preserved verbatim).
type Document struct {
	Prolog  []byte
	Body    []Line
	Trailer []byte
}

// Len returns the number of addressable body lines.
func (d *Document) Len() int {
	return len(d.Body)
}

// At returns the 1-based-indexed body line. Callers in this codebase use
// 1-based indices throughout, matching the engine's data model.
func (d *Document) At(index int) Line {
	return d.Body[index-1]
}

// Load reads r in full and splits it into prolog, body, and trailer
// regions. It never fails to attribute a line: if "%%EndPageSetup" is
// absent, the entire input becomes the prolog; if "%%Trailer" is absent,
// the body runs to end of input and the trailer is empty.
func Load(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	raw := splitRaw(data)
	doc := &Document{}

	i := 0
	for ; i < len(raw); i++ {
		doc.Prolog = append(doc.Prolog, raw[i]...)
		text, _ := splitSeparator(raw[i])
		if text == endPageSetup {
			i++

			break
		}
	}

	for ; i < len(raw); i++ {
		text, sep := splitSeparator(raw[i])
		if text == trailerMarker {
			break
		}
		doc.Body = append(doc.Body, Line{Text: text, Sep: sep})
	}

	for ; i < len(raw); i++ {
		doc.Trailer = append(doc.Trailer, raw[i]...)
	}

	return doc, nil
}
