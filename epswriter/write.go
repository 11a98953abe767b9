package epswriter

import (
	"io"

	"github.com/katalvlaran/epsclean/epsblock"
	"github.com/katalvlaran/epsclean/lines"
	"github.com/katalvlaran/epsclean/polygon"
	"github.com/katalvlaran/epsclean/polyline"
)

// Write streams doc's prolog verbatim, then items in order — a raw line for
// each [epsblock.ItemLine], a reconstructed GS/prefix/content/GR block for
// each [epsblock.ItemBlock] — and finally doc's trailer verbatim.
func Write(w io.Writer, doc *lines.Document, items []epsblock.Item) error {
	sep := defaultSep(doc)

	if _, err := w.Write(doc.Prolog); err != nil {
		return err
	}

	for _, it := range items {
		switch it.Kind {
		case epsblock.ItemLine:
			if _, err := io.WriteString(w, it.Line.String()); err != nil {
				return err
			}
		case epsblock.ItemBlock:
			if err := writeBlock(w, doc, it.Block, sep); err != nil {
				return err
			}
		}
	}

	_, err := w.Write(doc.Trailer)

	return err
}

func writeBlock(w io.Writer, doc *lines.Document, rec *epsblock.Record, sep string) error {
	if err := writeLine(w, "GS", sep); err != nil {
		return err
	}
	if rec.Prefix != "" {
		if _, err := io.WriteString(w, rec.Prefix); err != nil {
			return err
		}
	}

	if rec.Stroke.Empty() && rec.Fill.Empty() {
		if !rec.ClipTail {
			if err := writeLine(w, "N", sep); err != nil {
				return err
			}
		}
	} else {
		if !rec.Stroke.Empty() {
			if err := writeLine(w, "N", sep); err != nil {
				return err
			}
		}
		for _, l := range polyline.Emit(rec.Stroke) {
			if err := writeLine(w, l, sep); err != nil {
				return err
			}
		}
		for _, l := range polygon.Merge(rec.Fill) {
			if err := writeLine(w, l, sep); err != nil {
				return err
			}
		}
	}

	for _, idx := range rec.Passthrough {
		if err := writeLine(w, doc.At(idx).Text, sep); err != nil {
			return err
		}
	}

	return writeLine(w, "GR", sep)
}

func writeLine(w io.Writer, text, sep string) error {
	_, err := io.WriteString(w, text+sep)

	return err
}

// defaultSep picks the line separator to use for lines this package
// synthesizes (GS, N, GR, and the reconstructed path operators), matching
// whatever the document's own body lines use so a CRLF input round-trips as
// CRLF. It falls back to "\n" for a body with no separator evidence at all
// (a single-line or empty body).
func defaultSep(doc *lines.Document) string {
	for _, l := range doc.Body {
		if l.Sep != "" {
			return l.Sep
		}
	}

	return "\n"
}
