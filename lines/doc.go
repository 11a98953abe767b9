// Package lines loads an EPS byte stream into an ordered, 1-based-indexable
// sequence of text lines, splitting off the prolog (everything through and
// including a line that reads exactly "%%EndPageSetup") and the trailer
// (everything from a line that reads exactly "%%Trailer" onward).
//
// Line separators (LF or CRLF) are preserved per line rather than
// normalized, so the prolog and trailer can be re-emitted byte-for-byte and
// reconstructed body lines keep whatever separator convention the input
// used.
package lines
