package lines_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epsclean/lines"
)

func TestLoad_SplitsProlongBodyTrailer(t *testing.T) {
	input := "%!PS-Adobe\n%%EndPageSetup\nGS\n1 setlinewidth\nGR\n%%Trailer\n%%EOF\n"

	doc, err := lines.Load(strings.NewReader(input))
	require.NoError(t, err)

	require.Equal(t, "%!PS-Adobe\n%%EndPageSetup\n", string(doc.Prolog))
	require.Equal(t, "%%Trailer\n%%EOF\n", string(doc.Trailer))
	require.Equal(t, 3, doc.Len())
	require.Equal(t, "GS", doc.At(1).Text)
	require.Equal(t, "\n", doc.At(1).Sep)
	require.Equal(t, "GR", doc.At(3).Text)
}

func TestLoad_PreservesCRLF(t *testing.T) {
	input := "%%EndPageSetup\r\nGS\r\nGR\r\n%%Trailer\r\n"

	doc, err := lines.Load(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, "\r\n", doc.At(1).Sep)
	require.Equal(t, "GS\r\nGR\r\n", doc.At(1).String()+doc.At(2).String())
}

func TestLoad_MissingMarkersTolerated(t *testing.T) {
	doc, err := lines.Load(strings.NewReader("GS\nGR\n"))
	require.NoError(t, err)
	require.Equal(t, "GS\nGR\n", string(doc.Prolog))
	require.Equal(t, 0, doc.Len())
	require.Empty(t, doc.Trailer)
}

func TestLoad_NoTrailingNewline(t *testing.T) {
	input := "%%EndPageSetup\nGS\nGR"

	doc, err := lines.Load(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, "GR", doc.At(2).Text)
	require.Equal(t, "", doc.At(2).Sep)
}
