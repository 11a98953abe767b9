package epswriter_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epsclean/epsblock"
	"github.com/katalvlaran/epsclean/epswriter"
	"github.com/katalvlaran/epsclean/lines"
)

func clean(t *testing.T, input string, policy epsblock.Policy) string {
	t.Helper()

	doc, err := lines.Load(strings.NewReader(input))
	require.NoError(t, err)

	items := epsblock.Parse(doc, policy)

	var buf bytes.Buffer
	require.NoError(t, epswriter.Write(&buf, doc, items))

	return buf.String()
}

func TestWrite_ProloguAndTrailerPreservedVerbatim(t *testing.T) {
	input := "%!PS-Adobe\n%%EndPageSetup\nGS\nN\nGR\n%%Trailer\n%%EOF\n"
	out := clean(t, input, epsblock.Policy{})
	require.True(t, strings.HasPrefix(out, "%!PS-Adobe\n%%EndPageSetup\n"))
	require.True(t, strings.HasSuffix(out, "%%Trailer\n%%EOF\n"))
}

func TestWrite_SegmentRejoining(t *testing.T) {
	input := "%%EndPageSetup\n" +
		"GS\nN\n0 0 M\n1 0 L\nGR\n" +
		"GS\nN\n1 0 M\n2 0 L\nGR\n" +
		"%%Trailer\n"
	out := clean(t, input, epsblock.Policy{})

	require.Equal(t, 1, strings.Count(out, "GS\n"))
	require.Equal(t, 1, strings.Count(out, "GR\n"))
	require.Contains(t, out, "0 0 M")
	require.Contains(t, out, "2 0 L")
	require.NotContains(t, out, "1 0 M")
}

func TestWrite_ClosedPolylineGetsClosePath(t *testing.T) {
	input := "%%EndPageSetup\n" +
		"GS\nN\n0 0 M\n1 0 L\n1 1 L\n0 0 L\nGR\n" +
		"%%Trailer\n"
	out := clean(t, input, epsblock.Policy{})
	require.Contains(t, out, "cp\n")
	require.Contains(t, out, "S\n")
}

func TestWrite_FillBlockWithCombineAreasReroutesThroughPolygonMerge(t *testing.T) {
	input := "%%EndPageSetup\n" +
		"GS\nN\n0 0 M\n1 0 L\n1 1 L\n0 1 L\ncp\nf\nGR\n" +
		"%%Trailer\n"
	out := clean(t, input, epsblock.Policy{CombineAreas: true})
	require.Contains(t, out, "N\n")
	require.Contains(t, out, "f\n")
	require.Contains(t, out, "cp\n")
}

func TestWrite_ClipTailSuppressesSyntheticN(t *testing.T) {
	input := "%%EndPageSetup\nGS\nN\n0 0 M\n1 0 L\ncp\nclip\nGR\n%%Trailer\n"
	out := clean(t, input, epsblock.Policy{})
	require.Contains(t, out, "clip\n")
	// The clip path is folded into the prefix and the block has no further
	// content, so no synthetic N is emitted before GR.
	require.True(t, strings.HasSuffix(strings.TrimSuffix(out, "%%Trailer\n"), "clip\nGR\n"))
}

func TestWrite_RemoveBoxesDropsRectOnlyBlock(t *testing.T) {
	input := "%%EndPageSetup\n" +
		"GS\nN\n0 0 10 10 re\nGR\n" +
		"GS\nN\n0 0 M\n1 1 L\nGR\n" +
		"%%Trailer\n"
	out := clean(t, input, epsblock.Policy{RemoveBoxes: true})
	require.NotContains(t, out, "re\n")
	require.Contains(t, out, "0 0 M")
}

func TestWrite_IdempotentOnSecondPass(t *testing.T) {
	input := "%%EndPageSetup\n" +
		"GS\nN\n0 0 M\n1 0 L\nGR\n" +
		"GS\nN\n1 0 M\n2 0 L\nGR\n" +
		"%%Trailer\n"
	first := clean(t, input, epsblock.Policy{})
	second := clean(t, first, epsblock.Policy{})
	require.Equal(t, first, second)
}

func TestWrite_IdleLinesPassThroughUntouched(t *testing.T) {
	input := "%%EndPageSetup\n%a free comment\nGS\nN\nGR\n%%Trailer\n"
	out := clean(t, input, epsblock.Policy{})
	require.Contains(t, out, "%a free comment\n")
}
