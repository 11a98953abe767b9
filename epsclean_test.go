package epsclean_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epsclean"
)

func TestClean_BasicRoundTrip(t *testing.T) {
	input := "%!PS-Adobe\n%%EndPageSetup\n" +
		"GS\nN\n0 0 M\n1 0 L\nGR\n" +
		"GS\nN\n1 0 M\n2 0 L\nGR\n" +
		"%%Trailer\n%%EOF\n"

	var out bytes.Buffer
	require.NoError(t, epsclean.Clean(strings.NewReader(input), &out))

	got := out.String()
	require.True(t, strings.HasPrefix(got, "%!PS-Adobe\n%%EndPageSetup\n"))
	require.True(t, strings.HasSuffix(got, "%%Trailer\n%%EOF\n"))
	require.Equal(t, 1, strings.Count(got, "GS\n"))
}

func TestClean_RemoveBoxes(t *testing.T) {
	input := "%%EndPageSetup\n" +
		"GS\nN\n0 0 10 10 re\nGR\n" +
		"%%Trailer\n"

	var out bytes.Buffer
	require.NoError(t, epsclean.Clean(strings.NewReader(input), &out, epsclean.WithRemoveBoxes(true)))
	require.NotContains(t, out.String(), "GS\n")
}

func TestCleanFile_InPlaceRenamesOverOriginal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "figure.eps")
	input := "%%EndPageSetup\nGS\nN\n0 0 M\n1 1 L\nGR\n%%Trailer\n"
	require.NoError(t, os.WriteFile(path, []byte(input), 0o644))

	require.NoError(t, epsclean.CleanFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "0 0 M")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no leftover temp file after rename")
}

func TestCleanFile_SeparateOutFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.eps")
	dst := filepath.Join(dir, "out.eps")
	input := "%%EndPageSetup\nGS\nN\n0 0 M\n1 1 L\nGR\n%%Trailer\n"
	require.NoError(t, os.WriteFile(src, []byte(input), 0o644))

	require.NoError(t, epsclean.CleanFile(src, epsclean.WithOutFile(dst)))

	original, err := os.ReadFile(src)
	require.NoError(t, err)
	require.Equal(t, input, string(original))

	cleaned, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Contains(t, string(cleaned), "0 0 M")
}

func TestCleanFile_MissingInputIsFatal(t *testing.T) {
	err := epsclean.CleanFile(filepath.Join(t.TempDir(), "missing.eps"))
	require.ErrorIs(t, err, epsclean.ErrOpenInput)
}
