package epstoken_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epsclean/epstoken"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		text string
		want epstoken.Kind
	}{
		{"GS", epstoken.GSave},
		{"GR", epstoken.GRestore},
		{"N", epstoken.NewPath},
		{"cp", epstoken.ClosePath},
		{"f", epstoken.Fill},
		{"S", epstoken.Stroke},
		{"clip", epstoken.Clip},
		{"123 456 M", epstoken.MoveTo},
		{"1 1 L", epstoken.LineTo},
		{"0 0 10 10 re", epstoken.Rect},
		{"1 setlinecap", epstoken.SetLineCap},
		{"[1 2] 0 setdash", epstoken.SetDash},
		{"1 LJ", epstoken.LineJoin},
		{"%AXGBegin a bitmap thing", epstoken.BitmapBegin},
		{"%AXGEnd", epstoken.BitmapEnd},
		{"1 setlinewidth", epstoken.Other},
		{"", epstoken.Other},
	}

	for _, c := range cases {
		require.Equal(t, c.want, epstoken.Classify(c.text), "line %q", c.text)
	}
}
