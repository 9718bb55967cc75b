// seehuhn.de/go/polyfill - scanline polygon filling
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package polyfill

import (
	"bytes"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"testing"
)

func TestFillSquare(t *testing.T) {
	c := Canvas{Width: 100, Height: 100}
	square := []Point{{10, 10}, {50, 10}, {50, 50}, {10, 50}}

	// The top side is horizontal, and both vertical sides start at a
	// valley, so the first row filled is 11.  Scanline 50 is where both
	// sides end.  Span end points are inclusive.
	var want []Span
	for y := 11; y < 50; y++ {
		want = append(want, Span{Y: y, X1: 10, X2: 50})
	}
	got := slices.Collect(c.Fill(square))
	diff(t, want, got)

	if a := Area(c.Fill(square)); a != 39*41 {
		t.Errorf("area = %d, want %d", a, 39*41)
	}
}

// TestFillRounding checks the round-half-up rule on a triangle whose edges
// pass through x.5 on every second scanline.
func TestFillRounding(t *testing.T) {
	c := Canvas{Width: 16, Height: 16}
	tri := []Point{{0, 0}, {10, 0}, {5, 10}}

	want := []Span{
		{Y: 1, X1: 1, X2: 10}, // 0.5 and 9.5
		{Y: 2, X1: 1, X2: 9},
		{Y: 3, X1: 2, X2: 9}, // 1.5 and 8.5
		{Y: 4, X1: 2, X2: 8},
		{Y: 5, X1: 3, X2: 8},
		{Y: 6, X1: 3, X2: 7},
		{Y: 7, X1: 4, X2: 7},
		{Y: 8, X1: 4, X2: 6},
		{Y: 9, X1: 5, X2: 6},
	}
	diff(t, want, slices.Collect(c.Fill(tri)))
}

func TestFillDiamond(t *testing.T) {
	c := Canvas{Width: 12, Height: 12}
	diamond := []Point{{5, 0}, {10, 5}, {5, 10}, {0, 5}}

	var want []Span
	for y := 1; y < 10; y++ {
		d := 5 - y
		if d < 0 {
			d = -d
		}
		want = append(want, Span{Y: y, X1: d, X2: 10 - d})
	}
	diff(t, want, slices.Collect(c.Fill(diamond)))
}

func TestFillTwoVertices(t *testing.T) {
	c := Canvas{Width: 16, Height: 16}

	var want []Span
	for y := 1; y < 10; y++ {
		want = append(want, Span{Y: y, X1: y, X2: y})
	}
	diff(t, want, slices.Collect(c.Fill([]Point{{0, 0}, {10, 10}})))
}

func TestFillClipped(t *testing.T) {
	c := Canvas{Width: 100, Height: 64}
	rect := []Point{{40, 10}, {150, 10}, {150, 50}, {40, 50}}
	for s := range c.Fill(rect) {
		if s.X1 != 40 || s.X2 != 99 {
			t.Fatalf("unexpected span %v", s)
		}
	}

	left := []Point{{-20, 10}, {30, 10}, {30, 40}, {-20, 40}}
	for s := range c.Fill(left) {
		if s.X1 != 0 || s.X2 != 30 {
			t.Fatalf("unexpected span %v", s)
		}
	}

	// the lower half of this diamond is below the canvas
	tall := []Point{{32, 44}, {48, 60}, {32, 76}, {16, 60}}
	last := -1
	for s := range c.Fill(tall) {
		last = s.Y
	}
	if last != 63 {
		t.Errorf("last scanline %d, want 63", last)
	}
}

func TestFillEmpty(t *testing.T) {
	tri := []Point{{0, 0}, {10, 0}, {5, 10}}
	cases := []struct {
		name     string
		c        Canvas
		vertices []Point
	}{
		{"no_vertices", Canvas{10, 10}, nil},
		{"one_vertex", Canvas{10, 10}, []Point{{5, 5}}},
		{"horizontal_only", Canvas{10, 10}, []Point{{1, 5}, {8, 5}, {4, 5}}},
		{"zero_height", Canvas{10, 0}, tri},
		{"zero_width", Canvas{0, 10}, tri},
		{"negative", Canvas{-5, -5}, tri},
		{"outside", Canvas{10, 10}, []Point{{0, 20}, {10, 20}, {5, 30}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for s := range c.c.Fill(c.vertices) {
				t.Errorf("unexpected span %v", s)
			}
		})
	}

	if n := Area(Fill(nil, 10, 10)); n != 0 {
		t.Errorf("nil table: area %d", n)
	}
}

func TestFillUnpaired(t *testing.T) {
	et := EdgeTable{
		{{MinY: 0, MaxY: 3, X: 2.5, InvSlope: 1}},
		nil, nil, nil, nil,
	}
	want := []Span{
		{Y: 0, X1: 3, X2: 3},
		{Y: 1, X1: 4, X2: 4},
		{Y: 2, X1: 5, X2: 5},
	}
	diff(t, want, slices.Collect(Fill(et, 10, 5)))

	// the single pixel is dropped when it is off the canvas
	off := EdgeTable{{{MinY: 0, MaxY: 3, X: -2, InvSlope: 0}}}
	if n := Area(Fill(off, 10, 5)); n != 0 {
		t.Errorf("off-canvas unpaired edge: area %d", n)
	}
}

func TestFillIdempotent(t *testing.T) {
	vertices := []Point{{8, 8}, {56, 32}, {8, 56}, {32, 32}}
	et := BuildEdgeTable(vertices, 64)
	before := slices.Clone(et[9])

	seq := Fill(et, 64, 64)
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	third := slices.Collect(Fill(et, 64, 64))

	if len(first) == 0 {
		t.Fatal("no spans")
	}
	diff(t, first, second)
	diff(t, first, third)
	diff(t, before, et[9])
}

func TestFillConcurrent(t *testing.T) {
	vertices := []Point{{200, 56}, {312, 56}, {456, 200}, {456, 312},
		{312, 456}, {200, 456}, {56, 312}, {56, 200}}
	et := BuildEdgeTable(vertices, 512)
	want := slices.Collect(Fill(et, 512, 512))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := slices.Collect(Fill(et, 512, 512))
			if !slices.Equal(want, got) {
				t.Error("concurrent fill gave different result")
			}
		}()
	}
	wg.Wait()
}

func TestFillStop(t *testing.T) {
	c := Canvas{Width: 100, Height: 100}
	square := []Point{{10, 10}, {50, 10}, {50, 50}, {10, 50}}

	n := 0
	for s := range c.Fill(square) {
		n++
		if s.Y == 20 {
			break
		}
	}
	if n != 10 {
		t.Errorf("got %d spans before stopping, want 10", n)
	}
}

func TestFillSnapshot(t *testing.T) {
	c := Canvas{Width: 64, Height: 64}
	vertices := []Point{{10, 10}, {40, 10}, {40, 40}, {10, 40}}
	want := slices.Collect(c.Fill(vertices))

	seq := c.Fill(vertices)
	vertices[1] = Pt(60, 10)
	vertices[2] = Pt(60, 40)
	diff(t, want, slices.Collect(seq))
}

func TestRound(t *testing.T) {
	cases := []struct {
		in  float64
		out int
	}{
		{0, 0},
		{0.49, 0},
		{0.5, 1},
		{2.5, 3},
		{2.51, 3},
		{-0.5, 0},
		{-0.51, -1},
		{-2.5, -2},
	}
	for _, c := range cases {
		if got := round(c.in); got != c.out {
			t.Errorf("round(%g) = %d, want %d", c.in, got, c.out)
		}
	}
}

func TestFillLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	et := EdgeTable{{{MinY: 0, MaxY: 1, X: 1, InvSlope: 0}}}
	Area(Fill(et, 4, 4))
	BuildEdgeTable([]Point{{0, -5}, {4, -5}, {4, 2}}, 4)

	out := buf.String()
	for _, msg := range []string{"unpaired active edge", "edge starts outside canvas"} {
		if !strings.Contains(out, msg) {
			t.Errorf("log does not contain %q:\n%s", msg, out)
		}
	}
}
