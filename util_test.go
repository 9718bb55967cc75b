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
	"image"
	"iter"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Errorf("unexpected result (-want +got):\n%s", d)
	}
}

// points converts catalogue vertices to Points.
func points(pts []image.Point) []Point {
	res := make([]Point, len(pts))
	for i, p := range pts {
		res[i] = Pt(p.X, p.Y)
	}
	return res
}

// pixels returns the set of pixels covered by the spans.
func pixels(spans iter.Seq[Span]) map[Point]bool {
	res := make(map[Point]bool)
	for s := range spans {
		for x := s.X1; x <= s.X2; x++ {
			res[Pt(x, s.Y)] = true
		}
	}
	return res
}

// referenceFill computes the spans of a polygon by intersecting every
// scanline with every edge directly, instead of updating the edge
// positions incrementally.  Both methods give bit-identical x values when
// all inverse slopes are dyadic fractions, which holds for the shapes in
// the test case catalogue.
func referenceFill(vertices []Point, width, height int) []Span {
	type refEdge struct {
		start, end int
		lo         Point
		invSlope   float64
	}

	var edges []refEdge
	n := len(vertices)
	for i := 0; n >= 2 && i < n; i++ {
		lo, hi := vertices[i], vertices[(i+1)%n]
		if lo.Y == hi.Y {
			continue
		}
		k := i
		if lo.Y > hi.Y {
			lo, hi = hi, lo
			k = (i + 1) % n
		}
		start := lo.Y
		prev, next := vertices[(k+n-1)%n], vertices[(k+1)%n]
		if prev.Y >= lo.Y && next.Y >= lo.Y {
			start++
		}
		if start < 0 || start >= height {
			continue
		}
		edges = append(edges, refEdge{
			start:    start,
			end:      hi.Y,
			lo:       lo,
			invSlope: float64(hi.X-lo.X) / float64(hi.Y-lo.Y),
		})
	}

	roundHalfUp := func(x float64) int { return int(math.Floor(x + 0.5)) }

	var res []Span
	for y := 0; y < height; y++ {
		var xs []float64
		for _, e := range edges {
			// an edge is used on its first scanline even if it ends there
			if y >= e.start && (y < e.end || y == e.start) {
				xs = append(xs, float64(e.lo.X)+float64(y-e.lo.Y)*e.invSlope)
			}
		}
		slices.Sort(xs)
		for k := 0; k+1 < len(xs); k += 2 {
			x1 := max(roundHalfUp(xs[k]), 0)
			x2 := min(roundHalfUp(xs[k+1]), width-1)
			if x1 <= x2 {
				res = append(res, Span{Y: y, X1: x1, X2: x2})
			}
		}
		if len(xs)%2 == 1 {
			x := roundHalfUp(xs[len(xs)-1])
			if x >= 0 && x < width {
				res = append(res, Span{Y: y, X1: x, X2: x})
			}
		}
	}
	return res
}
