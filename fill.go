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
	"cmp"
	"iter"
	"math"
	"slices"
)

// Span is a horizontal run of interior pixels.  Both end points are
// included: the span covers pixels X1, X1+1, ..., X2 on scanline Y.
type Span struct {
	Y      int
	X1, X2 int
}

// Len returns the number of pixels in the span.
func (s Span) Len() int {
	return s.X2 - s.X1 + 1
}

// Fill scans the edge table and returns the interior spans of the polygon,
// top to bottom.  Spans are clipped to a canvas of the given size.
//
// On every scanline the active edges are sorted by their current x and
// taken in pairs; each pair bounds one span.  The span end points are the
// edge positions rounded half up.  Active edges with equal x keep their
// previous order, and edges activated on the same scanline keep their order
// from the edge table, so the output is fully determined by the table.
//
// If an odd number of edges is active (this does not happen for a properly
// closed simple polygon), the unpaired right-most edge yields a single
// pixel.
//
// The returned sequence is lazy and does not modify et.  Iterating it twice
// gives identical results.
func Fill(et EdgeTable, width, height int) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		rows := min(height, len(et))
		y := 0
		for y < rows && len(et[y]) == 0 {
			y++
		}
		if y >= rows {
			return
		}

		var active []Edge
		for ; y < height; y++ {
			if y < len(et) {
				active = append(active, et[y]...)
			}
			slices.SortStableFunc(active, func(a, b Edge) int {
				return cmp.Compare(a.X, b.X)
			})

			for k := 0; k+1 < len(active); k += 2 {
				x1 := round(active[k].X)
				x2 := round(active[k+1].X)
				if x1 > x2 {
					x1, x2 = x2, x1
				}
				x1 = max(x1, 0)
				x2 = min(x2, width-1)
				if x1 <= x2 && !yield(Span{Y: y, X1: x1, X2: x2}) {
					return
				}
			}
			if len(active)%2 == 1 {
				x := round(active[len(active)-1].X)
				Logger().Debug("unpaired active edge", "y", y, "active", len(active))
				if x >= 0 && x < width && !yield(Span{Y: y, X1: x, X2: x}) {
					return
				}
			}

			for i := range active {
				active[i].X += active[i].InvSlope
			}
			active = slices.DeleteFunc(active, func(e Edge) bool {
				return e.MaxY <= y+1
			})
		}
	}
}

// round rounds half up, so that 2.5 becomes 3 and -2.5 becomes -2.
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

// Area returns the number of pixels covered by a sequence of spans.
func Area(spans iter.Seq[Span]) int {
	n := 0
	for s := range spans {
		n += s.Len()
	}
	return n
}
