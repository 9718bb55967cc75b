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
	"math"

	"seehuhn.de/go/geom/vec"
)

// zeroLengthThreshold is the minimum length for an outline segment.
// Shorter segments are skipped.
const zeroLengthThreshold = 1e-10

// Outline returns polygons which together cover a line of the given width
// drawn along the polygon boundary.  Each segment contributes a
// quadrilateral around the segment, and every vertex contributes a square
// which covers the line end or the gap at a corner.  If closed is set, the
// last vertex is joined to the first.
//
// Widths below 1 are treated as 1.  All returned polygons are meant to be
// filled with [Fill].
func Outline(vertices []Point, width float64, closed bool) [][]Point {
	n := len(vertices)
	if n == 0 {
		return nil
	}
	d := max(width, 1) / 2

	segs := n - 1
	if closed && n > 2 {
		segs = n
	}

	var res [][]Point
	for i := range segs {
		a := vertices[i].Vec2()
		b := vertices[(i+1)%n].Vec2()

		dir := b.Sub(a)
		length := dir.Length()
		if length < zeroLengthThreshold {
			continue
		}
		t := dir.Mul(1 / length)

		// Pixel centres lie on integer coordinates.  A fill includes both
		// end points of every span but not the top and bottom scanline of
		// the polygon, so the offset shrinks by half a pixel horizontally
		// and grows by half a pixel vertically.
		off := vec.Vec2{X: -t.Y * (d - 0.5), Y: t.X * (d + 0.5)}
		res = append(res, []Point{
			toPoint(a.Add(off)),
			toPoint(b.Add(off)),
			toPoint(b.Sub(off)),
			toPoint(a.Sub(off)),
		})
	}

	h := int(math.Ceil(d)) - 1
	for _, p := range vertices {
		res = append(res, Square(p, h))
	}
	return res
}

// Square returns a polygon whose fill covers the pixels within distance
// h of p (in the maximum norm), that is a (2h+1)x(2h+1) block centred on p.
func Square(p Point, h int) []Point {
	h = max(h, 0)
	x0, x1 := p.X-h, p.X+h
	// The top and bottom edges lie one scanline outside the block, since
	// the fill excludes them.
	y0, y1 := p.Y-h-1, p.Y+h+1
	return []Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

func toPoint(v vec.Vec2) Point {
	return Point{X: round(v.X), Y: round(v.Y)}
}
