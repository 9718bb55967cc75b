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
	"iter"

	"seehuhn.de/go/geom/rect"
)

// Canvas describes the pixel area polygons are filled into.  Pixel
// coordinates run from (0, 0) at the top left to (Width-1, Height-1).
// Negative sizes are treated like zero.
type Canvas struct {
	Width, Height int
}

// Fill returns the interior spans of the closed polygon with the given
// vertices.  The edge table is built immediately, so later changes to the
// vertices slice do not affect the result.
func (c Canvas) Fill(vertices []Point) iter.Seq[Span] {
	et := BuildEdgeTable(vertices, c.Height)
	return Fill(et, c.Width, c.Height)
}

// Contains reports whether p is a pixel of the canvas.
func (c Canvas) Contains(p Point) bool {
	return p.X >= 0 && p.X < c.Width && p.Y >= 0 && p.Y < c.Height
}

// Clip returns the canvas area as a rectangle.
func (c Canvas) Clip() rect.Rect {
	return rect.Rect{
		URx: float64(max(c.Width, 0)),
		URy: float64(max(c.Height, 0)),
	}
}
