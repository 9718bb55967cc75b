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
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Point is a pixel position on the canvas. The origin is the top-left
// corner and y grows downwards.
type Point struct {
	X, Y int
}

// Pt returns the point (x, y).
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Vec2 converts p to a floating point vector.
func (p Point) Vec2() vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// Bounds returns the smallest rectangle containing all points.
// The rectangle covers whole pixels, so a single point yields a 1x1 box.
// The zero rectangle is returned for an empty slice.
func Bounds(pts []Point) rect.Rect {
	if len(pts) == 0 {
		return rect.Rect{}
	}
	xMin, xMax := pts[0].X, pts[0].X
	yMin, yMax := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		xMin = min(xMin, p.X)
		xMax = max(xMax, p.X)
		yMin = min(yMin, p.Y)
		yMax = max(yMax, p.Y)
	}
	return rect.Rect{
		LLx: float64(xMin),
		LLy: float64(yMin),
		URx: float64(xMax + 1),
		URy: float64(yMax + 1),
	}
}

// Path returns the polygon outline as a path.  If closed is set, the path
// ends with a ClosePath command.
func Path(vertices []Point, closed bool) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i, p := range vertices {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, []vec.Vec2{p.Vec2()}) {
				return
			}
		}
		if closed && len(vertices) > 0 {
			yield(path.CmdClose, nil)
		}
	}
}
