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

// Package testcases contains a catalogue of polygons used by the tests,
// the benchmarks, and the export commands.
package testcases

import "image"

// TestCase defines a single polygon fill test.
type TestCase struct {
	Name     string        // lowercase a-z, 0-9 and _ only
	Vertices []image.Point // the closed polygon, in canvas coordinates
	Width    int           // canvas width in pixels
	Height   int           // canvas height in pixels
}

// pt is a helper to create an image.Point from x, y coordinates.
func pt(x, y int) image.Point {
	return image.Point{X: x, Y: y}
}

// rectangle returns the corners of an axis-aligned rectangle, clockwise on
// screen starting at the top left.
func rectangle(x1, y1, x2, y2 int) []image.Point {
	return []image.Point{pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2)}
}

// diamond returns a square rotated by 45 degrees, with the given centre
// and distance from the centre to the corners.
func diamond(cx, cy, r int) []image.Point {
	return []image.Point{pt(cx, cy-r), pt(cx+r, cy), pt(cx, cy+r), pt(cx-r, cy)}
}
