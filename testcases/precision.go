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

package testcases

import "image"

// precisionCases exercise the rounding of span end points and clipping
// at the canvas boundary.
var precisionCases = []TestCase{
	{
		// edges with slope 1/2 hit x.5 on every second scanline
		Name:     "half_pixel",
		Vertices: []image.Point{pt(10, 10), pt(20, 30), pt(0, 30)},
		Width:    32,
		Height:   32,
	},
	{
		Name:     "quarter_slope",
		Vertices: []image.Point{pt(8, 4), pt(16, 36), pt(0, 36)},
		Width:    40,
		Height:   40,
	},
	{
		Name:     "steep",
		Vertices: []image.Point{pt(30, 0), pt(31, 32), pt(29, 32)},
		Width:    64,
		Height:   64,
	},
	{
		Name:     "sliver",
		Vertices: []image.Point{pt(8, 8), pt(56, 9), pt(8, 10)},
		Width:    64,
		Height:   64,
	},
	{
		Name:     "clipped_right",
		Vertices: rectangle(40, 10, 150, 50),
		Width:    100,
		Height:   64,
	},
	{
		Name:     "clipped_left",
		Vertices: rectangle(-20, 10, 30, 40),
		Width:    64,
		Height:   64,
	},
	{
		Name:     "clipped_bottom",
		Vertices: diamond(32, 60, 16),
		Width:    64,
		Height:   64,
	},
	{
		// all edges start above the canvas and are dropped
		Name:     "clipped_top",
		Vertices: rectangle(10, -10, 50, 30),
		Width:    64,
		Height:   64,
	},
}
