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

// complexCases are concave polygons with several spans per scanline and
// vertices of every kind (peaks, valleys, pass-through points).
var complexCases = []TestCase{
	{
		Name: "l_shape",
		Vertices: []image.Point{
			pt(8, 8), pt(24, 8), pt(24, 40), pt(56, 40), pt(56, 56), pt(8, 56),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "comb",
		Vertices: []image.Point{
			pt(8, 8), pt(16, 8), pt(16, 40), pt(24, 40), pt(24, 8),
			pt(32, 8), pt(32, 40), pt(40, 40), pt(40, 8), pt(48, 8),
			pt(48, 56), pt(8, 56),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "sawtooth",
		Vertices: []image.Point{
			pt(8, 56), pt(8, 16), pt(16, 8), pt(24, 16), pt(32, 8),
			pt(40, 16), pt(48, 8), pt(56, 16), pt(56, 56),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "star",
		Vertices: []image.Point{
			pt(32, 8), pt(40, 24), pt(56, 32), pt(40, 40),
			pt(32, 56), pt(24, 40), pt(8, 32), pt(24, 24),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "collinear_top",
		Vertices: []image.Point{
			pt(10, 10), pt(30, 10), pt(50, 10), pt(50, 50), pt(10, 50),
		},
		Width:  64,
		Height: 64,
	},
}
