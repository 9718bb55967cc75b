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

// largeCases contain many scanlines and long spans.
var largeCases = []TestCase{
	{
		Name:     "large_rectangle",
		Vertices: rectangle(50, 50, 462, 462),
		Width:    512,
		Height:   512,
	},
	{
		Name:     "large_diamond",
		Vertices: diamond(256, 256, 180),
		Width:    512,
		Height:   512,
	},
	{
		Name: "large_octagon",
		Vertices: []image.Point{
			pt(200, 56), pt(312, 56), pt(456, 200), pt(456, 312),
			pt(312, 456), pt(200, 456), pt(56, 312), pt(56, 200),
		},
		Width:  512,
		Height: 512,
	},
	{
		// the upper edges start above the canvas and are dropped, so
		// only the lower half is filled
		Name:     "large_clipped",
		Vertices: diamond(256, 256, 400),
		Width:    512,
		Height:   512,
	},
}
