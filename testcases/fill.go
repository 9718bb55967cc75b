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

var fillCases = []TestCase{
	{
		Name:     "triangle",
		Vertices: []image.Point{pt(12, 50), pt(32, 10), pt(52, 50)},
		Width:    64,
		Height:   64,
	},
	{
		Name:     "triangle_apex_down",
		Vertices: []image.Point{pt(0, 0), pt(10, 0), pt(5, 10)},
		Width:    16,
		Height:   16,
	},
	{
		Name:     "rectangle",
		Vertices: rectangle(10, 10, 44, 44),
		Width:    64,
		Height:   64,
	},
	{
		Name:     "rectangle_ccw",
		Vertices: []image.Point{pt(10, 10), pt(10, 44), pt(44, 44), pt(44, 10)},
		Width:    64,
		Height:   64,
	},
	{
		Name:     "diamond",
		Vertices: diamond(32, 32, 24),
		Width:    64,
		Height:   64,
	},
	{
		Name:     "arrow",
		Vertices: []image.Point{pt(8, 8), pt(56, 32), pt(8, 56), pt(32, 32)},
		Width:    64,
		Height:   64,
	},
}
