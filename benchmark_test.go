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
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/polyfill/testcases"
)

// BenchmarkCatalogue fills every polygon of the test catalogue.
func BenchmarkCatalogue(b *testing.B) {
	for category, cases := range testcases.All {
		for _, tc := range cases {
			b.Run(category+"_"+tc.Name, func(b *testing.B) {
				verts := points(tc.Vertices)
				b.ReportAllocs()
				for b.Loop() {
					et := BuildEdgeTable(verts, tc.Height)
					for range Fill(et, tc.Width, tc.Height) {
					}
				}
			})
		}
	}
}

// BenchmarkFillOctagon fills an octagon into an alpha mask.
func BenchmarkFillOctagon(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			c := Canvas{Width: size, Height: size}
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			verts := octagon(size)
			mask := SpanFunc(func(y, x1, x2 int) {
				row := dst.Pix[y*dst.Stride:]
				for x := x1; x <= x2; x++ {
					row[x] = 255
				}
			})

			b.ReportAllocs()
			for b.Loop() {
				Draw(c.Fill(verts), mask)
			}
		})
	}
}

// BenchmarkVectorOctagon draws the same octagon using x/image/vector.
func BenchmarkVectorOctagon(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})
			verts := octagon(size)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				r.MoveTo(float32(verts[0].X), float32(verts[0].Y))
				for _, p := range verts[1:] {
					r.LineTo(float32(p.X), float32(p.Y))
				}
				r.ClosePath()
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// octagon returns a regular-looking octagon which nearly fills a
// size x size canvas.
func octagon(size int) []Point {
	m := size / 20
	a := size * 3 / 10
	lo, hi := m, size-1-m
	return []Point{
		{lo + a, lo}, {hi - a, lo},
		{hi, lo + a}, {hi, hi - a},
		{hi - a, hi}, {lo + a, hi},
		{lo, hi - a}, {lo, lo + a},
	}
}
