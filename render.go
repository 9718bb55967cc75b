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

// Package polyfill fills simple polygons on a pixel canvas, using the
// classic scanline algorithm with an edge table and an active edge table.
//
// [BuildEdgeTable] turns a vertex list into an [EdgeTable], and [Fill]
// scans the table and yields the interior of the polygon as horizontal
// [Span]s.  The package never draws itself: spans are handed to a
// [SpanConsumer], for example an [ImageConsumer] which paints into an
// image.  [Render] combines fills, outlines and vertex markers.
package polyfill

//go:generate go run ./testcases/export

import (
	"image/color"

	"golang.org/x/image/draw"
)

// VertexMarkerRadius determines the size of the squares [Render] draws at
// polygon vertices: each marker is 2*VertexMarkerRadius+1 pixels wide.
const VertexMarkerRadius = 3

// VertexMarkerColor is the colour of vertex markers.
var VertexMarkerColor = color.NRGBA{R: 255, G: 255, A: 255}

// Shape is a polygon together with the way it is painted.
type Shape struct {
	Vertices []Point
	Closed   bool

	Line      color.Color // nil means no outline
	LineWidth float64

	Fill   color.Color
	Filled bool // the interior is only painted if Filled is set

	ShowVertices bool
}

// Render paints the shapes onto dst, in order.  For each shape the outline
// is drawn first, then the interior (which covers the inner half of the
// outline), then the vertex markers.  Everything is clipped to c.
func Render(dst draw.Image, c Canvas, shapes ...Shape) {
	for _, s := range shapes {
		if s.Line != nil && len(s.Vertices) >= 2 {
			line := NewImageConsumer(dst, s.Line)
			for _, q := range Outline(s.Vertices, s.LineWidth, s.Closed) {
				Draw(c.Fill(q), line)
			}
		}

		if s.Filled && s.Fill != nil && len(s.Vertices) >= 3 {
			Draw(c.Fill(s.Vertices), NewImageConsumer(dst, s.Fill))
		}

		if s.ShowVertices {
			marker := NewImageConsumer(dst, VertexMarkerColor)
			for _, p := range s.Vertices {
				Draw(c.Fill(Square(p, VertexMarkerRadius)), marker)
			}
		}
	}
}
