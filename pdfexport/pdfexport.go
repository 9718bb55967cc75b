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

// Package pdfexport writes filled polygons to a PDF file.
//
// The interior of each polygon is written as the spans produced by
// [polyfill.Fill], one rectangle per span, so that the document shows
// exactly the pixels the scanline algorithm selects.  Outlines are written
// as vector strokes.
package pdfexport

import (
	"fmt"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/polyfill"
)

// WriteFile writes a single-page PDF file showing the given shapes on a
// canvas-sized page with background colour bg.  One canvas pixel
// corresponds to one PDF point, and the top-left canvas corner is at the
// top-left of the page.
func WriteFile(fname string, c polyfill.Canvas, bg color.Color, shapes ...polyfill.Shape) error {
	w, h := max(c.Width, 0), max(c.Height, 0)
	paper := &pdf.Rectangle{
		URx: float64(w),
		URy: float64(h),
	}

	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("create %s: %w", fname, err)
	}

	if bg != nil {
		page.SetFillColor(deviceColor(bg))
		page.Rectangle(0, 0, float64(w), float64(h))
		page.Fill()
	}

	// PDF origin is bottom-left; canvas coordinates are top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(h)})

	for _, s := range shapes {
		if s.Line != nil && len(s.Vertices) >= 2 {
			page.SetStrokeColor(deviceColor(s.Line))
			page.SetLineWidth(max(s.LineWidth, 1))
			page.SetLineCap(graphics.LineCapSquare)
			page.SetLineJoin(graphics.LineJoinMiter)
			for cmd, pts := range polyfill.Path(s.Vertices, s.Closed) {
				switch cmd {
				case path.CmdMoveTo:
					page.MoveTo(pts[0].X, pts[0].Y)
				case path.CmdLineTo:
					page.LineTo(pts[0].X, pts[0].Y)
				case path.CmdClose:
					page.ClosePath()
				}
			}
			page.Stroke()
		}

		if rects := fillRects(c, s); len(rects) > 0 {
			page.SetFillColor(deviceColor(s.Fill))
			addRects(page, rects)
			page.Fill()
		}

		if rects := markerRects(s); len(rects) > 0 {
			page.SetFillColor(deviceColor(polyfill.VertexMarkerColor))
			addRects(page, rects)
			page.Fill()
		}
	}

	if err := page.Close(); err != nil {
		return fmt.Errorf("write %s: %w", fname, err)
	}
	return nil
}

// fillRects returns the interior of s as one rectangle per span, in
// canvas coordinates.  The result is empty unless s is filled.
func fillRects(c polyfill.Canvas, s polyfill.Shape) []rect.Rect {
	if !s.Filled || s.Fill == nil || len(s.Vertices) < 3 {
		return nil
	}
	var res []rect.Rect
	for sp := range c.Fill(s.Vertices) {
		res = append(res, rect.Rect{
			LLx: float64(sp.X1),
			LLy: float64(sp.Y),
			URx: float64(sp.X2 + 1),
			URy: float64(sp.Y + 1),
		})
	}
	return res
}

// markerRects returns the vertex markers of s.
func markerRects(s polyfill.Shape) []rect.Rect {
	if !s.ShowVertices {
		return nil
	}
	r := float64(polyfill.VertexMarkerRadius)
	res := make([]rect.Rect, len(s.Vertices))
	for i, p := range s.Vertices {
		res[i] = rect.Rect{
			LLx: float64(p.X) - r,
			LLy: float64(p.Y) - r,
			URx: float64(p.X) + r + 1,
			URy: float64(p.Y) + r + 1,
		}
	}
	return res
}

// rectangler is the part of the page content writer used by addRects.
type rectangler interface {
	Rectangle(x, y, width, height float64)
}

func addRects(page rectangler, rects []rect.Rect) {
	for _, r := range rects {
		page.Rectangle(r.LLx, r.LLy, r.URx-r.LLx, r.URy-r.LLy)
	}
}

// deviceColor converts c to a DeviceRGB colour.  Alpha is ignored.
func deviceColor(c color.Color) pdfcolor.Color {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return pdfcolor.DeviceRGB{
		float64(nc.R) / 255,
		float64(nc.G) / 255,
		float64(nc.B) / 255,
	}
}
