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
	"image"
	"image/color"
	"iter"

	"golang.org/x/image/draw"
)

// SpanConsumer is implemented by everything that can paint spans.
type SpanConsumer interface {
	// FillSpan paints pixels x1..x2 (inclusive) on scanline y.
	FillSpan(y, x1, x2 int)
}

// SpanFunc adapts an ordinary function to the SpanConsumer interface.
type SpanFunc func(y, x1, x2 int)

// FillSpan calls f(y, x1, x2).
func (f SpanFunc) FillSpan(y, x1, x2 int) {
	f(y, x1, x2)
}

// Draw passes every span of the sequence to c.
func Draw(spans iter.Seq[Span], c SpanConsumer) {
	for s := range spans {
		c.FillSpan(s.Y, s.X1, s.X2)
	}
}

// ImageConsumer paints spans into an image.
type ImageConsumer struct {
	Dst draw.Image
	Src image.Image // usually an *image.Uniform
	Op  draw.Op     // the zero value is draw.Over
}

// NewImageConsumer returns an ImageConsumer which paints spans onto dst in
// a single colour.
func NewImageConsumer(dst draw.Image, c color.Color) *ImageConsumer {
	return &ImageConsumer{Dst: dst, Src: image.NewUniform(c), Op: draw.Over}
}

// FillSpan implements the SpanConsumer interface.
func (ic *ImageConsumer) FillSpan(y, x1, x2 int) {
	r := image.Rect(x1, y, x2+1, y+1)
	draw.Draw(ic.Dst, r, ic.Src, r.Min, ic.Op)
}
