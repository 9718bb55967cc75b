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

package polygon

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Style describes how a polygon is painted.
type Style struct {
	LineColor    color.NRGBA
	FillColor    color.NRGBA
	LineWidth    float64
	ShowVertices bool
}

// Limits for the line width, used by [Model.AdjustLineWidth].
const (
	MinLineWidth = 1
	MaxLineWidth = 10
)

// DefaultStyle is the style of a new [Model].
var DefaultStyle = Style{
	LineColor:    color.NRGBA{R: 0, G: 128, B: 255, A: 255},
	FillColor:    color.NRGBA{R: 0, G: 128, B: 255, A: 255},
	LineWidth:    2,
	ShowVertices: true,
}

// Palette is the 16-colour palette offered for line and fill colours.
var Palette = [16]color.NRGBA{
	{0, 0, 0, 255},
	{128, 128, 128, 255},
	{192, 192, 192, 255},
	{255, 255, 255, 255},
	{128, 0, 0, 255},
	{255, 0, 0, 255},
	{255, 128, 0, 255},
	{255, 255, 0, 255},
	{128, 255, 0, 255},
	{0, 255, 0, 255},
	{0, 255, 128, 255},
	{0, 255, 255, 255},
	{0, 128, 255, 255},
	{0, 0, 255, 255},
	{128, 0, 255, 255},
	{255, 0, 255, 255},
}

// presetFillColors are the fill colours selected by the keys 1 to 6.
var presetFillColors = [...]color.NRGBA{
	{255, 0, 0, 255},
	{0, 255, 0, 255},
	{0, 0, 255, 255},
	{255, 255, 0, 255},
	{255, 0, 255, 255},
	{0, 255, 255, 255},
}

// ParseHexColor parses a colour of the form "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (color.NRGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
