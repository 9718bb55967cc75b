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

// Package polygon keeps track of the polygon being drawn and of the
// polygons which have been saved.
package polygon

import (
	"errors"
	"image/color"
	"slices"

	"go.jetify.com/typeid/v2"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/polyfill"
)

// IDPrefix is the type prefix of saved polygon IDs.
const IDPrefix = "poly"

var (
	// ErrTooFewVertices is returned when an operation needs a polygon with
	// at least three vertices.
	ErrTooFewVertices = errors.New("polygon needs at least 3 vertices")

	// ErrNotClosed is returned when saving a polygon which has not been
	// closed.
	ErrNotClosed = errors.New("polygon is not closed")
)

// Saved is a polygon which has been committed with [Model.Save].
// The model hands out copies, so changing a Saved value does not affect
// the stored polygon.
type Saved struct {
	ID       string
	Vertices []polyfill.Point
	Style    Style
	Filled   bool
}

func (s Saved) clone() Saved {
	s.Vertices = slices.Clone(s.Vertices)
	return s
}

// Shape returns the description used by [polyfill.Render].
func (s Saved) Shape() polyfill.Shape {
	return polyfill.Shape{
		Vertices:     s.Vertices,
		Closed:       true,
		Line:         s.Style.LineColor,
		LineWidth:    s.Style.LineWidth,
		Fill:         s.Style.FillColor,
		Filled:       s.Filled,
		ShowVertices: s.Style.ShowVertices,
	}
}

// Model holds the polygon under construction, the current style, and the
// list of saved polygons.
//
// A Model is not safe for concurrent use.
type Model struct {
	vertices []polyfill.Point
	closed   bool
	style    Style
	saved    []Saved
}

// New returns an empty model using [DefaultStyle].
func New() *Model {
	return &Model{style: DefaultStyle}
}

// AddVertex appends a vertex to the current polygon.  This re-opens the
// polygon if it was closed.
func (m *Model) AddVertex(p polyfill.Point) {
	m.vertices = append(m.vertices, p)
	m.closed = false
}

// RemoveLastVertex removes the most recently added vertex, if any.
func (m *Model) RemoveLastVertex() {
	if len(m.vertices) == 0 {
		return
	}
	m.vertices = m.vertices[:len(m.vertices)-1]
	m.closed = false
}

// Close joins the last vertex to the first.
func (m *Model) Close() error {
	if len(m.vertices) < 3 {
		return ErrTooFewVertices
	}
	m.closed = true
	return nil
}

// Clear removes all vertices of the current polygon.
// Saved polygons are not affected.
func (m *Model) Clear() {
	m.vertices = nil
	m.closed = false
}

// IsClosed reports whether the current polygon has been closed.
func (m *Model) IsClosed() bool {
	return m.closed
}

// Len returns the number of vertices of the current polygon.
func (m *Model) Len() int {
	return len(m.vertices)
}

// Vertices returns a copy of the vertices of the current polygon.
func (m *Model) Vertices() []polyfill.Point {
	return slices.Clone(m.vertices)
}

// CanFill reports whether the current polygon is ready to be filled.
func (m *Model) CanFill() bool {
	return m.closed && len(m.vertices) >= 3
}

// Path returns the outline of the current polygon.
func (m *Model) Path() path.Path {
	return polyfill.Path(m.Vertices(), m.closed)
}

// Shape returns the current polygon in the form used by [polyfill.Render].
func (m *Model) Shape(filled bool) polyfill.Shape {
	return polyfill.Shape{
		Vertices:     m.Vertices(),
		Closed:       m.closed,
		Line:         m.style.LineColor,
		LineWidth:    m.style.LineWidth,
		Fill:         m.style.FillColor,
		Filled:       filled && m.CanFill(),
		ShowVertices: m.style.ShowVertices,
	}
}

// Save stores a copy of the current polygon, together with the current
// style, in the list of saved polygons.  The current polygon is left
// unchanged.
func (m *Model) Save(filled bool) (Saved, error) {
	if len(m.vertices) < 3 {
		return Saved{}, ErrTooFewVertices
	}
	if !m.closed {
		return Saved{}, ErrNotClosed
	}

	s := Saved{
		ID:       typeid.MustGenerate(IDPrefix).String(),
		Vertices: m.Vertices(),
		Style:    m.style,
		Filled:   filled,
	}
	m.saved = append(m.saved, s)
	polyfill.Logger().Debug("polygon saved",
		"id", s.ID, "vertices", len(s.Vertices), "filled", filled)
	return s.clone(), nil
}

// Saved returns copies of the saved polygons, oldest first.
func (m *Model) Saved() []Saved {
	res := make([]Saved, len(m.saved))
	for i, s := range m.saved {
		res[i] = s.clone()
	}
	return res
}

// SavedCount returns the number of saved polygons.
func (m *Model) SavedCount() int {
	return len(m.saved)
}

// ClearSaved discards all saved polygons.
func (m *Model) ClearSaved() {
	polyfill.Logger().Debug("saved polygons cleared", "count", len(m.saved))
	m.saved = nil
}

// Style returns the current style.
func (m *Model) Style() Style {
	return m.style
}

// SetStyle replaces the current style.
// Polygons saved earlier keep their own style.
func (m *Model) SetStyle(s Style) {
	m.style = s
}

// SetLineColor sets the outline colour.
func (m *Model) SetLineColor(c color.NRGBA) {
	m.style.LineColor = c
}

// SetFillColor sets the fill colour.
func (m *Model) SetFillColor(c color.NRGBA) {
	m.style.FillColor = c
}

// SetLineWidth sets the outline width.
func (m *Model) SetLineWidth(w float64) {
	m.style.LineWidth = w
}

// AdjustLineWidth makes the outline one pixel wider or narrower, staying
// within [MinLineWidth, MaxLineWidth].
func (m *Model) AdjustLineWidth(increase bool) {
	if increase {
		m.style.LineWidth = min(MaxLineWidth, m.style.LineWidth+1)
	} else {
		m.style.LineWidth = max(MinLineWidth, m.style.LineWidth-1)
	}
}

// SetShowVertices selects whether vertex markers are drawn.
func (m *Model) SetShowVertices(show bool) {
	m.style.ShowVertices = show
}

// ToggleVertices switches vertex markers on or off.
func (m *Model) ToggleVertices() {
	m.style.ShowVertices = !m.style.ShowVertices
}

// ApplyPresetFillColor selects one of the preset fill colours 1 (red),
// 2 (green), 3 (blue), 4 (yellow), 5 (magenta) or 6 (cyan).
// Other values are ignored.
func (m *Model) ApplyPresetFillColor(i int) {
	if i < 1 || i > len(presetFillColors) {
		return
	}
	m.style.FillColor = presetFillColors[i-1]
}
