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

// Edge is a non-horizontal polygon edge, as stored in an [EdgeTable].
type Edge struct {
	// MinY is the first scanline on which the edge is active.
	MinY int

	// MaxY is the scanline on which the edge stops being active.
	MaxY int

	// X is the x-coordinate of the edge on scanline MinY.  During a fill,
	// the active copy of the edge is advanced by InvSlope per scanline.
	X float64

	// InvSlope is dx/dy for the edge.
	InvSlope float64
}

// EdgeTable holds the polygon edges bucketed by starting scanline: slot y
// contains the edges with MinY == y, in polygon edge order.
//
// Filling only reads the table, so one EdgeTable may be traversed any
// number of times, also concurrently.
type EdgeTable [][]Edge

// Len returns the total number of edges in the table.
func (et EdgeTable) Len() int {
	n := 0
	for _, row := range et {
		n += len(row)
	}
	return n
}

// BuildEdgeTable converts a closed polygon into an edge table with height
// slots.  Edge i joins vertices[i] and vertices[(i+1)%len(vertices)].
//
// Horizontal edges are discarded.  Where two edges start at a common vertex
// which is a local minimum (a valley: neither neighbour lies strictly above
// it), each of these edges is started one scanline later, so that the
// vertex is not counted twice.  Local maxima need no correction because
// both edges end there.  Edges which, after this correction, start outside
// [0, height) are dropped.
//
// Fewer than two vertices, or a height <= 0, yield a table without edges.
func BuildEdgeTable(vertices []Point, height int) EdgeTable {
	et := make(EdgeTable, max(height, 0))

	n := len(vertices)
	if n < 2 || height <= 0 {
		return et
	}

	log := Logger()
	for i := range n {
		j := (i + 1) % n
		lo, hi := vertices[i], vertices[j]
		if lo.Y == hi.Y {
			continue // horizontal
		}
		loIdx := i
		if lo.Y > hi.Y {
			lo, hi = hi, lo
			loIdx = j
		}

		e := Edge{
			MinY:     lo.Y,
			MaxY:     hi.Y,
			X:        float64(lo.X),
			InvSlope: float64(hi.X-lo.X) / float64(hi.Y-lo.Y),
		}
		if isValley(vertices, loIdx) {
			e.MinY++
			e.X += e.InvSlope
		}

		if e.MinY < 0 || e.MinY >= height {
			log.Debug("edge starts outside canvas",
				"edge", i, "minY", e.MinY, "height", height)
			continue
		}
		et[e.MinY] = append(et[e.MinY], e)
	}
	return et
}

// isValley reports whether neither neighbour of vertices[k] lies strictly
// above it.
func isValley(vertices []Point, k int) bool {
	n := len(vertices)
	y := vertices[k].Y
	prev := vertices[(k+n-1)%n]
	next := vertices[(k+1)%n]
	return prev.Y >= y && next.Y >= y
}
