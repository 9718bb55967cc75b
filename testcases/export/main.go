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

// Command export writes the test cases, together with the spans produced
// for them, to JSON.  Run from the module root directory.
package main

import (
	"encoding/json"
	"image"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/polyfill"
	"seehuhn.de/go/polyfill/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name     string   `json:"name"`
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Vertices [][2]int `json:"vertices"`
	Area     int      `json:"area"`
	Spans    [][3]int `json:"spans"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:     category + "_" + tc.Name,
		Width:    tc.Width,
		Height:   tc.Height,
		Vertices: make([][2]int, len(tc.Vertices)),
		Spans:    [][3]int{},
	}
	for i, p := range tc.Vertices {
		jtc.Vertices[i] = [2]int{p.X, p.Y}
	}

	c := polyfill.Canvas{Width: tc.Width, Height: tc.Height}
	for s := range c.Fill(points(tc.Vertices)) {
		jtc.Spans = append(jtc.Spans, [3]int{s.Y, s.X1, s.X2})
		jtc.Area += s.Len()
	}
	return jtc
}

func points(pts []image.Point) []polyfill.Point {
	res := make([]polyfill.Point, len(pts))
	for i, p := range pts {
		res[i] = polyfill.Pt(p.X, p.Y)
	}
	return res
}
