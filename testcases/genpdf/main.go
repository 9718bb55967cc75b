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

// Command genpdf writes one PDF file per test case, showing the filled
// polygon with its outline and vertices.  The files are meant for visual
// inspection of the fill results.
package main

import (
	"fmt"
	"image/color"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/polyfill"
	"seehuhn.de/go/polyfill/pdfexport"
	"seehuhn.de/go/polyfill/polygon"
	"seehuhn.de/go/polyfill/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	m := polygon.New()
	m.SetLineWidth(1)
	for _, p := range tc.Vertices {
		m.AddVertex(polyfill.Pt(p.X, p.Y))
	}
	if err := m.Close(); err != nil {
		return err
	}
	s, err := m.Save(true)
	if err != nil {
		return err
	}

	c := polyfill.Canvas{Width: tc.Width, Height: tc.Height}
	return pdfexport.WriteFile(pdfPath, c, color.Black, s.Shape())
}
