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

// Command polyfill fills the polygons of a scene file and writes the
// result as PNG and/or PDF.
//
// Usage:
//
//	POLYFILL_PNG=out.png POLYFILL_PDF=out.pdf polyfill scene.json
//
// The scene is read from standard input if no file is given.  A scene file
// looks like this:
//
//	{"polygons": [
//	  {"vertices": [[10,10], [50,10], [30,50]],
//	   "fill": "#ff0000", "line": "#0080ff", "lineWidth": 2,
//	   "showVertices": true, "filled": true}
//	]}
//
// See package seehuhn.de/go/polyfill/internal/config for all settings.
package main

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"

	"golang.org/x/image/draw"

	"seehuhn.de/go/polyfill"
	"seehuhn.de/go/polyfill/internal/config"
	"seehuhn.de/go/polyfill/pdfexport"
	"seehuhn.de/go/polyfill/polygon"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger, err := newLogger(cfg, os.Stderr)
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logger)
	polyfill.SetLogger(logger)

	if err := run(cfg, os.Args[1:]); err != nil {
		slog.Error("polyfill", "error", err)
		os.Exit(1)
	}
}

// newLogger returns a text logger writing to w at the configured level.
func newLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

type jsonScene struct {
	Polygons []jsonPolygon `json:"polygons"`
}

type jsonPolygon struct {
	Vertices     [][2]int `json:"vertices"`
	Fill         string   `json:"fill,omitempty"`
	Line         string   `json:"line,omitempty"`
	LineWidth    float64  `json:"lineWidth,omitempty"`
	ShowVertices *bool    `json:"showVertices,omitempty"`
	Filled       bool     `json:"filled"`
}

func run(cfg *config.Config, args []string) error {
	var in io.Reader = os.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	var scene jsonScene
	if err := json.NewDecoder(in).Decode(&scene); err != nil {
		return fmt.Errorf("decode scene: %w", err)
	}

	m := polygon.New()
	for i, jp := range scene.Polygons {
		if err := load(m, jp); err != nil {
			return fmt.Errorf("polygon %d: %w", i, err)
		}
	}

	canvas := cfg.Canvas()
	var shapes []polyfill.Shape
	for _, s := range m.Saved() {
		slog.Info("polygon",
			"id", s.ID,
			"vertices", len(s.Vertices),
			"area", polyfill.Area(canvas.Fill(s.Vertices)))
		shapes = append(shapes, s.Shape())
	}

	bg, err := cfg.BackgroundColor()
	if err != nil {
		return err
	}

	if cfg.PNG != "" {
		if err := writePNG(cfg.PNG, canvas, bg, shapes); err != nil {
			return err
		}
		slog.Info("wrote image", "file", cfg.PNG)
	}
	if cfg.PDF != "" {
		if err := pdfexport.WriteFile(cfg.PDF, canvas, bg, shapes...); err != nil {
			return err
		}
		slog.Info("wrote document", "file", cfg.PDF)
	}
	return nil
}

// load feeds one polygon through the model, the same way the interactive
// editor does: set the style, add the vertices, close, save.
func load(m *polygon.Model, jp jsonPolygon) error {
	style := polygon.DefaultStyle
	if jp.Fill != "" {
		c, err := polygon.ParseHexColor(jp.Fill)
		if err != nil {
			return err
		}
		style.FillColor = c
	}
	if jp.Line != "" {
		c, err := polygon.ParseHexColor(jp.Line)
		if err != nil {
			return err
		}
		style.LineColor = c
	}
	if jp.LineWidth > 0 {
		style.LineWidth = jp.LineWidth
	}
	if jp.ShowVertices != nil {
		style.ShowVertices = *jp.ShowVertices
	}
	m.SetStyle(style)

	m.Clear()
	for _, v := range jp.Vertices {
		m.AddVertex(polyfill.Pt(v[0], v[1]))
	}
	if err := m.Close(); err != nil {
		return err
	}
	_, err := m.Save(jp.Filled)
	return err
}

func writePNG(fname string, c polyfill.Canvas, bg color.Color, shapes []polyfill.Shape) (err error) {
	img := image.NewNRGBA(image.Rect(0, 0, c.Width, c.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	polyfill.Render(img, c, shapes...)

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
