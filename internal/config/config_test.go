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

package config

import (
	"image/color"
	"log/slog"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadDefaults(t *testing.T) {
	for _, name := range []string{"WIDTH", "HEIGHT", "PNG", "PDF", "BACKGROUND", "LOG_LEVEL"} {
		// t.Setenv restores the original value after the test
		t.Setenv(Prefix+"_"+name, "")
		os.Unsetenv(Prefix + "_" + name)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		Width:      800,
		Height:     700,
		Background: "#1e1e2e",
		LogLevel:   "info",
	}
	if d := cmp.Diff(want, cfg); d != "" {
		t.Errorf("unexpected config (-want +got):\n%s", d)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("POLYFILL_WIDTH", "320")
	t.Setenv("POLYFILL_HEIGHT", "200")
	t.Setenv("POLYFILL_PNG", "out.png")
	t.Setenv("POLYFILL_BACKGROUND", "#ffffff")
	t.Setenv("POLYFILL_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if c := cfg.Canvas(); c.Width != 320 || c.Height != 200 {
		t.Errorf("unexpected canvas %+v", c)
	}
	if cfg.PNG != "out.png" || cfg.PDF != "" {
		t.Errorf("unexpected outputs %q, %q", cfg.PNG, cfg.PDF)
	}
	if bg, _ := cfg.BackgroundColor(); bg != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("unexpected background %v", bg)
	}
	if l, _ := cfg.Level(); l != slog.LevelDebug {
		t.Errorf("unexpected level %v", l)
	}
}

func TestLoadInvalid(t *testing.T) {
	cases := map[string]string{
		"WIDTH":      "-1",
		"HEIGHT":     "tall",
		"BACKGROUND": "black",
		"LOG_LEVEL":  "loud",
	}
	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(Prefix+"_"+name, value)
			if _, err := Load(); err == nil {
				t.Errorf("%s=%q accepted", name, value)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	c := &Config{Width: 0, Height: 10, Background: "#000000", LogLevel: "nope"}
	err := c.Validate()
	if err == nil {
		t.Fatal("invalid config accepted")
	}
	u, ok := err.(interface{ Unwrap() []error })
	if !ok || len(u.Unwrap()) != 2 {
		t.Errorf("expected two errors, got %v", err)
	}
}
