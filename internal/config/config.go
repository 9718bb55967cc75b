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

// Package config reads the settings of the polyfill command from the
// environment.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"github.com/kelseyhightower/envconfig"

	"seehuhn.de/go/polyfill"
	"seehuhn.de/go/polyfill/polygon"
)

// Prefix is prepended, with an underscore, to all environment variable
// names.
const Prefix = "POLYFILL"

// Config holds the command settings.  The default canvas size is the
// drawing area of the interactive editor.
type Config struct {
	Width      int    `envconfig:"WIDTH" default:"800"`
	Height     int    `envconfig:"HEIGHT" default:"700"`
	PNG        string `envconfig:"PNG"`
	PDF        string `envconfig:"PDF"`
	Background string `envconfig:"BACKGROUND" default:"#1e1e2e"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values which envconfig cannot check.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid canvas size %dx%d", c.Width, c.Height))
	}
	if _, err := c.BackgroundColor(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Canvas returns the configured canvas.
func (c *Config) Canvas() polyfill.Canvas {
	return polyfill.Canvas{Width: c.Width, Height: c.Height}
}

// BackgroundColor parses the background colour.
func (c *Config) BackgroundColor() (color.NRGBA, error) {
	return polygon.ParseHexColor(c.Background)
}

// Level parses the log level ("debug", "info", "warn" or "error").
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}
