// Package config loads optional TOML render configuration.
//
// A config file can override canvas geometry and the connection color
// palette without touching the CLI flags:
//
//	[canvas]
//	width = 1200
//	height = 900
//	margin = 60
//
//	[colors]
//	ring = "#1565C0"
//	p2p = "#2E7D32"
//	lan = "#D84315"
//
// Missing sections or keys keep their defaults; command-line flags take
// precedence over the file.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/netlabtools/labviz/pkg/errors"
	"github.com/netlabtools/labviz/pkg/render"
)

// Canvas holds diagram geometry overrides.
type Canvas struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Margin float64 `toml:"margin"`
}

// Config is the full render configuration file.
type Config struct {
	Canvas Canvas         `toml:"canvas"`
	Colors render.Palette `toml:"colors"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Canvas: Canvas{Width: 1000, Height: 800, Margin: 50},
		Colors: render.DefaultPalette,
	}
}

// Load reads a TOML config file and merges it over Default.
// Returns ErrCodeInvalidConfig for unreadable or malformed files and for
// non-positive geometry values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	var file Config
	if err := toml.Unmarshal(data, &file); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	cfg := Default().merge(file)
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// merge overlays non-zero fields of file onto c.
func (c Config) merge(file Config) Config {
	if file.Canvas.Width != 0 {
		c.Canvas.Width = file.Canvas.Width
	}
	if file.Canvas.Height != 0 {
		c.Canvas.Height = file.Canvas.Height
	}
	if file.Canvas.Margin != 0 {
		c.Canvas.Margin = file.Canvas.Margin
	}
	if file.Colors.Ring != "" {
		c.Colors.Ring = file.Colors.Ring
	}
	if file.Colors.P2P != "" {
		c.Colors.P2P = file.Colors.P2P
	}
	if file.Colors.LAN != "" {
		c.Colors.LAN = file.Colors.LAN
	}
	return c
}

func (c Config) validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "canvas dimensions must be positive (got %gx%g)", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Canvas.Margin < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "canvas margin must not be negative (got %g)", c.Canvas.Margin)
	}
	return nil
}
