package app

import (
	"flag"
	"time"

	"colorlife/internal/core"
	"colorlife/pkg/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Scale    int
	HUDWidth int
	Delay    time.Duration
	Empty    bool

	Life life.Config
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 12, HUDWidth: 220, Delay: 250 * time.Millisecond, Life: life.DefaultConfig()}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the side panel in pixels (0 hides it)")
	fs.DurationVar(&c.Delay, "delay", c.Delay, "pause between generations while running")
	fs.BoolVar(&c.Empty, "empty", c.Empty, "start with an empty field instead of a random one")
	fs.IntVar(&c.Life.Width, "w", c.Life.Width, "field width")
	fs.IntVar(&c.Life.Height, "h", c.Life.Height, "field height")
	fs.Int64Var(&c.Life.Seed, "seed", c.Life.Seed, "seed for random starting cells")
	fs.Float64Var(&c.Life.Density, "density", c.Life.Density, "probability that a starting cell is alive")
	fs.IntVar(&c.Life.Colors, "colors", c.Life.Colors, "number of palette colors used for starting cells")
}

// Normalize clamps values the flag package cannot validate.
func (c *Config) Normalize() {
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.HUDWidth < 0 {
		c.HUDWidth = 0
	}
	if c.Delay <= 0 {
		c.Delay = core.DefaultDelay
	}
	def := life.DefaultConfig()
	if c.Life.Width <= 0 {
		c.Life.Width = def.Width
	}
	if c.Life.Height <= 0 {
		c.Life.Height = def.Height
	}
	if c.Life.Density < 0 || c.Life.Density > 1 {
		c.Life.Density = def.Density
	}
	if c.Life.Colors <= 0 {
		c.Life.Colors = def.Colors
	}
	if c.Life.Colors > life.NumColors {
		c.Life.Colors = life.NumColors
	}
}
