package life

import "strconv"

// Config controls the field dimensions and random seeding.
type Config struct {
	Width  int
	Height int

	Seed int64

	// Density is the probability that a cell starts alive when seeding.
	Density float64
	// Colors is how many palette colors seeding draws from.
	Colors int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   50,
		Height:  50,
		Seed:    42,
		Density: 0.25,
		Colors:  4,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["colors"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Colors = parsed
		}
	}
	if c.Colors > NumColors {
		c.Colors = NumColors
	}
	return c
}
