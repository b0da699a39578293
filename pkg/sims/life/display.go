package life

import "image/color"

var lifePalette = []color.RGBA{
	Dead:    {R: 0, G: 0, B: 0, A: 255},
	Red:     {R: 220, G: 50, B: 47, A: 255},
	Green:   {R: 80, G: 180, B: 70, A: 255},
	Blue:    {R: 50, G: 110, B: 220, A: 255},
	Yellow:  {R: 240, G: 210, B: 40, A: 255},
	Pink:    {R: 250, G: 150, B: 190, A: 255},
	Cyan:    {R: 40, G: 200, B: 210, A: 255},
	Orange:  {R: 245, G: 140, B: 30, A: 255},
	Magenta: {R: 200, G: 60, B: 200, A: 255},
}

var colorNames = [...]string{
	Dead:    "dead",
	Red:     "red",
	Green:   "green",
	Blue:    "blue",
	Yellow:  "yellow",
	Pink:    "pink",
	Cyan:    "cyan",
	Orange:  "orange",
	Magenta: "magenta",
}

// Palette exposes the color palette indexed by Color.
func (s *Simulation) Palette() []color.RGBA {
	return lifePalette
}

// String returns the color's name.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}
