//go:build ebiten

package ui

import (
	"image/color"

	"colorlife/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type editProvider interface {
	Generation() int
	EditsAt(gen int) []life.Edit
	FirstGeneration() []life.Edit
}

// Overlay marks cells that carry journaled manual edits for the current
// generation, and optionally the starting cells of generation 1.
type Overlay struct {
	sim        editProvider
	scale      int
	showEdits  bool
	showAnchor bool
	pixel      *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim editProvider, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, showEdits: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		o.showEdits = !o.showEdits
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		o.showAnchor = !o.showAnchor
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	if o.showAnchor {
		for _, e := range o.sim.FirstGeneration() {
			o.drawFrame(screen, e.Point, scale, color.RGBA{R: 90, G: 90, B: 90, A: 90})
		}
	}
	if o.showEdits {
		for _, e := range o.sim.EditsAt(o.sim.Generation()) {
			o.drawFrame(screen, e.Point, scale, color.RGBA{R: 220, G: 220, B: 220, A: 220})
		}
	}
}

func (o *Overlay) drawFrame(screen *ebiten.Image, p life.Point, scale int, col color.RGBA) {
	x := float64(p.Col * scale)
	y := float64(p.Row * scale)
	s := float64(scale)
	t := 1.0
	if scale >= 6 {
		t = 2
	}
	o.fillRect(screen, x, y, s, t, col)
	o.fillRect(screen, x, y+s-t, s, t, col)
	o.fillRect(screen, x, y, t, s, col)
	o.fillRect(screen, x+s-t, y, t, s, col)
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
