//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Painter keeps an RGBA image of palette-indexed cell data in sync with a grid.
type Painter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette []color.RGBA
}

// NewPainter allocates a painter for a grid of size w*h.
func NewPainter(w, h int, palette []color.RGBA) *Painter {
	p := &Painter{w: w, h: h, buf: make([]byte, 4*w*h), palette: palette}
	p.img = ebiten.NewImage(w, h)
	return p
}

// Refresh repaints every cell.
func (p *Painter) Refresh(cells []uint8) {
	if len(cells) != p.w*p.h {
		return
	}
	fillPaletteRGBA(p.buf, cells, p.palette)
	p.img.WritePixels(p.buf)
}

// Patch repaints only the listed cell indices.
func (p *Painter) Patch(cells []uint8, indices []int) {
	if len(cells) != p.w*p.h || len(indices) == 0 {
		return
	}
	patchPaletteRGBA(p.buf, cells, indices, p.palette)
	p.img.WritePixels(p.buf)
}

// Draw scales the painter image onto dst.
func (p *Painter) Draw(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}

// Size returns the dimensions of the underlying image.
func (p *Painter) Size() (int, int) { return p.w, p.h }
