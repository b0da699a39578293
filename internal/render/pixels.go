package render

import "image/color"

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	for i, c := range cells {
		writePixel(buf, i, lookup(palette, c))
	}
}

// patchPaletteRGBA rewrites only the pixels at the given cell indices.
// Indices outside the cell slice are skipped.
func patchPaletteRGBA(buf []byte, cells []uint8, indices []int, palette []color.RGBA) {
	for _, i := range indices {
		if i < 0 || i >= len(cells) {
			continue
		}
		writePixel(buf, i, lookup(palette, cells[i]))
	}
}

func lookup(palette []color.RGBA, c uint8) color.RGBA {
	if len(palette) == 0 {
		return color.RGBA{}
	}
	idx := int(c)
	if last := len(palette) - 1; idx > last {
		idx = last
	}
	return palette[idx]
}

func writePixel(buf []byte, i int, col color.RGBA) {
	base := i * 4
	buf[base+0] = col.R
	buf[base+1] = col.G
	buf[base+2] = col.B
	buf[base+3] = col.A
}
