package mandelzoom

import "image/color"

// Palette is the precomputed lookup table from escape-time values to
// display colors. Index 0 is reserved for points that never escaped
// (the set interior) and is always black. Built once, immutable, safe
// to share across all render workers.
type Palette struct {
	colors []color.RGBA
}

// NewPalette builds the table for the given iteration budget. Entry i
// is the simple gradient (i mod 256, i mod 128, i mod 64).
func NewPalette(maxIter int) *Palette {
	colors := make([]color.RGBA, maxIter)
	colors[0] = color.RGBA{A: 255}
	for i := 1; i < maxIter; i++ {
		colors[i] = color.RGBA{
			R: uint8(i % 256),
			G: uint8(i % 128),
			B: uint8(i % 64),
			A: 255,
		}
	}
	return &Palette{colors: colors}
}

// At returns the color for an escape-time value. The index is clamped
// to the table range, so a batched result that lands slightly past the
// end still maps to a valid color.
func (p *Palette) At(i int) color.RGBA {
	if i < 0 {
		i = 0
	}
	if i >= len(p.colors) {
		i = len(p.colors) - 1
	}
	return p.colors[i]
}

// Len returns the table length (the iteration budget it was built for).
func (p *Palette) Len() int { return len(p.colors) }
