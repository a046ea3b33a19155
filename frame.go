package mandelzoom

import "image"

// Frame is one fully or partially computed pixel grid: an escape-time
// value per pixel, row major, with fixed dimensions. A Frame is created
// fresh for every render pass and colored on demand through a Palette.
type Frame struct {
	W, H   int
	Counts []int
}

// NewFrame allocates a zeroed W x H grid.
func NewFrame(w, h int) *Frame {
	return &Frame{W: w, H: h, Counts: make([]int, w*h)}
}

// At returns the escape-time value at pixel (x, y).
func (f *Frame) At(x, y int) int {
	return f.Counts[y*f.W+x]
}

// Row returns the backing slice for row y. Band workers write through
// this, each to its own rows only.
func (f *Frame) Row(y int) []int {
	return f.Counts[y*f.W : (y+1)*f.W]
}

// RGBA colors the whole frame through the palette.
func (f *Frame) RGBA(p *Palette) *image.RGBA {
	return f.BandRGBA(p, 0, f.H)
}

// BandRGBA colors rows [y0, y1) through the palette. The returned image
// keeps global coordinates (its bounds are (0,y0)-(W,y1)), so it can be
// drawn straight onto a full-size destination at its own offset.
func (f *Frame) BandRGBA(p *Palette, y0, y1 int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, y0, f.W, y1))
	for y := y0; y < y1; y++ {
		row := f.Row(y)
		off := img.PixOffset(0, y)
		for x := 0; x < f.W; x++ {
			c := p.At(row[x])
			img.Pix[off] = c.R
			img.Pix[off+1] = c.G
			img.Pix[off+2] = c.B
			img.Pix[off+3] = c.A
			off += 4
		}
	}
	return img
}
