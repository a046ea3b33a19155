package mandelzoom

import "math"

// Viewport is the rectangular region of the complex plane currently
// mapped onto the pixel grid.
type Viewport struct {
	ReMin float64 `json:"reMin"`
	ReMax float64 `json:"reMax"`
	ImMin float64 `json:"imMin"`
	ImMax float64 `json:"imMax"`
}

// Home is the classic full view of the set.
var Home = Viewport{ReMin: -2.5, ReMax: 1.5, ImMin: -2.0, ImMax: 2.0}

// Classic regions / landmarks in the Mandelbrot set, usable as
// starting views for any of the front ends.
var (
	// Seahorse Valley - dense filaments and repeating "seahorse" curls
	SeahorseValley = Viewport{ReMin: -0.8, ReMax: -0.7, ImMin: 0.05, ImMax: 0.15}

	// Elephant Valley - large bulb with trunk-like tendrils
	ElephantValley = Viewport{ReMin: -1.85, ReMax: -1.75, ImMin: -0.10, ImMax: -0.02}

	// Spiral Minibrot - small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Viewport{ReMin: -0.7435, ReMax: -0.7420, ImMin: 0.1310, ImMax: 0.1325}

	// Triple Spiral - threefold symmetric spiral structure
	TripleSpiral = Viewport{ReMin: -0.7480, ReMax: -0.7450, ImMin: 0.0950, ImMax: 0.0980}

	// Valley of the Dragon - deep, highly detailed spiral filaments
	ValleyOfTheDragon = Viewport{ReMin: -0.7400, ReMax: -0.7350, ImMin: 0.1800, ImMax: 0.1850}
)

// Landmarks maps flag-friendly names to the predefined views.
var Landmarks = map[string]Viewport{
	"home":     Home,
	"seahorse": SeahorseValley,
	"elephant": ElephantValley,
	"minibrot": SpiralMinibrot,
	"triple":   TripleSpiral,
	"dragon":   ValleyOfTheDragon,
}

// Valid reports whether both axes have positive extent.
func (v Viewport) Valid() bool {
	return v.ReMin < v.ReMax && v.ImMin < v.ImMax
}

// Width returns the real-axis extent.
func (v Viewport) Width() float64 { return v.ReMax - v.ReMin }

// Height returns the imaginary-axis extent.
func (v Viewport) Height() float64 { return v.ImMax - v.ImMin }

// Center returns the midpoint of the viewport.
func (v Viewport) Center() complex128 {
	return complex((v.ReMin+v.ReMax)/2, (v.ImMin+v.ImMax)/2)
}

// PointAt maps the pixel (x, y) of an imgW x imgH grid to its point in
// the complex plane by linear interpolation. Row 0 maps to ImMin; the
// imaginary axis is not flipped.
func (v Viewport) PointAt(x, y, imgW, imgH int) complex128 {
	re := v.ReMin + (float64(x)/float64(imgW))*v.Width()
	im := v.ImMin + (float64(y)/float64(imgH))*v.Height()
	return complex(re, im)
}

// PixelOf is the inverse of PointAt: it returns the nearest pixel for
// the given plane point, clamped to the grid bounds.
func (v Viewport) PixelOf(c complex128, imgW, imgH int) (x, y int) {
	x = int(math.Round((real(c) - v.ReMin) / v.Width() * float64(imgW)))
	y = int(math.Round((imag(c) - v.ImMin) / v.Height() * float64(imgH)))
	return clamp(x, 0, imgW-1), clamp(y, 0, imgH-1)
}

// ZoomedAt returns a viewport with the same aspect whose width and
// height are scaled by factor, centered on the given plane point.
// Factors below 1 zoom in, factors above 1 zoom out.
func (v Viewport) ZoomedAt(center complex128, factor float64) Viewport {
	w := v.Width() * factor
	h := v.Height() * factor
	return Viewport{
		ReMin: real(center) - w/2,
		ReMax: real(center) + w/2,
		ImMin: imag(center) - h/2,
		ImMax: imag(center) + h/2,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
