package mandelzoom

import (
	"math"
	"testing"
)

func approxEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-12
}

func TestPointAt(t *testing.T) {
	const w, h = 800, 800
	tests := []struct {
		name string
		x, y int
		want complex128
	}{
		{"top left", 0, 0, complex(-2.5, -2.0)},
		{"center", 400, 400, complex(-0.5, 0)},
		{"quarter", 200, 600, complex(-1.5, 1.0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Home.PointAt(tt.x, tt.y, w, h)
			if !approxEq(real(got), real(tt.want)) || !approxEq(imag(got), imag(tt.want)) {
				t.Errorf("PointAt(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

// TestForwardInverseRoundTrip checks that mapping a pixel into the
// plane and back recovers the exact pixel for every grid position.
func TestForwardInverseRoundTrip(t *testing.T) {
	const w, h = 80, 60
	for _, vp := range []Viewport{Home, SeahorseValley, SpiralMinibrot} {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				gx, gy := vp.PixelOf(vp.PointAt(x, y, w, h), w, h)
				if gx != x || gy != y {
					t.Fatalf("viewport %+v: (%d, %d) round-tripped to (%d, %d)", vp, x, y, gx, gy)
				}
			}
		}
	}
}

func TestPixelOfClamps(t *testing.T) {
	const w, h = 800, 800
	x, y := Home.PixelOf(complex(99, -99), w, h)
	if x != w-1 || y != 0 {
		t.Errorf("PixelOf out-of-view point = (%d, %d), want (%d, %d)", x, y, w-1, 0)
	}
}

// TestZoomInWorkedExample is the concrete case from the interaction
// design: default view, 800x800 grid, click at the exact center pixel,
// factor 0.1.
func TestZoomInWorkedExample(t *testing.T) {
	center := Home.PointAt(400, 400, 800, 800)
	got := Home.ZoomedAt(center, 0.1)

	want := Viewport{ReMin: -0.7, ReMax: -0.3, ImMin: -0.2, ImMax: 0.2}
	for _, c := range []struct {
		name      string
		got, want float64
	}{
		{"ReMin", got.ReMin, want.ReMin},
		{"ReMax", got.ReMax, want.ReMax},
		{"ImMin", got.ImMin, want.ImMin},
		{"ImMax", got.ImMax, want.ImMax},
		{"width", got.Width(), 0.4},
		{"height", got.Height(), 0.4},
	} {
		if !approxEq(c.got, c.want) {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestZoomOutReciprocal(t *testing.T) {
	got := Home.ZoomedAt(Home.Center(), 1/0.1)
	if !approxEq(got.Width(), Home.Width()*10) || !approxEq(got.Height(), Home.Height()*10) {
		t.Errorf("zoom-out dimensions = %v x %v, want %v x %v",
			got.Width(), got.Height(), Home.Width()*10, Home.Height()*10)
	}
	if !approxEq(real(got.Center()), real(Home.Center())) || !approxEq(imag(got.Center()), imag(Home.Center())) {
		t.Errorf("zoom-out moved the center: %v, want %v", got.Center(), Home.Center())
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		name string
		vp   Viewport
		want bool
	}{
		{"home", Home, true},
		{"zero", Viewport{}, false},
		{"flipped real", Viewport{ReMin: 1, ReMax: -1, ImMin: -1, ImMax: 1}, false},
		{"flipped imaginary", Viewport{ReMin: -1, ReMax: 1, ImMin: 1, ImMax: -1}, false},
		{"degenerate", Viewport{ReMin: 0, ReMax: 0, ImMin: -1, ImMax: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.vp.Valid(); got != tt.want {
				t.Errorf("Valid(%+v) = %v, want %v", tt.vp, got, tt.want)
			}
		})
	}
}

func TestLandmarksValid(t *testing.T) {
	for name, vp := range Landmarks {
		if !vp.Valid() {
			t.Errorf("landmark %q is invalid: %+v", name, vp)
		}
	}
}
