package mandelzoom

import "testing"

func TestEscapeTimeKnownPoints(t *testing.T) {
	const maxIter = 256
	tests := []struct {
		name string
		c    complex128
		want int
	}{
		{"far outside", complex(3, 0), 0},
		{"outside imaginary axis", complex(0, 2.5), 0},
		{"on escape circle", complex(2, 0), 1},
		{"one plus i", complex(1, 1), 1},
		{"origin", complex(0, 0), maxIter - 1},
		{"period-two point", complex(-1, 0), maxIter - 1},
		{"needle tip", complex(-2, 0), maxIter - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeTime(tt.c, maxIter); got != tt.want {
				t.Errorf("EscapeTime(%v, %d) = %d, want %d", tt.c, maxIter, got, tt.want)
			}
		})
	}
}

func TestEscapeTimeOutsidePointsEscapeEarly(t *testing.T) {
	// Any |c| > 2 must escape well before the budget runs out.
	const maxIter = 256
	for _, c := range []complex128{3, complex(-3, 0.1), complex(0, 2.1), complex(2, 2), complex(-2.5, -1.5)} {
		if got := EscapeTime(c, maxIter); got >= maxIter-1 {
			t.Errorf("EscapeTime(%v, %d) = %d, want < %d", c, maxIter, got, maxIter-1)
		}
	}
}

// TestScalarBatchedAgree cross-checks the masked batched sweep against
// the scalar evaluator on a grid spanning the default viewport.
func TestScalarBatchedAgree(t *testing.T) {
	const (
		maxIter = 128
		w, h    = 100, 100 // 10k sample points
	)

	cs := make([]complex128, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cs = append(cs, Home.PointAt(x, y, w, h))
		}
	}

	batched := make([]int, len(cs))
	EscapeTimes(cs, maxIter, batched)

	for i, c := range cs {
		if scalar := EscapeTime(c, maxIter); batched[i] != scalar {
			t.Fatalf("point %v: batched = %d, scalar = %d", c, batched[i], scalar)
		}
	}
}

func TestEscapeTimesResultRange(t *testing.T) {
	const maxIter = 64
	cs := []complex128{0, -1, 3, complex(0.3, 0.5), complex(-0.75, 0.1)}
	out := make([]int, len(cs))
	EscapeTimes(cs, maxIter, out)
	for i, n := range out {
		if n < 0 || n > maxIter-1 {
			t.Errorf("point %v: count %d outside [0, %d]", cs[i], n, maxIter-1)
		}
	}
}
