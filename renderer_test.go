package mandelzoom

import (
	"context"
	"testing"
)

// TestRenderMatchesScalarLoop checks the full pipeline against a plain
// single-threaded per-pixel computation.
func TestRenderMatchesScalarLoop(t *testing.T) {
	const (
		w, h    = 64, 48
		maxIter = 96
	)
	r := &Renderer{Width: w, Height: h, MaxIter: maxIter, Bands: 6, Workers: 3}
	frame, err := r.Render(context.Background(), Home, nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			want := EscapeTime(Home.PointAt(x, y, w, h), maxIter)
			if got := frame.At(x, y); got != want {
				t.Fatalf("pixel (%d, %d): got %d, want %d", x, y, got, want)
			}
		}
	}
}

// TestRenderBandCountInvariant renders the same viewport with several
// decompositions; the grids must be identical per pixel.
func TestRenderBandCountInvariant(t *testing.T) {
	const (
		w, h    = 80, 80
		maxIter = 64
	)
	base := &Renderer{Width: w, Height: h, MaxIter: maxIter, Bands: 1, Workers: 1}
	want, err := base.Render(context.Background(), SeahorseValley, nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for _, tc := range []struct {
		bands, workers int
	}{
		{2, 2}, {4, 4}, {8, 4}, {80, 4}, {7, 3}, // 7 exercises the ragged last band
	} {
		r := &Renderer{Width: w, Height: h, MaxIter: maxIter, Bands: tc.bands, Workers: tc.workers}
		got, err := r.Render(context.Background(), SeahorseValley, nil)
		if err != nil {
			t.Fatalf("Render with %d bands: %v", tc.bands, err)
		}
		for i := range want.Counts {
			if got.Counts[i] != want.Counts[i] {
				t.Fatalf("%d bands / %d workers: pixel %d: got %d, want %d",
					tc.bands, tc.workers, i, got.Counts[i], want.Counts[i])
			}
		}
	}
}

func TestRenderProgress(t *testing.T) {
	const (
		w, h  = 32, 50
		bands = 7
	)
	r := &Renderer{Width: w, Height: h, MaxIter: 32, Bands: bands, Workers: 4}

	var updates []BandUpdate
	rowsSeen := make([]bool, h)
	_, err := r.Render(context.Background(), Home, func(f *Frame, u BandUpdate) {
		updates = append(updates, u)
		for y := u.Y0; y < u.Y1; y++ {
			if rowsSeen[y] {
				t.Errorf("row %d reported by more than one band", y)
			}
			rowsSeen[y] = true
		}
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if len(updates) != bands {
		t.Fatalf("got %d updates, want %d", len(updates), bands)
	}
	for i, u := range updates {
		if u.Done != i+1 {
			t.Errorf("update %d: Done = %d, want %d", i, u.Done, i+1)
		}
		if u.Total != bands {
			t.Errorf("update %d: Total = %d, want %d", i, u.Total, bands)
		}
	}
	for y, seen := range rowsSeen {
		if !seen {
			t.Errorf("row %d never reported", y)
		}
	}
}

func TestRenderInvalidViewport(t *testing.T) {
	r := &Renderer{Width: 16, Height: 16, MaxIter: 16}
	if _, err := r.Render(context.Background(), Viewport{ReMin: 1, ReMax: -1, ImMin: 0, ImMax: 1}, nil); err == nil {
		t.Fatal("Render accepted an invalid viewport")
	}
}

func TestRenderCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &Renderer{Width: 64, Height: 64, MaxIter: 64, Bands: 8}
	if _, err := r.Render(ctx, Home, nil); err == nil {
		t.Fatal("Render ignored a canceled context")
	}
}

func TestFrameBandRGBA(t *testing.T) {
	p := NewPalette(16)
	f := NewFrame(4, 4)
	for i := range f.Counts {
		f.Counts[i] = i
	}

	img := f.BandRGBA(p, 1, 3)
	if img.Bounds().Min.Y != 1 || img.Bounds().Max.Y != 3 || img.Bounds().Dx() != 4 {
		t.Fatalf("band image bounds = %v, want (0,1)-(4,3)", img.Bounds())
	}
	for y := 1; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got, want := img.RGBAAt(x, y), p.At(f.At(x, y)); got != want {
				t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}
