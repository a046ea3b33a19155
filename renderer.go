package mandelzoom

import (
	"context"
	"fmt"
	"sync"
)

// DefaultWorkers is the size of the render worker pool. It is a small
// fixed constant rather than the core count: bands are coarse enough
// that more workers buy nothing at the default dimensions.
const DefaultWorkers = 4

// BandUpdate describes one completed horizontal band of a frame.
// Done/Total give the overall progress at the moment the band finished.
type BandUpdate struct {
	Index  int
	Y0, Y1 int
	Done   int
	Total  int
}

// ProgressFunc observes band completion. It is called once per band,
// from the worker goroutine that computed the band, serialized under
// the renderer's progress lock; Done is strictly increasing across
// calls. The rows [Y0, Y1) of the frame are fully written before the
// call is made and may be read from the callback; other rows may still
// be in flight.
type ProgressFunc func(f *Frame, u BandUpdate)

// Renderer computes complete frames for a viewport by splitting the
// pixel grid into horizontal bands and evaluating them on a bounded
// worker pool. A Renderer is stateless between calls and safe to reuse;
// Render itself is synchronous.
type Renderer struct {
	Width, Height int
	MaxIter       int
	Bands         int // number of horizontal bands; 0 means Workers
	Workers       int // worker pool size; 0 means DefaultWorkers
}

type band struct {
	index  int
	y0, y1 int
}

// Render computes the full escape-time grid for vp. Bands complete in
// arbitrary order but land at their correct row offsets; onBand (may be
// nil) is invoked after each one. Render returns once every band of the
// frame has finished. Cancelling ctx abandons not-yet-started bands and
// returns the context's error; bands already running are completed.
func (r *Renderer) Render(ctx context.Context, vp Viewport, onBand ProgressFunc) (*Frame, error) {
	if r.Width <= 0 || r.Height <= 0 || r.MaxIter <= 0 {
		return nil, fmt.Errorf("renderer: bad dimensions %dx%d maxIter=%d", r.Width, r.Height, r.MaxIter)
	}
	if !vp.Valid() {
		return nil, fmt.Errorf("renderer: invalid viewport %+v", vp)
	}

	workers := r.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	bands := r.Bands
	if bands <= 0 {
		bands = workers
	}
	if bands > r.Height {
		bands = r.Height
	}

	frame := NewFrame(r.Width, r.Height)
	jobs := make(chan band)

	var (
		mu   sync.Mutex
		done int
	)
	bandFinished := func(b band) {
		mu.Lock()
		defer mu.Unlock()
		done++
		logger().Debug("band finished", "index", b.index, "y0", b.y0, "y1", b.y1, "done", done, "total", bands)
		if onBand != nil {
			onBand(frame, BandUpdate{Index: b.index, Y0: b.y0, Y1: b.y1, Done: done, Total: bands})
		}
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for b := range jobs {
				r.renderBand(frame, vp, b)
				bandFinished(b)
			}
		}()
	}

	// Hand out bands; the last one takes the remainder rows when the
	// height does not divide evenly.
	rowsPer := r.Height / bands
feed:
	for i := 0; i < bands; i++ {
		y0 := i * rowsPer
		y1 := y0 + rowsPer
		if i == bands-1 {
			y1 = r.Height
		}
		select {
		case jobs <- band{index: i, y0: y0, y1: y1}:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}
	return frame, nil
}

// renderBand evaluates rows [b.y0, b.y1) with the batched evaluator,
// one row per sweep. The worker writes only its own rows.
func (r *Renderer) renderBand(frame *Frame, vp Viewport, b band) {
	cs := make([]complex128, r.Width)
	for y := b.y0; y < b.y1; y++ {
		for x := 0; x < r.Width; x++ {
			cs[x] = vp.PointAt(x, y, r.Width, r.Height)
		}
		EscapeTimes(cs, r.MaxIter, frame.Row(y))
	}
}
