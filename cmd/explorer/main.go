// explorer is the native interactive Mandelbrot viewer. Left click
// zooms in on the clicked point, right click zooms out, closing the
// window exits. Bands appear top to bottom while a frame is being
// computed, with a progress bar along the bottom edge; axes and tick
// labels are drawn once the frame is complete.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/marben/mandelzoom"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	width := flag.Int("width", 800, "image width in pixels")
	height := flag.Int("height", 800, "image height in pixels")
	maxIter := flag.Int("max-iter", 256, "iteration budget per point")
	zoom := flag.Float64("zoom", 0.1, "zoom-in factor per click, in (0,1)")
	workers := flag.Int("workers", mandelzoom.DefaultWorkers, "render worker pool size")
	bands := flag.Int("bands", 0, "horizontal bands per frame (0: one per worker)")
	view := flag.String("view", "home", "starting landmark (home, seahorse, elephant, minibrot, triple, dragon)")
	verbose := flag.Bool("v", false, "debug logging to stderr")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	mandelzoom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	vp, ok := mandelzoom.Landmarks[*view]
	if !ok {
		return fmt.Errorf("unknown landmark %q", *view)
	}

	ctrl, err := mandelzoom.NewController(vp, *width, *height, *zoom)
	if err != nil {
		return err
	}

	a := &app{
		ctrl:    ctrl,
		rend:    &mandelzoom.Renderer{Width: *width, Height: *height, MaxIter: *maxIter, Bands: *bands, Workers: *workers},
		pal:     mandelzoom.NewPalette(*maxIter),
		width:   *width,
		height:  *height,
		raw:     image.NewRGBA(image.Rect(0, 0, *width, *height)),
		fractal: ebiten.NewImage(*width, *height),
		bandCh:  make(chan bandPixels, 64), // deep enough that workers never block on the UI tick
		doneCh:  make(chan renderResult, 1),
	}
	if first, ok := a.ctrl.Start(); ok {
		a.startRender(first)
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Mandelbrot Set")
	return ebiten.RunGame(a)
}

// bandPixels is one completed band ready to blit; img keeps global
// coordinates so draw.Draw places it at the right vertical offset.
type bandPixels struct {
	img         *image.RGBA
	done, total int
}

type renderResult struct {
	vp  mandelzoom.Viewport
	err error
}

type app struct {
	ctrl *mandelzoom.Controller
	rend *mandelzoom.Renderer
	pal  *mandelzoom.Palette

	width, height int

	raw     *image.RGBA   // assembly buffer, written only on the game loop goroutine
	fractal *ebiten.Image // presented copy of raw
	dirty   bool

	bandCh chan bandPixels
	doneCh chan renderResult

	progress  float64
	overlayVp mandelzoom.Viewport
	overlay   bool
}

// startRender launches the frame computation for vp. The controller is
// already in the Rendering state when this is called.
func (a *app) startRender(vp mandelzoom.Viewport) {
	a.progress = 0
	a.overlay = false
	draw.Draw(a.raw, a.raw.Bounds(), image.Black, image.Point{}, draw.Src)
	a.dirty = true

	go func() {
		_, err := a.rend.Render(context.Background(), vp, func(f *mandelzoom.Frame, u mandelzoom.BandUpdate) {
			a.bandCh <- bandPixels{img: f.BandRGBA(a.pal, u.Y0, u.Y1), done: u.Done, total: u.Total}
		})
		a.doneCh <- renderResult{vp: vp, err: err}
	}()
}

func (a *app) Update() error {
	// Drain whatever the render goroutine produced since last tick.
	for draining := true; draining; {
		select {
		case b := <-a.bandCh:
			draw.Draw(a.raw, b.img.Bounds(), b.img, b.img.Bounds().Min, draw.Src)
			a.progress = float64(b.done) / float64(b.total)
			a.dirty = true
		case res := <-a.doneCh:
			if res.err != nil {
				return fmt.Errorf("render: %w", res.err)
			}
			a.ctrl.FrameDone()
			a.overlayVp = res.vp
			a.overlay = true
		default:
			draining = false
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if vp, ok := a.ctrl.Click(x, y, mandelzoom.ButtonPrimary); ok {
			a.startRender(vp)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		if vp, ok := a.ctrl.Click(x, y, mandelzoom.ButtonSecondary); ok {
			a.startRender(vp)
		}
	}

	return nil
}

func (a *app) Draw(screen *ebiten.Image) {
	if a.dirty {
		a.fractal.WritePixels(a.raw.Pix)
		a.dirty = false
	}
	screen.DrawImage(a.fractal, nil)

	if a.ctrl.State() == mandelzoom.Rendering {
		a.drawProgressBar(screen)
	} else if a.overlay {
		a.drawAxes(screen)
	}

	vp := a.ctrl.Viewport()
	c := vp.Center()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("center: (%.6f, %.6f)  width: %.3g", real(c), imag(c), vp.Width()))
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func (a *app) drawProgressBar(screen *ebiten.Image) {
	barY := float32(a.height - 20)
	vector.DrawFilledRect(screen, 0, barY, float32(a.width), 20, color.White, false)
	vector.DrawFilledRect(screen, 0, barY, float32(a.progress*float64(a.width)), 20, color.RGBA{G: 255, A: 255}, false)
}

// drawAxes draws the center cross plus nine tick labels per axis for
// the viewport of the completed frame.
func (a *app) drawAxes(screen *ebiten.Image) {
	white := color.RGBA{255, 255, 255, 255}
	vector.StrokeLine(screen, 0, float32(a.height/2), float32(a.width), float32(a.height/2), 1, white, false)
	vector.StrokeLine(screen, float32(a.width/2), 0, float32(a.width/2), float32(a.height), 1, white, false)

	face := basicfont.Face7x13
	vp := a.overlayVp
	for i := 0; i <= 8; i++ {
		xt := vp.ReMin + float64(i)/8*vp.Width()
		text.Draw(screen, fmt.Sprintf("%.2f", xt), face, i*(a.width/8), a.height/2+5+face.Ascent, white)

		yt := vp.ImMin + float64(i)/8*vp.Height()
		text.Draw(screen, fmt.Sprintf("%.2f", yt), face, a.width/2+5, a.height-i*(a.height/8)+face.Ascent, white)
	}
}
