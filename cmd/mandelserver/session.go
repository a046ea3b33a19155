package main

import (
	"context"
	"fmt"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/marben/mandelzoom"
)

type sessionConfig struct {
	width, height  int
	maxIter        int
	zoom           float64
	workers, bands int
	start          mandelzoom.Viewport
}

// session drives one viewer: a controller owning the viewport, a
// renderer producing frames, and the websocket both band updates and
// click events travel over.
type session struct {
	cfg  sessionConfig
	conn *websocket.Conn
	ctrl *mandelzoom.Controller
	rend *mandelzoom.Renderer
	pal  *mandelzoom.Palette
}

func newSession(cfg sessionConfig, conn *websocket.Conn) *session {
	ctrl, err := mandelzoom.NewController(cfg.start, cfg.width, cfg.height, cfg.zoom)
	if err != nil {
		// config is validated at startup; a bad session config is a bug
		panic(err)
	}
	return &session{
		cfg:  cfg,
		conn: conn,
		ctrl: ctrl,
		rend: &mandelzoom.Renderer{
			Width:   cfg.width,
			Height:  cfg.height,
			MaxIter: cfg.maxIter,
			Bands:   cfg.bands,
			Workers: cfg.workers,
		},
		pal: mandelzoom.NewPalette(cfg.maxIter),
	}
}

// run renders the starting view, then loops: accept a click, zoom,
// render, stream. It returns when the viewer disconnects, the request
// context ends, or a write fails (the display is gone, which is fatal
// to the session).
func (s *session) run(ctx context.Context) error {
	start := s.cfg.start
	hello := mandelzoom.Message{
		Kind:     mandelzoom.MsgHello,
		Width:    s.cfg.width,
		Height:   s.cfg.height,
		MaxIter:  s.cfg.maxIter,
		Viewport: &start,
	}
	if err := wsjson.Write(ctx, s.conn, hello); err != nil {
		return fmt.Errorf("write hello: %w", err)
	}

	// Reader goroutine feeds clicks; while a render is in flight nobody
	// listens, so clicks arriving mid-render are dropped on the floor,
	// which is exactly the controller's discard rule.
	clicks := make(chan mandelzoom.Message)
	readErr := make(chan error, 1)
	go func() {
		for {
			var m mandelzoom.Message
			if err := wsjson.Read(ctx, s.conn, &m); err != nil {
				readErr <- err
				return
			}
			if m.Kind != mandelzoom.MsgClick {
				continue
			}
			select {
			case clicks <- m:
			default:
			}
		}
	}()

	if vp, ok := s.ctrl.Start(); ok {
		if err := s.renderAndStream(ctx, vp); err != nil {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-readErr:
			return err
		case m := <-clicks:
			vp, ok := s.ctrl.Click(m.X, m.Y, m.Button)
			if !ok {
				continue
			}
			if err := s.renderAndStream(ctx, vp); err != nil {
				return err
			}
		}
	}
}

// renderAndStream computes the frame for vp and pushes each band to the
// viewer as it completes. Band callbacks are serialized by the
// renderer, so writing to the websocket from them is safe; the first
// write failure is remembered and aborts the frame once the render
// joins.
func (s *session) renderAndStream(ctx context.Context, vp mandelzoom.Viewport) error {
	var writeErr error
	_, err := s.rend.Render(ctx, vp, func(f *mandelzoom.Frame, u mandelzoom.BandUpdate) {
		if writeErr != nil {
			return
		}
		img := f.BandRGBA(s.pal, u.Y0, u.Y1)
		writeErr = wsjson.Write(ctx, s.conn, mandelzoom.Message{
			Kind:  mandelzoom.MsgBand,
			Y0:    u.Y0,
			Y1:    u.Y1,
			Done:  u.Done,
			Total: u.Total,
			Pix:   img.Pix,
		})
	})
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if writeErr != nil {
		return fmt.Errorf("stream band: %w", writeErr)
	}

	s.ctrl.FrameDone()
	return wsjson.Write(ctx, s.conn, mandelzoom.Message{Kind: mandelzoom.MsgFrameDone, Viewport: &vp})
}
