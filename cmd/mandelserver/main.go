// mandelserver renders Mandelbrot frames on behalf of remote viewers.
// It serves the WASM web client from ./static plus a /ws websocket
// endpoint; every connection gets its own viewport, controller and
// renderer, receives band updates as they complete, and steers zooming
// by sending click messages back.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/coder/websocket"

	"github.com/marben/mandelzoom"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	addr := flag.String("addr", ":8080", "listen address")
	staticDir := flag.String("static", "./static", "directory with index.html and the WASM client")
	width := flag.Int("width", 800, "image width in pixels")
	height := flag.Int("height", 800, "image height in pixels")
	maxIter := flag.Int("max-iter", 256, "iteration budget per point")
	zoom := flag.Float64("zoom", 0.1, "zoom-in factor per click, in (0,1)")
	workers := flag.Int("workers", mandelzoom.DefaultWorkers, "render worker pool size per session")
	bands := flag.Int("bands", 16, "horizontal bands per frame")
	view := flag.String("view", "home", "starting landmark (home, seahorse, elephant, minibrot, triple, dragon)")
	verbose := flag.Bool("v", false, "debug logging to stderr")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	mandelzoom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	start, ok := mandelzoom.Landmarks[*view]
	if !ok {
		return fmt.Errorf("unknown landmark %q", *view)
	}

	// Fail fast on a bad flag combination instead of per session.
	if _, err := mandelzoom.NewController(start, *width, *height, *zoom); err != nil {
		return err
	}

	cfg := sessionConfig{
		width:   *width,
		height:  *height,
		maxIter: *maxIter,
		zoom:    *zoom,
		workers: *workers,
		bands:   *bands,
		start:   start,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(cfg))
	mux.Handle("/", http.FileServer(http.Dir(*staticDir)))

	srv := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://localhost%s", *addr)
	return srv.ListenAndServe()
}

// websocketHandler upgrades the connection and hands it to a session.
// The session owns the connection for its whole lifetime; the handler
// only reports how it ended.
func websocketHandler(cfg sessionConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}
		defer conn.CloseNow()

		log.Printf("viewer connected: %s", r.RemoteAddr)
		if err := newSession(cfg, conn).run(r.Context()); err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure ||
				websocket.CloseStatus(err) == websocket.StatusGoingAway {
				log.Printf("viewer left: %s", r.RemoteAddr)
				return
			}
			log.Printf("session %s: %v", r.RemoteAddr, err)
			return
		}
		conn.Close(websocket.StatusNormalClosure, "")
	}
}
