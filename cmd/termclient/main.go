// termclient is a terminal viewer for mandelserver. It connects to the
// websocket endpoint, consumes the band stream for one full frame and
// prints it as 24-bit ANSI half-block cells, so a render can be
// eyeballed without a browser.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/marben/mandelzoom"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	url := flag.String("url", "ws://localhost:8080/ws", "server websocket endpoint")
	cols := flag.Int("cols", 100, "preview width in terminal cells")
	timeout := flag.Duration("timeout", 5*time.Minute, "give up after this long")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	log.Printf("connecting to %s", *url)
	conn, _, err := websocket.Dial(ctx, *url, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.CloseNow()
	// Band payloads for large frames exceed the default read limit.
	conn.SetReadLimit(-1)

	img, err := receiveFrame(ctx, conn)
	if err != nil {
		return err
	}

	fmt.Print(ansiHalfBlocks(img, *cols))
	return conn.Close(websocket.StatusNormalClosure, "")
}

// receiveFrame assembles band messages into a full image and returns it
// once the server announces frame completion.
func receiveFrame(ctx context.Context, conn *websocket.Conn) (*image.RGBA, error) {
	var img *image.RGBA
	for {
		var m mandelzoom.Message
		if err := wsjson.Read(ctx, conn, &m); err != nil {
			return nil, fmt.Errorf("read: %w", err)
		}

		switch m.Kind {
		case mandelzoom.MsgHello:
			log.Printf("session: %dx%d, %d iterations", m.Width, m.Height, m.MaxIter)
			img = image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))

		case mandelzoom.MsgBand:
			if img == nil {
				return nil, fmt.Errorf("band before hello")
			}
			want := img.Rect.Dx() * (m.Y1 - m.Y0) * 4
			if len(m.Pix) != want {
				return nil, fmt.Errorf("band %d-%d: got %d pixel bytes, want %d", m.Y0, m.Y1, len(m.Pix), want)
			}
			copy(img.Pix[img.PixOffset(0, m.Y0):], m.Pix)
			log.Printf("bands: %d/%d", m.Done, m.Total)

		case mandelzoom.MsgFrameDone:
			if img == nil {
				return nil, fmt.Errorf("frame done before hello")
			}
			return img, nil
		}
	}
}

// ansiHalfBlocks renders img downsampled to cols terminal columns, two
// image rows per text line using the upper-half-block glyph with
// foreground and background truecolor escapes.
func ansiHalfBlocks(img *image.RGBA, cols int) string {
	w := img.Rect.Dx()
	h := img.Rect.Dy()
	if cols > w {
		cols = w
	}
	rows := h * cols / w / 2
	if rows < 1 {
		rows = 1
	}

	var b strings.Builder
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			x := cx * w / cols
			top := img.RGBAAt(x, (2*cy)*h/(2*rows))
			bot := img.RGBAAt(x, (2*cy+1)*h/(2*rows))
			fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
				top.R, top.G, top.B, bot.R, bot.G, bot.B)
		}
		b.WriteString("\x1b[0m\n")
	}
	return b.String()
}
