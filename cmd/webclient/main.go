//go:build js && wasm

// webclient is the browser viewer for mandelserver. It receives band
// updates over the websocket and blits them onto a canvas as they
// arrive, draws the axis overlay when a frame completes, and forwards
// canvas clicks so the server can zoom.
package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/marben/mandelzoom"
)

func main() {
	logScreenf("starting web viewer")

	// Same host that served us, ws or wss to match the page.
	loc := js.Global().Get("window").Get("location")
	host := loc.Get("host").String()
	proto := "ws"
	if loc.Get("protocol").String() == "https:" {
		proto = "wss"
	}
	s := newSocket(proto + "://" + host + "/ws")

	var width, height int
	for raw := range s.msgs {
		var m mandelzoom.Message
		if err := json.Unmarshal(raw, &m); err != nil {
			logScreenf("bad message: %v", err)
			continue
		}

		switch m.Kind {
		case mandelzoom.MsgHello:
			width, height = m.Width, m.Height
			initCanvas(width, height, "#000000")
			hudSetProgress(0, 0)
			installClickHandler(s)
			logScreenf("session: %dx%d, %d iterations", width, height, m.MaxIter)

		case mandelzoom.MsgBand:
			drawBand(m.Pix, width, m.Y0, m.Y1)
			hudSetProgress(m.Done, m.Total)

		case mandelzoom.MsgFrameDone:
			if m.Viewport != nil {
				drawAxes(*m.Viewport, width, height)
				c := m.Viewport.Center()
				logScreenf("frame done: center (%.6f, %.6f), width %.3g", real(c), imag(c), m.Viewport.Width())
			}
		}
	}
	logScreenf("connection closed")
}

// installClickHandler forwards canvas clicks to the server. The left
// button zooms in, the right button zooms out; the context menu is
// suppressed so the right button reaches us at all.
func installClickHandler(s *socket) {
	canvas := js.Global().Get("document").Call("getElementById", "myCanvas")

	canvas.Call("addEventListener", "mousedown", js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := args[0]
		var b mandelzoom.Button
		switch ev.Get("button").Int() {
		case 0:
			b = mandelzoom.ButtonPrimary
		case 2:
			b = mandelzoom.ButtonSecondary
		default:
			return nil
		}
		rect := canvas.Call("getBoundingClientRect")
		x := ev.Get("clientX").Int() - rect.Get("left").Int()
		y := ev.Get("clientY").Int() - rect.Get("top").Int()
		go sendClick(s, x, y, b)
		return nil
	}))

	canvas.Call("addEventListener", "contextmenu", js.FuncOf(func(this js.Value, args []js.Value) any {
		args[0].Call("preventDefault")
		return nil
	}))
}

func sendClick(s *socket, x, y int, b mandelzoom.Button) {
	raw, err := json.Marshal(mandelzoom.Message{Kind: mandelzoom.MsgClick, X: x, Y: y, Button: b})
	if err != nil {
		logScreenf("marshal click: %v", err)
		return
	}
	if err := s.sendText(raw); err != nil {
		logScreenf("send click: %v", err)
	}
}
