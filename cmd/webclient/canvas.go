//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"

	"github.com/marben/mandelzoom"
)

func canvas2d() (canvas, ctx js.Value) {
	canvas = js.Global().Get("document").Call("getElementById", "myCanvas")
	return canvas, canvas.Call("getContext", "2d")
}

func initCanvas(width, height int, color string) {
	canvas, ctx := canvas2d()
	canvas.Set("width", width)
	canvas.Set("height", height)
	ctx.Set("fillStyle", color)
	ctx.Call("fillRect", 0, 0, width, height)
}

// drawBand puts one band of raw RGBA rows onto the canvas at its global
// vertical offset.
func drawBand(pix []byte, width, y0, y1 int) {
	if len(pix) != width*(y1-y0)*4 {
		logScreenf("band %d-%d: unexpected pixel payload of %d bytes", y0, y1, len(pix))
		return
	}
	_, ctx := canvas2d()

	jsData := js.Global().Get("Uint8ClampedArray").New(len(pix))
	js.CopyBytesToJS(jsData, pix)
	imageData := js.Global().Get("ImageData").New(jsData, width, y1-y0)
	ctx.Call("putImageData", imageData, 0, y0)
}

// drawAxes draws the center cross and nine tick labels per axis for the
// viewport the finished frame was rendered with.
func drawAxes(vp mandelzoom.Viewport, width, height int) {
	_, ctx := canvas2d()

	ctx.Set("strokeStyle", "#ffffff")
	ctx.Set("lineWidth", 1)
	ctx.Call("beginPath")
	ctx.Call("moveTo", 0, height/2)
	ctx.Call("lineTo", width, height/2)
	ctx.Call("moveTo", width/2, 0)
	ctx.Call("lineTo", width/2, height)
	ctx.Call("stroke")

	ctx.Set("fillStyle", "#ffffff")
	ctx.Set("font", "15px Arial")
	for i := 0; i <= 8; i++ {
		xt := vp.ReMin + float64(i)/8*vp.Width()
		ctx.Call("fillText", fmt.Sprintf("%.2f", xt), i*(width/8), height/2+18)

		yt := vp.ImMin + float64(i)/8*vp.Height()
		ctx.Call("fillText", fmt.Sprintf("%.2f", yt), width/2+5, height-i*(height/8))
	}
}

func hudSetProgress(done, total int) {
	doc := js.Global().Get("document")
	doc.Call("getElementById", "bandsDone").Set("textContent", done)
	doc.Call("getElementById", "bandsTotal").Set("textContent", total)
}

// logScreenf appends a formatted message to the log element in the DOM.
func logScreenf(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	logElem := js.Global().Get("document").Call("getElementById", "log")
	logElem.Set("textContent", logElem.Get("textContent").String()+msg+"\n")
}
