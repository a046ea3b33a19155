//go:build js && wasm

package main

import (
	"io"
	"syscall/js"
)

// socket wraps a browser WebSocket as a channel of received messages.
// The server talks JSON text frames; binary frames are tolerated in
// case a proxy rewrites the opcode.
type socket struct {
	ws     js.Value
	openCh chan struct{} // closed when connected (or failed)
	msgs   chan []byte   // closed when the connection closes
	err    error
}

func newSocket(url string) *socket {
	s := &socket{
		ws:     js.Global().Get("WebSocket").New(url),
		openCh: make(chan struct{}),
		msgs:   make(chan []byte, 64),
	}
	s.ws.Set("binaryType", "arraybuffer")

	s.ws.Set("onopen", js.FuncOf(func(js.Value, []js.Value) any {
		close(s.openCh)
		return nil
	}))

	s.ws.Set("onerror", js.FuncOf(func(js.Value, []js.Value) any {
		s.err = io.ErrUnexpectedEOF
		select {
		case <-s.openCh:
		default:
			close(s.openCh)
		}
		return nil
	}))

	s.ws.Set("onmessage", js.FuncOf(func(this js.Value, args []js.Value) any {
		data := args[0].Get("data")
		if data.Type() == js.TypeString {
			s.msgs <- []byte(data.String())
			return nil
		}
		u8 := js.Global().Get("Uint8Array").New(data)
		b := make([]byte, u8.Get("byteLength").Int())
		js.CopyBytesToGo(b, u8)
		s.msgs <- b
		return nil
	}))

	s.ws.Set("onclose", js.FuncOf(func(js.Value, []js.Value) any {
		close(s.msgs)
		return nil
	}))

	return s
}

// sendText waits until the socket is open, then sends one text frame.
func (s *socket) sendText(b []byte) error {
	<-s.openCh
	if s.err != nil {
		return s.err
	}
	s.ws.Call("send", string(b))
	return nil
}
