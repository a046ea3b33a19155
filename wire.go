package mandelzoom

// Wire messages exchanged between the render server and its viewers as
// JSON text frames over the websocket. A single envelope type keeps the
// WASM client's decoding trivial; Kind selects which fields are set.

const (
	// MsgHello is sent by the server once per connection: grid
	// dimensions, iteration budget and the starting viewport.
	MsgHello = "hello"
	// MsgBand carries one completed band: raw RGBA rows [Y0, Y1) plus
	// progress counters.
	MsgBand = "band"
	// MsgFrameDone announces that every band of the current frame has
	// been presented; the viewport it was rendered for is echoed so
	// viewers can draw axis overlays.
	MsgFrameDone = "frameDone"
	// MsgClick is sent by a viewer: a pointer press at pixel (X, Y)
	// with Button 0 (zoom in) or 1 (zoom out).
	MsgClick = "click"
)

// Message is the wire envelope.
type Message struct {
	Kind string `json:"kind"`

	// hello
	Width   int `json:"width,omitempty"`
	Height  int `json:"height,omitempty"`
	MaxIter int `json:"maxIter,omitempty"`

	// hello, frameDone
	Viewport *Viewport `json:"viewport,omitempty"`

	// band
	Y0    int    `json:"y0,omitempty"`
	Y1    int    `json:"y1,omitempty"`
	Done  int    `json:"done,omitempty"`
	Total int    `json:"total,omitempty"`
	Pix   []byte `json:"pix,omitempty"` // RGBA, 4*Width*(Y1-Y0) bytes, base64 on the wire

	// click
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Button Button `json:"button"`
}
