package mandelzoom

import "fmt"

// State of the interaction controller.
type State int

const (
	// Idle means the displayed image matches the current viewport and
	// input is accepted.
	Idle State = iota
	// Rendering means a frame is being computed; zoom input is
	// discarded until FrameDone.
	Rendering
)

// Button identifies a pointer button in a click event.
type Button int

const (
	ButtonPrimary   Button = iota // zoom in
	ButtonSecondary               // zoom out
	ButtonOther
)

// Controller owns the current viewport and decides when a render may
// start. It is the only mutator of the viewport, and only between
// renders. It is not safe for concurrent use: all calls must come from
// the single coordinating loop of a front end, which is also the model
// the front ends follow.
type Controller struct {
	vp            Viewport
	width, height int
	zoomFactor    float64
	state         State
}

// NewController validates the configuration and returns a controller in
// the Idle state. zoomFactor is the shrink factor for a primary click
// and must lie strictly between 0 and 1; a secondary click applies the
// reciprocal.
func NewController(vp Viewport, width, height int, zoomFactor float64) (*Controller, error) {
	if !vp.Valid() {
		return nil, fmt.Errorf("controller: invalid viewport %+v", vp)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("controller: bad grid %dx%d", width, height)
	}
	if zoomFactor <= 0 || zoomFactor >= 1 {
		return nil, fmt.Errorf("controller: zoom factor %v outside (0,1)", zoomFactor)
	}
	return &Controller{vp: vp, width: width, height: height, zoomFactor: zoomFactor}, nil
}

// Viewport returns the current viewport.
func (c *Controller) Viewport() Viewport { return c.vp }

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Start begins the initial render: Idle -> Rendering, returning the
// viewport to render. Calling it while Rendering is a no-op returning
// false.
func (c *Controller) Start() (Viewport, bool) {
	if c.state != Idle {
		return Viewport{}, false
	}
	c.state = Rendering
	return c.vp, true
}

// Click handles a pointer press at pixel (x, y). While Idle, a primary
// click shrinks the viewport around the clicked plane point by the zoom
// factor and a secondary click grows it by the reciprocal; the new
// viewport is installed atomically, the state moves to Rendering, and
// the viewport to render is returned with ok=true. Clicks with any
// other button, and all clicks while Rendering, are discarded.
func (c *Controller) Click(x, y int, b Button) (Viewport, bool) {
	if c.state != Idle {
		logger().Debug("click discarded while rendering", "x", x, "y", y)
		return Viewport{}, false
	}

	var factor float64
	switch b {
	case ButtonPrimary:
		factor = c.zoomFactor
	case ButtonSecondary:
		factor = 1 / c.zoomFactor
	default:
		return Viewport{}, false
	}

	center := c.vp.PointAt(x, y, c.width, c.height)
	c.vp = c.vp.ZoomedAt(center, factor)
	c.state = Rendering
	logger().Info("zoom", "center", center, "factor", factor, "viewport", c.vp)
	return c.vp, true
}

// FrameDone marks the in-flight render as completed and presented:
// Rendering -> Idle.
func (c *Controller) FrameDone() {
	c.state = Idle
}
