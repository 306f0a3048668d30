package flock

// HSL is the color triple handed to a RenderSurface: hue in degrees
// (0-360), saturation and lightness in percent (0-100).
type HSL struct {
	H float64
	S float64
	L float64
}

// RenderSurface is the drawing capability the simulation renders to.
// Width and Height report the current drawable dimensions; the host may
// resize the surface at any time, so callers must re-read them each frame
// instead of caching.
type RenderSurface interface {
	Width() float64
	Height() float64
	Clear()
	FillRect(x, y, w, h float64, c HSL)
}

// Bounds are the plane dimensions passed to an agent update, captured
// from the surface at the start of the frame.
type Bounds struct {
	Width  float64
	Height float64
}
