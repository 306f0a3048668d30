package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Checkbox is a clickable boolean widget.
type Checkbox struct {
	Label string
	Value bool
	X, Y  float64
	Size  float64

	held bool // debounce: true while the toggling click is still held
}

// NewCheckbox creates a checkbox with the default box size.
func NewCheckbox(x, y float64, label string, value bool) *Checkbox {
	return &Checkbox{
		Label: label,
		Value: value,
		X:     x,
		Y:     y,
		Size:  16,
	}
}

// Update toggles the value on a fresh click inside the box.
func (c *Checkbox) Update() {
	mx, my := ebiten.CursorPosition()
	over := float64(mx) >= c.X && float64(mx) <= c.X+c.Size &&
		float64(my) >= c.Y && float64(my) <= c.Y+c.Size

	if over && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if !c.held {
			c.Value = !c.Value
			c.held = true
		}
	} else {
		c.held = false
	}
}

// Draw renders the box outline, filled when checked.
func (c *Checkbox) Draw(screen *ebiten.Image) {
	vector.StrokeRect(screen,
		float32(c.X), float32(c.Y),
		float32(c.Size), float32(c.Size),
		2, color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)

	if c.Value {
		vector.FillRect(screen,
			float32(c.X+2), float32(c.Y+2),
			float32(c.Size-4), float32(c.Size-4),
			color.RGBA{R: 100, G: 200, B: 100, A: 255}, true)
	}
}

// Height is the vertical space the checkbox occupies in a panel.
func (c *Checkbox) Height() float64 {
	return c.Size + 8
}

// SetY repositions the checkbox; the panel uses this while scrolling.
func (c *Checkbox) SetY(y float64) {
	c.Y = y
}
