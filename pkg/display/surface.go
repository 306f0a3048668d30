package display

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/flock"
)

// backgroundColor fills the plane on Clear.
var backgroundColor = color.RGBA{R: 10, G: 10, B: 30, A: 255}

// Surface renders the simulation into an offscreen ebiten image. The
// whole update-then-render pass runs inside Game.Update and the result is
// blitted once per frame in Game.Draw.
type Surface struct {
	img *ebiten.Image
}

var _ flock.RenderSurface = (*Surface)(nil)

// NewSurface creates an offscreen surface of the given pixel size.
func NewSurface(width, height int) *Surface {
	s := &Surface{img: ebiten.NewImage(width, height)}
	s.Clear()
	return s
}

func (s *Surface) Width() float64 {
	return float64(s.img.Bounds().Dx())
}

func (s *Surface) Height() float64 {
	return float64(s.img.Bounds().Dy())
}

// Clear fills the plane with the background color.
func (s *Surface) Clear() {
	s.img.Fill(backgroundColor)
}

// FillRect draws an axis-aligned rectangle in the given HSL color.
func (s *Surface) FillRect(x, y, w, h float64, c flock.HSL) {
	vector.FillRect(s.img,
		float32(x), float32(y), float32(w), float32(h),
		hslToRGBA(c), true)
}

// Image exposes the backing image for the blit in Game.Draw.
func (s *Surface) Image() *ebiten.Image {
	return s.img
}

// hslToRGBA converts the simulation's HSL triple (hue in degrees,
// saturation/lightness in percent) to a drawable color.
func hslToRGBA(c flock.HSL) color.RGBA {
	r, g, b := colorful.Hsl(c.H, c.S/100, c.L/100).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
