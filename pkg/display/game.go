package display

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/ui"
)

// Game wires the simulation into ebiten: the engine's Update callback is
// the periodic scheduler the flock throttles internally, and Draw blits
// the offscreen plane plus the control panel.
type Game struct {
	flock   *flock.Flock
	surface *Surface
	panel   *ui.Panel
	pause   *ui.Checkbox

	width, height int
}

// NewGame assembles the top-level game. pause may be nil when no pause
// control is wanted.
func NewGame(f *flock.Flock, surface *Surface, panel *ui.Panel, pause *ui.Checkbox) *Game {
	return &Game{
		flock:   f,
		surface: surface,
		panel:   panel,
		pause:   pause,
		width:   int(surface.Width()),
		height:  int(surface.Height()),
	}
}

func (g *Game) Update() error {
	g.panel.Update()
	if g.pause != nil && g.pause.Value {
		return nil
	}
	g.flock.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.surface.Image(), nil)
	g.panel.Draw(screen)

	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\nAgents: %d",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		len(g.flock.Agents))
	ebitenutil.DebugPrintAt(screen, msg, g.width-110, 10)
}

func (g *Game) Layout(w, h int) (int, int) {
	return g.width, g.height
}
