package display

import (
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/ui"
)

// SliderSource exposes a set of panel sliders as the flock's live
// parameter source: every Get reflects the slider's current position, so
// dragging a slider changes the simulation on the next tick. Unknown
// names read as zero.
type SliderSource map[string]*ui.Slider

var _ flock.ParameterSource = (SliderSource)(nil)

func (s SliderSource) Get(name string) float64 {
	if sl, ok := s[name]; ok {
		return sl.Value
	}
	return 0
}
