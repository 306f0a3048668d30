package flock

import "time"

// targetFrameInterval throttles execution to ~60 Hz regardless of how
// often the external scheduler fires the tick callback.
const targetFrameInterval = 16660 * time.Microsecond

// Flock owns the agent population and drives the per-frame
// update-then-render cycle against a RenderSurface.
type Flock struct {
	Agents  []*Agent
	surface RenderSurface

	lastTick time.Time
	now      func() time.Time

	// scratch snapshot buffer, reused across frames
	states []AgentState
}

// New creates a flock of populationSize agents spread uniformly over the
// surface's current dimensions, with randomized velocities.
func New(surface RenderSurface, populationSize int, params ParameterSource) *Flock {
	f := &Flock{
		Agents:  make([]*Agent, populationSize),
		surface: surface,
		now:     time.Now,
		states:  make([]AgentState, 0, populationSize),
	}
	w, h := surface.Width(), surface.Height()
	for i := range f.Agents {
		f.Agents[i] = NewRandomAgent(w, h, params)
	}
	return f
}

// Tick is the scheduler callback. A tick arriving less than ~16.66ms
// after the last executed frame is skipped entirely, so the simulation
// advances at ~60 Hz even under a faster callback. The elapsed time fed
// to the agents is measured from the last executed frame, not the last
// invocation. Returns whether a frame was executed.
func (f *Flock) Tick() bool {
	now := f.now()
	if f.lastTick.IsZero() {
		// First invocation starts the clock; with zero elapsed time every
		// force scales to zero, so this frame only draws the spawn state.
		f.lastTick = now
		f.Step(0)
		return true
	}
	elapsed := now.Sub(f.lastTick)
	if elapsed < targetFrameInterval {
		return false
	}
	f.lastTick = now
	f.Step(float64(elapsed) / float64(time.Millisecond))
	return true
}

// Step runs one update-then-render pass with the given elapsed time in
// milliseconds: clear the surface, update every agent against a snapshot
// of the whole population, then render every agent. Dimensions are
// re-read from the surface on every call since the host may resize it.
func (f *Flock) Step(elapsedMs float64) {
	f.surface.Clear()

	bounds := Bounds{Width: f.surface.Width(), Height: f.surface.Height()}

	// Snapshot every agent before any of them moves. Each update reads
	// only prior-frame state, so the result does not depend on the order
	// the agents are visited in. The snapshot includes the agent itself;
	// excluding it is the agent's own job via CanSee's lower bound.
	f.states = f.states[:0]
	for _, a := range f.Agents {
		f.states = append(f.states, a.State())
	}

	for _, a := range f.Agents {
		a.Update(f.states, bounds, elapsedMs)
	}
	for _, a := range f.Agents {
		a.Render(f.surface)
	}
}
