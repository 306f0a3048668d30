package flock

import (
	"math"
	"math/rand"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
)

// agentSize is the side of the rendered square, in plane units.
const agentSize = 3

// AgentState is an immutable snapshot of one agent taken at the start of
// a frame. Every update in that frame reads only these snapshots, never
// live agents, which keeps the pass independent of iteration order.
type AgentState struct {
	Pos geometry.Vector2D
	Vel geometry.Vector2D
}

// Agent is a single boid. It owns its kinematic state and a read-only
// handle to the shared tunables; everything else (neighbors, bounds,
// elapsed time) arrives through Update.
type Agent struct {
	Pos geometry.Vector2D
	Vel geometry.Vector2D

	params ParameterSource

	// Distance to the nearest other agent, cached by the last separation
	// scan. Render-only; undefined until the first update.
	closestDist float64
	hasClosest  bool
}

// NewAgent creates an agent with the given kinematic state.
func NewAgent(pos, vel geometry.Vector2D, params ParameterSource) *Agent {
	return &Agent{Pos: pos, Vel: vel, params: params}
}

// NewRandomAgent spawns an agent at a position uniform over the plane with
// a velocity uniform in [-maxSpeed/2, maxSpeed/2] per axis.
func NewRandomAgent(width, height float64, params ParameterSource) *Agent {
	maxSpeed := params.Get(ParamMaxSpeed)
	return NewAgent(
		geometry.Vector2D{X: rand.Float64() * width, Y: rand.Float64() * height},
		geometry.Vector2D{
			X: (rand.Float64() - 0.5) * maxSpeed,
			Y: (rand.Float64() - 0.5) * maxSpeed,
		},
		params,
	)
}

// State returns the snapshot other agents read during the current frame.
func (a *Agent) State() AgentState {
	return AgentState{Pos: a.Pos, Vel: a.Vel}
}

// CanSee reports whether the other agent is within sight distance.
// The strict lower bound excludes the agent's own snapshot and any
// coincident agent; this is the sole visibility gate for cohesion and
// alignment.
func (a *Agent) CanSee(other AgentState) bool {
	d := a.Pos.DistanceTo(other.Pos)
	return d > 0 && d <= a.params.Get(ParamSightDistance)
}

// IsTooClose reports whether the other agent is within separation distance.
func (a *Agent) IsTooClose(other AgentState) bool {
	return a.Pos.DistanceTo(other.Pos) <= a.params.Get(ParamSeparationDistance)
}

// Update applies the four steering forces to the velocity, clamps speed
// and integrates position. Each force carries its own elapsedMs/1000
// scaling; the position step applies the velocity once without re-scaling
// by elapsed time. That makes absolute displacement frame-rate dependent
// beyond the velocity term, and is kept as the simulation's impulse model
// rather than corrected into a continuous-time integrator.
func (a *Agent) Update(neighbors []AgentState, bounds Bounds, elapsedMs float64) {
	force := a.CohesionForce(neighbors, elapsedMs).
		Add(a.SeparationForce(neighbors, elapsedMs)).
		Add(a.AlignmentForce(neighbors, elapsedMs)).
		Add(a.AvoidWallsForce(bounds, elapsedMs))

	a.Vel = a.Vel.Add(force)
	a.clampSpeed()
	a.Pos = a.Pos.Add(a.Vel)
}

// clampSpeed rescales the velocity to exactly maxSpeed when it is faster,
// preserving direction. A zero velocity is left alone so the rescale never
// divides by zero.
func (a *Agent) clampSpeed() {
	maxSpeed := a.params.Get(ParamMaxSpeed)
	speed := a.Vel.Len()
	if speed > maxSpeed && speed > 0 {
		a.Vel = a.Vel.Mul(maxSpeed / speed)
	}
}

// CohesionForce steers toward the average position of visible neighbors,
// scaled by elapsed time and the cohesion damping. Zero vector when no
// neighbor is visible.
func (a *Agent) CohesionForce(neighbors []AgentState, elapsedMs float64) geometry.Vector2D {
	var sum geometry.Vector2D
	count := 0.0
	for _, n := range neighbors {
		if a.CanSee(n) {
			sum = sum.Add(n.Pos)
			count++
		}
	}
	if count == 0 {
		return geometry.Vector2D{}
	}
	center := sum.Mul(1 / count)
	return center.Sub(a.Pos).Mul(elapsedMs / 1000 * a.params.Get(ParamCohesionDamping))
}

// SeparationForce pushes away from every visible neighbor closer than the
// separation distance, scaled by elapsed time only. The same scan records
// the distance to the nearest other agent regardless of any gating; that
// value only feeds the render color.
func (a *Agent) SeparationForce(neighbors []AgentState, elapsedMs float64) geometry.Vector2D {
	var acc geometry.Vector2D
	closest := math.Inf(1)
	for _, n := range neighbors {
		d := a.Pos.DistanceTo(n.Pos)
		if d > 0 && d < closest {
			closest = d
		}
		if a.CanSee(n) && a.IsTooClose(n) {
			acc = acc.Sub(n.Pos.Sub(a.Pos))
		}
	}
	if !math.IsInf(closest, 1) {
		a.closestDist = closest
		a.hasClosest = true
	}
	return acc.Mul(elapsedMs / 1000)
}

// AlignmentForce steers toward the average velocity of visible neighbors,
// scaled by elapsed time. Zero vector when no neighbor is visible.
func (a *Agent) AlignmentForce(neighbors []AgentState, elapsedMs float64) geometry.Vector2D {
	var sum geometry.Vector2D
	count := 0.0
	for _, n := range neighbors {
		if a.CanSee(n) {
			sum = sum.Add(n.Vel)
			count++
		}
	}
	if count == 0 {
		return geometry.Vector2D{}
	}
	return sum.Mul(1 / count).Mul(elapsedMs / 1000)
}

// AvoidWallsForce pushes inward on each axis whose coordinate lies within
// minWallDistance of a plane edge. Past the far margin the push is
// negative, pulling back toward the interior.
func (a *Agent) AvoidWallsForce(bounds Bounds, elapsedMs float64) geometry.Vector2D {
	margin := a.params.Get(ParamMinWallDistance)
	var push geometry.Vector2D
	if a.Pos.X < margin {
		push.X = margin - a.Pos.X
	} else if a.Pos.X > bounds.Width-margin {
		push.X = bounds.Width - margin - a.Pos.X
	}
	if a.Pos.Y < margin {
		push.Y = margin - a.Pos.Y
	} else if a.Pos.Y > bounds.Height-margin {
		push.Y = bounds.Height - margin - a.Pos.Y
	}
	return push.Mul(elapsedMs / 1000 * a.params.Get(ParamWallAvoidanceDamping))
}

// Render draws the agent as a fixed-size square whose hue encodes how
// crowded it is: hue = 360 * (1 - min(1, closest/10)). Before the first
// update the cached distance is undefined and the hue falls back to 360.
func (a *Agent) Render(surface RenderSurface) {
	normalized := 1.0
	if a.hasClosest {
		normalized = 1 - math.Min(1, a.closestDist/10)
	}
	surface.FillRect(a.Pos.X, a.Pos.Y, agentSize, agentSize, HSL{H: 360 * normalized, S: 100, L: 50})
}
