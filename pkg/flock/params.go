package flock

// Parameter names recognized by a ParameterSource.
const (
	ParamSightDistance        = "sightDistance"
	ParamMaxSpeed             = "maxSpeed"
	ParamMinWallDistance      = "minWallDistance"
	ParamWallAvoidanceDamping = "wallAvoidanceDamping"
	ParamSeparationDistance   = "separationDistance"
	ParamCohesionDamping      = "cohesionDamping"
)

// ParameterSource exposes the current value of each named tunable.
// Agents read it at the moment of use, every frame, so an external edit
// (a UI slider, for instance) takes effect on the very next tick.
type ParameterSource interface {
	Get(name string) float64
}

// StaticSource is a fixed, map-backed ParameterSource. Unknown names
// read as zero.
type StaticSource map[string]float64

func (s StaticSource) Get(name string) float64 { return s[name] }

// DefaultParameters returns the stock tunable set.
func DefaultParameters() StaticSource {
	return StaticSource{
		ParamSightDistance:        300.0,
		ParamMaxSpeed:             5.0,
		ParamMinWallDistance:      150.0,
		ParamWallAvoidanceDamping: 0.1,
		ParamSeparationDistance:   10.0,
		ParamCohesionDamping:      0.02,
	}
}
