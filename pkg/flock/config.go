package flock

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Config is the startup configuration: plane dimensions, population size
// and the initial value of every tunable. The tunables only seed whatever
// ParameterSource the caller builds; the live values come from that
// source afterwards.
type Config struct {
	// World Dimensions
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`

	// Population
	NumAgents int `json:"numAgents"`

	// Flocking tunables
	SightDistance        float64 `json:"sightDistance"`
	MaxSpeed             float64 `json:"maxSpeed"`
	MinWallDistance      float64 `json:"minWallDistance"`
	WallAvoidanceDamping float64 `json:"wallAvoidanceDamping"`
	SeparationDistance   float64 `json:"separationDistance"`
	CohesionDamping      float64 `json:"cohesionDamping"`
}

func DefaultConfig() *Config {
	return &Config{
		WorldWidth:           800,
		WorldHeight:          600,
		NumAgents:            100,
		SightDistance:        300.0,
		MaxSpeed:             5.0,
		MinWallDistance:      150.0,
		WallAvoidanceDamping: 0.1,
		SeparationDistance:   10.0,
		CohesionDamping:      0.02,
	}
}

// Parameters returns the config's tunables as a StaticSource, keyed by
// the recognized parameter names.
func (c *Config) Parameters() StaticSource {
	return StaticSource{
		ParamSightDistance:        c.SightDistance,
		ParamMaxSpeed:             c.MaxSpeed,
		ParamMinWallDistance:      c.MinWallDistance,
		ParamWallAvoidanceDamping: c.WallAvoidanceDamping,
		ParamSeparationDistance:   c.SeparationDistance,
		ParamCohesionDamping:      c.CohesionDamping,
	}
}

// LoadConfig loads configuration from a JSON file and validates it
// against the given JSON schema before unmarshaling.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Validate against the schema first so a bad file fails with a
	// schema error instead of silently producing zero values.
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
