package flock

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

const testSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["worldWidth", "worldHeight", "numAgents"],
  "additionalProperties": false,
  "properties": {
    "worldWidth": { "type": "number", "exclusiveMinimum": 0 },
    "worldHeight": { "type": "number", "exclusiveMinimum": 0 },
    "numAgents": { "type": "integer", "minimum": 1 },
    "sightDistance": { "type": "number", "minimum": 0 },
    "maxSpeed": { "type": "number", "exclusiveMinimum": 0 },
    "minWallDistance": { "type": "number", "minimum": 0 },
    "wallAvoidanceDamping": { "type": "number", "minimum": 0 },
    "separationDistance": { "type": "number", "minimum": 0 },
    "cohesionDamping": { "type": "number", "minimum": 0 }
  }
}`

func TestLoadConfig_Valid(t *testing.T) {
	dir := t.TempDir()
	schema := writeTestFile(t, dir, "schema.json", testSchema)
	config := writeTestFile(t, dir, "config.json", `{
		"worldWidth": 1024,
		"worldHeight": 768,
		"numAgents": 42,
		"sightDistance": 250,
		"maxSpeed": 4.5,
		"minWallDistance": 120,
		"wallAvoidanceDamping": 0.2,
		"separationDistance": 12,
		"cohesionDamping": 0.03
	}`)

	cfg, err := LoadConfig(config, schema)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.WorldWidth != 1024 || cfg.WorldHeight != 768 {
		t.Errorf("world = %vx%v; want 1024x768", cfg.WorldWidth, cfg.WorldHeight)
	}
	if cfg.NumAgents != 42 {
		t.Errorf("numAgents = %d; want 42", cfg.NumAgents)
	}
	if cfg.MaxSpeed != 4.5 || cfg.CohesionDamping != 0.03 {
		t.Errorf("tunables not loaded: %+v", cfg)
	}
}

func TestLoadConfig_SchemaViolation(t *testing.T) {
	dir := t.TempDir()
	schema := writeTestFile(t, dir, "schema.json", testSchema)

	tests := []struct {
		name string
		json string
	}{
		{"zero population", `{"worldWidth": 800, "worldHeight": 600, "numAgents": 0}`},
		{"missing required field", `{"worldWidth": 800, "numAgents": 10}`},
		{"unknown field", `{"worldWidth": 800, "worldHeight": 600, "numAgents": 10, "turboMode": true}`},
		{"malformed json", `{"worldWidth": `},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := writeTestFile(t, dir, "bad.json", tt.json)
			if _, err := LoadConfig(config, schema); err == nil {
				t.Error("expected an error, got nil")
			}
		})
	}
}

func TestConfigParameters_MatchesDefaults(t *testing.T) {
	params := DefaultConfig().Parameters()
	defaults := DefaultParameters()

	for _, name := range []string{
		ParamSightDistance,
		ParamMaxSpeed,
		ParamMinWallDistance,
		ParamWallAvoidanceDamping,
		ParamSeparationDistance,
		ParamCohesionDamping,
	} {
		if got, want := params.Get(name), defaults.Get(name); got != want {
			t.Errorf("%s = %v; want %v", name, got, want)
		}
	}
}
