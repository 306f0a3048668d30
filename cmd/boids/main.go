package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/display"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/ui"
)

func main() {
	configFile := flag.String("config", "", "path to a JSON config file (defaults apply when empty)")
	schemaFile := flag.String("schema", "config/config.schema.json", "path to the config JSON schema")
	flag.Parse()

	cfg := flock.DefaultConfig()
	if *configFile != "" {
		loaded, err := flock.LoadConfig(*configFile, *schemaFile)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}

	surface := display.NewSurface(int(cfg.WorldWidth), int(cfg.WorldHeight))

	// The panel is the live ParameterSource: slider positions are the
	// current tunable values, seeded from the config.
	panel := ui.NewPanel(10, 10, 230, cfg.WorldHeight-20)
	panel.Section("Perception")
	sightDistance := panel.AddSlider("Sight Distance", 10, 600, cfg.SightDistance)
	separationDistance := panel.AddSlider("Separation Distance", 1, 100, cfg.SeparationDistance)
	panel.EndSection()
	panel.Section("Steering")
	maxSpeed := panel.AddSlider("Max Speed", 0.5, 15, cfg.MaxSpeed)
	cohesionDamping := panel.AddSlider("Cohesion Damping", 0.001, 0.1, cfg.CohesionDamping)
	minWallDistance := panel.AddSlider("Wall Margin", 10, 300, cfg.MinWallDistance)
	wallDamping := panel.AddSlider("Wall Damping", 0.01, 1.0, cfg.WallAvoidanceDamping)
	panel.EndSection()
	panel.Section("Simulation")
	pause := panel.AddCheckbox("Pause", false)
	panel.EndSection()

	params := display.SliderSource{
		flock.ParamSightDistance:        sightDistance,
		flock.ParamSeparationDistance:   separationDistance,
		flock.ParamMaxSpeed:             maxSpeed,
		flock.ParamCohesionDamping:      cohesionDamping,
		flock.ParamMinWallDistance:      minWallDistance,
		flock.ParamWallAvoidanceDamping: wallDamping,
	}

	f := flock.New(surface, cfg.NumAgents, params)

	ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
	ebiten.SetWindowTitle("Flocking")
	if err := ebiten.RunGame(display.NewGame(f, surface, panel, pause)); err != nil {
		log.Fatal(err)
	}
}
