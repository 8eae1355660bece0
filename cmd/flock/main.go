package main

import (
	"context"
	"flag"
	"log"

	"github.com/flocklab/go-flocking-simulation/internal/simulation"
	"github.com/flocklab/go-flocking-simulation/pkg/flock"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
)

func main() {
	configFile := flag.String("config", "", "path to a JSON configuration file")
	schemaFile := flag.String("schema", "configs/flock.schema.json", "path to the JSON schema")
	seed := flag.Uint64("seed", 42, "random seed for the starting population")
	flag.Parse()

	cfg := flock.DefaultConfig()
	if *configFile != "" {
		loaded, err := flock.LoadConfig(*configFile, *schemaFile)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		cfg = loaded
	}

	ctx := context.Background()

	system, err := actor.NewActorSystem("FlockWorld",
		actor.WithLogger(golog.DiscardLogger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		log.Fatalf("actor system: %v", err)
	}
	if err := system.Start(ctx); err != nil {
		log.Fatalf("actor system start: %v", err)
	}
	defer system.Stop(ctx)

	game, err := simulation.NewGame(ctx, cfg, system, *seed)
	if err != nil {
		log.Fatalf("game: %v", err)
	}

	ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
	ebiten.SetWindowTitle("Flocking Simulation")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
