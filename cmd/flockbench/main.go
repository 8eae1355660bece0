// Command flockbench runs the simulation core without a window and
// reports how fast it ticks. Useful for profiling steering and the
// spatial grid with different populations.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/flocklab/go-flocking-simulation/pkg/flock"
)

func main() {
	configFile := flag.String("config", "", "path to a JSON configuration file")
	schemaFile := flag.String("schema", "configs/flock.schema.json", "path to the JSON schema")
	ticks := flag.Int("ticks", 1000, "number of ticks to run")
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

	f, err := flock.New(cfg)
	if err != nil {
		log.Fatalf("flock: %v", err)
	}
	f.SeedRandom(*seed)

	log.Printf("running %d ticks with %d boids (perception=%.0f, boundary=%s)",
		*ticks, cfg.PopulationSize, cfg.PerceptionRadius, cfg.Boundary)

	start := time.Now()
	for i := 0; i < *ticks; i++ {
		if err := f.Advance(); err != nil {
			log.Fatalf("tick %d: %v", i, err)
		}
	}
	elapsed := time.Since(start)

	perTick := elapsed / time.Duration(*ticks)
	log.Printf("done: %v total, %v/tick, %.0f ticks/sec",
		elapsed.Round(time.Millisecond), perTick, float64(*ticks)/elapsed.Seconds())
}
