// Package flock implements an emergent flocking ("boids") simulation core:
// a fixed population of agents steered by the three local rules of
// separation, alignment and cohesion, advanced one synchronous tick at a
// time. Rendering, input and persistence live outside this package; callers
// drive the core through New / Seed / Advance / Snapshot only.
package flock

import (
	"errors"
	"math/rand/v2"
	"runtime"
	"sync"

	"github.com/flocklab/go-flocking-simulation/pkg/geometry"
)

// ErrNotSeeded is returned by Advance when no population has been seeded.
var ErrNotSeeded = errors.New("flock: population not seeded")

// BoidState is one boid's view in a snapshot. Slot is the boid's fixed
// index in the population and the only identity it carries.
type BoidState struct {
	Slot     int
	Position geometry.Vector2D
	Velocity geometry.Vector2D
}

// Tuning carries the parameters that may be adjusted between ticks, for
// example from UI sliders. Radii, speed and force must stay positive to
// take effect; weights are applied as-is (zero disables a rule).
type Tuning struct {
	SeparationWeight float64
	AlignmentWeight  float64
	CohesionWeight   float64
	PerceptionRadius float64
	SeparationRadius float64
	MaxSpeed         float64
	MaxForce         float64
}

// Flock owns the entire population: positions and velocities in parallel
// slices indexed by slot. The population size is fixed for the Flock's
// lifetime. A Flock is not safe for concurrent use; one goroutine drives
// Advance/Snapshot/Tune (the world actor in this repo).
type Flock struct {
	cfg Config

	pos     []geometry.Vector2D
	vel     []geometry.Vector2D
	velNext []geometry.Vector2D // steering phase writes here, swapped at the barrier

	grid    *Grid
	scratch [][]int // per-worker neighbor buffers
	workers int

	seeded bool
	tick   int64
}

// New validates cfg and builds a Flock with all buffers pre-allocated.
// The configuration is copied; later changes to cfg do not leak in.
func New(cfg *Config) (*Flock, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n := cfg.PopulationSize
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}

	f := &Flock{
		cfg:     *cfg,
		pos:     make([]geometry.Vector2D, n),
		vel:     make([]geometry.Vector2D, n),
		velNext: make([]geometry.Vector2D, n),
		grid:    NewGrid(),
		scratch: make([][]int, workers),
		workers: workers,
	}
	for w := range f.scratch {
		f.scratch[w] = make([]int, 0, 64)
	}
	return f, nil
}

// Config returns a copy of the active configuration.
func (f *Flock) Config() Config { return f.cfg }

// Tick returns the number of completed ticks.
func (f *Flock) Tick() int64 { return f.tick }

// Seed initializes the population from explicit state. Both slices must
// have exactly PopulationSize elements; velocities are clamped to MaxSpeed
// so the speed-bound invariant holds from tick zero.
func (f *Flock) Seed(positions, velocities []geometry.Vector2D) error {
	if len(positions) != f.cfg.PopulationSize || len(velocities) != f.cfg.PopulationSize {
		return &ConfigError{"populationSize", "seed slices must match the configured population"}
	}
	copy(f.pos, positions)
	for i, v := range velocities {
		f.vel[i] = v.Limit(f.cfg.MaxSpeed)
	}
	f.seeded = true
	f.tick = 0
	return nil
}

// SeedRandom initializes the population with uniformly random positions
// inside the world bounds and random headings at half max speed. The same
// seed always produces the same starting population.
func (f *Flock) SeedRandom(seed uint64) {
	rng := rand.New(rand.NewPCG(seed, seed))
	for i := range f.pos {
		f.pos[i] = geometry.Vector2D{
			X: rng.Float64() * f.cfg.WorldWidth,
			Y: rng.Float64() * f.cfg.WorldHeight,
		}
		f.vel[i] = geometry.Vector2D{
			X: rng.Float64()*2 - 1,
			Y: rng.Float64()*2 - 1,
		}.Normalize().Mul(f.cfg.MaxSpeed / 2)
	}
	f.seeded = true
	f.tick = 0
}

// Tune applies runtime adjustments between ticks. Non-positive radii,
// speed or force values are ignored; the separation radius is capped at
// the perception radius.
func (f *Flock) Tune(t Tuning) {
	f.cfg.SeparationWeight = t.SeparationWeight
	f.cfg.AlignmentWeight = t.AlignmentWeight
	f.cfg.CohesionWeight = t.CohesionWeight
	if t.PerceptionRadius > 0 {
		f.cfg.PerceptionRadius = t.PerceptionRadius
	}
	if t.SeparationRadius > 0 {
		f.cfg.SeparationRadius = t.SeparationRadius
	}
	if f.cfg.SeparationRadius > f.cfg.PerceptionRadius {
		f.cfg.SeparationRadius = f.cfg.PerceptionRadius
	}
	if t.MaxSpeed > 0 {
		f.cfg.MaxSpeed = t.MaxSpeed
	}
	if t.MaxForce > 0 {
		f.cfg.MaxForce = t.MaxForce
	}
}

// SetDt overrides the integration time step. Non-positive values are
// ignored; dt must stay positive once validated.
func (f *Flock) SetDt(dt float64) {
	if dt > 0 {
		f.cfg.Dt = dt
	}
}

// Advance runs exactly one tick:
//
//	Indexing -> Steering -> Integrating -> BoundaryApplied
//
// During Steering every boid reads only the previous tick's snapshot and
// writes its candidate velocity to its own velNext slot, so the phase is
// fanned out across workers with no locking. The swap of vel/velNext is
// the barrier between reading old state and publishing new state.
//
// Once a Flock is built and seeded, a tick cannot fail: all numeric edge
// cases degrade to zero contributions.
func (f *Flock) Advance() error {
	if !f.seeded {
		return ErrNotSeeded
	}

	// Indexing: the grid reflects positions as of the start of this tick.
	f.grid.Rebuild(f.pos, f.cfg.PerceptionRadius)

	// Steering: read-only on pos/vel, each worker owns a disjoint slot range.
	var wg sync.WaitGroup
	chunk := (len(f.pos) + f.workers - 1) / f.workers
	for w := 0; w < f.workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > len(f.pos) {
			end = len(f.pos)
		}
		if start >= end {
			break
		}
		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			buf := f.scratch[w]
			for i := start; i < end; i++ {
				buf = f.grid.Query(f.pos, f.pos[i], f.cfg.PerceptionRadius, i, buf)
				sep := Separation(i, buf, f.pos, f.cfg.SeparationRadius)
				align := Alignment(i, buf, f.vel)
				coh := Cohesion(i, buf, f.pos)
				acc := blendSteering(sep, align, coh, &f.cfg)
				f.velNext[i] = f.vel[i].Add(acc).Limit(f.cfg.MaxSpeed)
			}
			f.scratch[w] = buf
		}(w, start, end)
	}
	wg.Wait()

	// Integrating: publish candidate velocities atomically (ping-pong swap),
	// then move. BoundaryApplied: per axis, per boid.
	f.vel, f.velNext = f.velNext, f.vel
	for i := range f.pos {
		f.pos[i] = f.pos[i].Add(f.vel[i].Mul(f.cfg.Dt))
		f.cfg.Boundary.apply(&f.pos[i], &f.vel[i], f.cfg.WorldWidth, f.cfg.WorldHeight)
	}

	f.tick++
	return nil
}

// Snapshot returns a fresh, slot-ordered copy of the population state.
// Calling it repeatedly between ticks yields identical values.
func (f *Flock) Snapshot() []BoidState {
	out := make([]BoidState, len(f.pos))
	for i := range f.pos {
		out[i] = BoidState{Slot: i, Position: f.pos[i], Velocity: f.vel[i]}
	}
	return out
}
