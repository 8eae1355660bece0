package flock

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/flocklab/go-flocking-simulation/pkg/geometry"
)

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.PopulationSize = 3
	cfg.WorldWidth = 100
	cfg.WorldHeight = 100
	cfg.Dt = 1.0
	return cfg
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.PerceptionRadius = -1

	_, err := New(cfg)
	if err == nil {
		t.Fatal("expected error for negative perception radius")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %T (%v)", err, err)
	}
}

func TestAdvance_RequiresSeed(t *testing.T) {
	f, err := New(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Advance(); !errors.Is(err, ErrNotSeeded) {
		t.Fatalf("Advance before seed = %v; want ErrNotSeeded", err)
	}
}

func TestSeed_RejectsWrongPopulation(t *testing.T) {
	f, err := New(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	err = f.Seed(make([]geometry.Vector2D, 2), make([]geometry.Vector2D, 2))
	if err == nil {
		t.Fatal("expected error for mismatched seed length")
	}
}

func TestAdvance_IsolatedBoidDriftsOnly(t *testing.T) {
	// A boid with no neighbors in range gets zero steering and moves by
	// velocity * dt exactly.
	cfg := testConfig()
	cfg.PopulationSize = 2
	cfg.PerceptionRadius = 5
	cfg.SeparationRadius = 2
	cfg.Dt = 0.5
	f, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	positions := []geometry.Vector2D{{X: 10, Y: 10}, {X: 90, Y: 90}}
	velocities := []geometry.Vector2D{{X: 2, Y: 0}, {X: 0, Y: 0}}
	if err := f.Seed(positions, velocities); err != nil {
		t.Fatal(err)
	}
	if err := f.Advance(); err != nil {
		t.Fatal(err)
	}

	snap := f.Snapshot()
	want := geometry.Vector2D{X: 11, Y: 10} // 10 + 2*0.5
	if !snap[0].Position.Eq(want) {
		t.Errorf("position = %v; want %v", snap[0].Position, want)
	}
	if !snap[0].Velocity.Eq(velocities[0]) {
		t.Errorf("velocity = %v; want unchanged %v", snap[0].Velocity, velocities[0])
	}
}

func TestAdvance_TwoBoidSeparationScenario(t *testing.T) {
	// Two boids 1 unit apart, separation only. After one tick both must
	// have gained a velocity component pointing directly away from the
	// other.
	cfg := testConfig()
	cfg.PopulationSize = 2
	cfg.SeparationRadius = 5
	cfg.PerceptionRadius = 5
	cfg.SeparationWeight = 1
	cfg.AlignmentWeight = 0
	cfg.CohesionWeight = 0
	f, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	positions := []geometry.Vector2D{{X: 50, Y: 50}, {X: 51, Y: 50}}
	velocities := []geometry.Vector2D{{}, {}}
	if err := f.Seed(positions, velocities); err != nil {
		t.Fatal(err)
	}
	if err := f.Advance(); err != nil {
		t.Fatal(err)
	}

	snap := f.Snapshot()
	if snap[0].Velocity.X >= 0 {
		t.Errorf("left boid should move -X, velocity %v", snap[0].Velocity)
	}
	if snap[1].Velocity.X <= 0 {
		t.Errorf("right boid should move +X, velocity %v", snap[1].Velocity)
	}
	if snap[0].Velocity.Y != 0 || snap[1].Velocity.Y != 0 {
		t.Errorf("no Y component expected: %v, %v", snap[0].Velocity, snap[1].Velocity)
	}
	// Magnitude: 1/d limited by MaxForce.
	wantMag := math.Min(1.0, cfg.MaxForce)
	if !floatNear(snap[0].Velocity.Len(), wantMag, 1e-9) {
		t.Errorf("repulsion magnitude = %v; want %v", snap[0].Velocity.Len(), wantMag)
	}
}

func TestAdvance_SpeedBound(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PopulationSize = 120
	cfg.WorldWidth = 300
	cfg.WorldHeight = 300
	f, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	f.SeedRandom(7)

	for tick := 0; tick < 50; tick++ {
		if err := f.Advance(); err != nil {
			t.Fatal(err)
		}
		for _, b := range f.Snapshot() {
			if b.Velocity.Len() > cfg.MaxSpeed+1e-9 {
				t.Fatalf("tick %d: boid %d speed %v exceeds max %v",
					tick, b.Slot, b.Velocity.Len(), cfg.MaxSpeed)
			}
		}
	}
}

func TestAdvance_BoundaryContainment(t *testing.T) {
	for _, policy := range []BoundaryPolicy{BoundaryBounce, BoundaryWrap} {
		t.Run(string(policy), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.PopulationSize = 80
			cfg.WorldWidth = 200
			cfg.WorldHeight = 150
			cfg.MaxSpeed = 10 // fast enough to hit walls
			cfg.Boundary = policy
			f, err := New(cfg)
			if err != nil {
				t.Fatal(err)
			}
			f.SeedRandom(11)

			for tick := 0; tick < 100; tick++ {
				if err := f.Advance(); err != nil {
					t.Fatal(err)
				}
				for _, b := range f.Snapshot() {
					if b.Position.X < 0 || b.Position.X > cfg.WorldWidth ||
						b.Position.Y < 0 || b.Position.Y > cfg.WorldHeight {
						t.Fatalf("tick %d: boid %d escaped at %v", tick, b.Slot, b.Position)
					}
				}
			}
		})
	}
}

func TestAdvance_WrapIsToroidal(t *testing.T) {
	cfg := testConfig()
	cfg.PopulationSize = 1
	cfg.Boundary = BoundaryWrap
	f, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Seed(
		[]geometry.Vector2D{{X: 99, Y: 50}},
		[]geometry.Vector2D{{X: 3, Y: 0}},
	); err != nil {
		t.Fatal(err)
	}
	if err := f.Advance(); err != nil {
		t.Fatal(err)
	}

	snap := f.Snapshot()
	if !snap[0].Position.Eq(geometry.Vector2D{X: 2, Y: 50}) {
		t.Errorf("wrapped position = %v; want (2.00, 50.00)", snap[0].Position)
	}
	if !snap[0].Velocity.Eq(geometry.Vector2D{X: 3, Y: 0}) {
		t.Errorf("wrap must not touch velocity, got %v", snap[0].Velocity)
	}
}

func TestAdvance_BounceReflects(t *testing.T) {
	cfg := testConfig()
	cfg.PopulationSize = 1
	cfg.Boundary = BoundaryBounce
	f, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Seed(
		[]geometry.Vector2D{{X: 99, Y: 50}},
		[]geometry.Vector2D{{X: 3, Y: 0}},
	); err != nil {
		t.Fatal(err)
	}
	if err := f.Advance(); err != nil {
		t.Fatal(err)
	}

	snap := f.Snapshot()
	if !snap[0].Position.Eq(geometry.Vector2D{X: 100, Y: 50}) {
		t.Errorf("clamped position = %v; want (100.00, 50.00)", snap[0].Position)
	}
	if snap[0].Velocity.X >= 0 {
		t.Errorf("velocity X should be reflected, got %v", snap[0].Velocity)
	}
}

func TestSnapshot_Idempotent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PopulationSize = 50
	f, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	f.SeedRandom(3)
	if err := f.Advance(); err != nil {
		t.Fatal(err)
	}

	a := f.Snapshot()
	b := f.Snapshot()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("snapshot not idempotent at slot %d: %v vs %v", i, a[i], b[i])
		}
	}

	// The snapshot is a copy: mutating it must not leak into the Flock.
	a[0].Position.X = -12345
	if f.Snapshot()[0].Position.X == -12345 {
		t.Fatal("snapshot aliases internal state")
	}
}

func TestAdvance_Deterministic(t *testing.T) {
	run := func() []BoidState {
		cfg := DefaultConfig()
		cfg.PopulationSize = 100
		f, err := New(cfg)
		if err != nil {
			t.Fatal(err)
		}
		f.SeedRandom(99)
		for i := 0; i < 20; i++ {
			if err := f.Advance(); err != nil {
				t.Fatal(err)
			}
		}
		return f.Snapshot()
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at slot %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestAdvance_OrderIndependent(t *testing.T) {
	// Shuffling the storage order before a tick must produce the same
	// (position, velocity) pairs, matched by original identity, up to
	// floating-point summation tolerance.
	const n = 60
	rng := rand.New(rand.NewPCG(5, 5))

	positions := make([]geometry.Vector2D, n)
	velocities := make([]geometry.Vector2D, n)
	for i := range positions {
		positions[i] = geometry.Vector2D{X: rng.Float64() * 200, Y: rng.Float64() * 200}
		velocities[i] = geometry.Vector2D{X: rng.Float64()*2 - 1, Y: rng.Float64()*2 - 1}
	}

	perm := rng.Perm(n)
	shuffledPos := make([]geometry.Vector2D, n)
	shuffledVel := make([]geometry.Vector2D, n)
	for i, p := range perm {
		shuffledPos[p] = positions[i]
		shuffledVel[p] = velocities[i]
	}

	cfg := DefaultConfig()
	cfg.PopulationSize = n
	cfg.WorldWidth = 200
	cfg.WorldHeight = 200

	fa, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	fb, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := fa.Seed(positions, velocities); err != nil {
		t.Fatal(err)
	}
	if err := fb.Seed(shuffledPos, shuffledVel); err != nil {
		t.Fatal(err)
	}
	if err := fa.Advance(); err != nil {
		t.Fatal(err)
	}
	if err := fb.Advance(); err != nil {
		t.Fatal(err)
	}

	snapA, snapB := fa.Snapshot(), fb.Snapshot()
	const tol = 1e-6
	for i := range snapA {
		other := snapB[perm[i]]
		if !floatNear(snapA[i].Position.X, other.Position.X, tol) ||
			!floatNear(snapA[i].Position.Y, other.Position.Y, tol) ||
			!floatNear(snapA[i].Velocity.X, other.Velocity.X, tol) ||
			!floatNear(snapA[i].Velocity.Y, other.Velocity.Y, tol) {
			t.Fatalf("boid %d diverged under shuffle: %+v vs %+v", i, snapA[i], other)
		}
	}
}

func TestTune_AdjustsSteeringSafely(t *testing.T) {
	f, err := New(testConfig())
	if err != nil {
		t.Fatal(err)
	}

	f.Tune(Tuning{
		SeparationWeight: 2,
		AlignmentWeight:  0,
		CohesionWeight:   -0.5,
		PerceptionRadius: 90,
		SeparationRadius: 120, // above perception, must be capped
		MaxSpeed:         -1,  // invalid, ignored
		MaxForce:         0.7,
	})

	got := f.Config()
	if got.SeparationWeight != 2 || got.AlignmentWeight != 0 || got.CohesionWeight != -0.5 {
		t.Errorf("weights not applied: %+v", got)
	}
	if got.PerceptionRadius != 90 {
		t.Errorf("perception radius = %v; want 90", got.PerceptionRadius)
	}
	if got.SeparationRadius != 90 {
		t.Errorf("separation radius = %v; want capped to 90", got.SeparationRadius)
	}
	if got.MaxSpeed != testConfig().MaxSpeed {
		t.Errorf("invalid max speed should be ignored, got %v", got.MaxSpeed)
	}
	if got.MaxForce != 0.7 {
		t.Errorf("max force = %v; want 0.7", got.MaxForce)
	}
}

func TestMultipleFlocksAreIndependent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PopulationSize = 20
	fa, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	fb, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	fa.SeedRandom(1)
	fb.SeedRandom(2)

	if err := fa.Advance(); err != nil {
		t.Fatal(err)
	}

	if fb.Tick() != 0 {
		t.Error("advancing one flock ticked another")
	}
}

func BenchmarkAdvance(b *testing.B) {
	cfg := DefaultConfig()
	cfg.PopulationSize = 1000
	f, err := New(cfg)
	if err != nil {
		b.Fatal(err)
	}
	f.SeedRandom(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := f.Advance(); err != nil {
			b.Fatal(err)
		}
	}
}
