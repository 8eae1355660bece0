package simulation

import (
	"testing"

	"github.com/flocklab/go-flocking-simulation/pb"
	"github.com/flocklab/go-flocking-simulation/pkg/flock"
	"github.com/flocklab/go-flocking-simulation/pkg/geometry"
)

func TestSnapshotToProto(t *testing.T) {
	boids := []flock.BoidState{
		{Slot: 0, Position: geometry.Vector2D{X: 1, Y: 2}, Velocity: geometry.Vector2D{X: 3, Y: 4}},
		{Slot: 1, Position: geometry.Vector2D{X: -5, Y: 0.5}, Velocity: geometry.Vector2D{X: 0, Y: -1}},
	}

	snap := snapshotToProto(boids, 7)

	if snap.Tick != 7 {
		t.Errorf("Tick = %d, want 7", snap.Tick)
	}
	if len(snap.Boids) != len(boids) {
		t.Fatalf("got %d boids, want %d", len(snap.Boids), len(boids))
	}
	for i, b := range boids {
		p := snap.Boids[i]
		if p.Slot != int32(b.Slot) {
			t.Errorf("boid %d: Slot = %d, want %d", i, p.Slot, b.Slot)
		}
		if p.PositionX != b.Position.X || p.PositionY != b.Position.Y {
			t.Errorf("boid %d: position = (%v, %v), want %v", i, p.PositionX, p.PositionY, b.Position)
		}
		if p.VelocityX != b.Velocity.X || p.VelocityY != b.Velocity.Y {
			t.Errorf("boid %d: velocity = (%v, %v), want %v", i, p.VelocityX, p.VelocityY, b.Velocity)
		}
	}
}

func TestTuningFromProto(t *testing.T) {
	msg := &pb.UpdateConfig{
		SeparationWeight: 1.5,
		AlignmentWeight:  1.0,
		CohesionWeight:   0.5,
		PerceptionRadius: 80,
		SeparationRadius: 25,
		MaxSpeed:         5,
		MaxForce:         0.4,
	}

	got := tuningFromProto(msg)
	want := flock.Tuning{
		SeparationWeight: 1.5,
		AlignmentWeight:  1.0,
		CohesionWeight:   0.5,
		PerceptionRadius: 80,
		SeparationRadius: 25,
		MaxSpeed:         5,
		MaxForce:         0.4,
	}
	if got != want {
		t.Errorf("tuningFromProto = %+v, want %+v", got, want)
	}
}
