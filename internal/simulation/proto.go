package simulation

import (
	"github.com/flocklab/go-flocking-simulation/pb"
	"github.com/flocklab/go-flocking-simulation/pkg/flock"
)

// snapshotToProto converts the core's snapshot into the protobuf envelope
// pushed to the renderer.
func snapshotToProto(boids []flock.BoidState, tick int64) *pb.WorldSnapshot {
	snap := &pb.WorldSnapshot{
		Boids: make([]*pb.BoidState, 0, len(boids)),
		Tick:  tick,
	}
	for _, b := range boids {
		snap.Boids = append(snap.Boids, &pb.BoidState{
			Slot:      int32(b.Slot),
			PositionX: b.Position.X,
			PositionY: b.Position.Y,
			VelocityX: b.Velocity.X,
			VelocityY: b.Velocity.Y,
		})
	}
	return snap
}

// tuningFromProto maps an UpdateConfig message onto the core's Tuning.
func tuningFromProto(msg *pb.UpdateConfig) flock.Tuning {
	return flock.Tuning{
		SeparationWeight: msg.GetSeparationWeight(),
		AlignmentWeight:  msg.GetAlignmentWeight(),
		CohesionWeight:   msg.GetCohesionWeight(),
		PerceptionRadius: msg.GetPerceptionRadius(),
		SeparationRadius: msg.GetSeparationRadius(),
		MaxSpeed:         msg.GetMaxSpeed(),
		MaxForce:         msg.GetMaxForce(),
	}
}
