package simulation

import (
	"fmt"
	"time"

	"github.com/flocklab/go-flocking-simulation/pb"
	"github.com/flocklab/go-flocking-simulation/pkg/flock"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
)

// WorldActor is the "Brain": it owns the authoritative flock.Flock and is
// the only goroutine that touches it. The game loop drives it with Tick
// messages and slider changes arrive as UpdateConfig; after every tick the
// actor pushes a WorldSnapshot to the renderer channel.
type WorldActor struct {
	flock      *flock.Flock
	cfg        *flock.Config
	seed       uint64
	snapshotCh chan<- *pb.WorldSnapshot

	// --- Benchmark Stats ---
	tickCount   int
	lastLogTime time.Time
}

var _ actor.Actor = (*WorldActor)(nil)

// NewWorldActor creates the world logic unit. The flock itself is built in
// PreStart so that invalid configuration fails the spawn, not a tick.
func NewWorldActor(snapshotCh chan<- *pb.WorldSnapshot, cfg *flock.Config, seed uint64) *WorldActor {
	return &WorldActor{
		cfg:         cfg,
		seed:        seed,
		snapshotCh:  snapshotCh,
		lastLogTime: time.Now(),
	}
}

func (w *WorldActor) PreStart(ctx *actor.Context) error {
	f, err := flock.New(w.cfg)
	if err != nil {
		return fmt.Errorf("world: %w", err)
	}
	f.SeedRandom(w.seed)
	w.flock = f

	ctx.ActorSystem().Logger().Infof("World is seeding %d boids (seed=%d)...",
		w.cfg.PopulationSize, w.seed)
	return nil
}

func (w *WorldActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {

	case *goaktpb.PostStart:
		ctx.Logger().Info("World started")
		// Let the renderer draw the seeded state before the first tick.
		w.pushSnapshot()

	case *pb.Tick:
		w.logBenchmarks(ctx)
		if msg.DeltaTime > 0 {
			w.flock.SetDt(msg.DeltaTime)
		}
		// Advance cannot fail once seeded; log defensively anyway.
		if err := w.flock.Advance(); err != nil {
			ctx.Logger().Errorf("tick failed: %v", err)
			return
		}
		w.tickCount++
		w.pushSnapshot()

	// Handle dynamic slider updates from UI
	case *pb.UpdateConfig:
		w.flock.Tune(tuningFromProto(msg))

	default:
		ctx.Unhandled()
	}
}

func (w *WorldActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("World is shutdown after %d ticks", w.flock.Tick())
	return nil
}

func (w *WorldActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(w.lastLogTime) >= time.Second {
		ctx.Logger().Infof("📊 TICK RATE: %d/sec | Boids: %d",
			w.tickCount, w.cfg.PopulationSize)
		w.tickCount = 0
		w.lastLogTime = time.Now()
	}
}

func (w *WorldActor) pushSnapshot() {
	select {
	case w.snapshotCh <- snapshotToProto(w.flock.Snapshot(), w.flock.Tick()):
	default:
		// UI busy, skip frame
	}
}
