package simulation

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/flocklab/go-flocking-simulation/pb"
	"github.com/flocklab/go-flocking-simulation/pkg/flock"
	"github.com/flocklab/go-flocking-simulation/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tochemey/goakt/v3/actor"
)

// whiteImage is the 1-texel source for batched triangle drawing.
var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.RGBA{R: 100, G: 200, B: 255, A: 255})
}

// Game is the Ebiten shell around the world actor: it forwards slider
// values and tick requests to the actor and renders whatever snapshot
// arrived last. It never touches the flock directly.
type Game struct {
	ctx        context.Context
	system     actor.ActorSystem
	worldPID   *actor.PID
	snapshotCh chan *pb.WorldSnapshot
	lastState  *pb.WorldSnapshot

	// UI Controls
	panel *ui.Panel

	// Widget references for easy access
	widgetSeparationWeight *ui.Slider
	widgetAlignmentWeight  *ui.Slider
	widgetCohesionWeight   *ui.Slider
	widgetPerceptionRadius *ui.Slider
	widgetSeparationRadius *ui.Slider
	widgetMaxSpeed         *ui.Slider
	widgetMaxForce         *ui.Slider
	widgetShowPerception   *ui.Checkbox

	cfg *flock.Config

	// Timing instrumentation
	lastUpdateDuration time.Duration
	lastDrawDuration   time.Duration
	updateAvg          float64 // Rolling average in ms
	drawAvg            float64 // Rolling average in ms
}

// NewGame spawns the world actor on the given system and wires the UI.
// The snapshot channel is buffered so a slow frame never stalls a tick.
func NewGame(ctx context.Context, cfg *flock.Config, system actor.ActorSystem, seed uint64) (*Game, error) {
	snapshotCh := make(chan *pb.WorldSnapshot, 10)

	worldPID, err := system.Spawn(ctx, "world", NewWorldActor(snapshotCh, cfg, seed))
	if err != nil {
		return nil, fmt.Errorf("spawn world: %w", err)
	}

	panel := ui.NewPanel(10, 10, 240)

	panel.AddSection("Steering Weights")
	widgetSeparationWeight := panel.AddSlider("Separation", 0, 5, cfg.SeparationWeight)
	widgetAlignmentWeight := panel.AddSlider("Alignment", 0, 5, cfg.AlignmentWeight)
	widgetCohesionWeight := panel.AddSlider("Cohesion", 0, 5, cfg.CohesionWeight)

	panel.AddSection("Radii")
	widgetPerceptionRadius := panel.AddSlider("Perception", 10, 200, cfg.PerceptionRadius)
	widgetSeparationRadius := panel.AddSlider("Separation Dist", 5, 100, cfg.SeparationRadius)

	panel.AddSection("Physics")
	widgetMaxSpeed := panel.AddSlider("Max Speed", 0.5, 10, cfg.MaxSpeed)
	widgetMaxForce := panel.AddSlider("Max Force", 0.01, 2, cfg.MaxForce)

	panel.AddSection("Visualization")
	widgetShowPerception := panel.AddCheckbox("Show Perception Radius", false)

	return &Game{
		ctx:                    ctx,
		system:                 system,
		worldPID:               worldPID,
		snapshotCh:             snapshotCh,
		lastState:              &pb.WorldSnapshot{}, // Avoid nil pointer
		panel:                  panel,
		widgetSeparationWeight: widgetSeparationWeight,
		widgetAlignmentWeight:  widgetAlignmentWeight,
		widgetCohesionWeight:   widgetCohesionWeight,
		widgetPerceptionRadius: widgetPerceptionRadius,
		widgetSeparationRadius: widgetSeparationRadius,
		widgetMaxSpeed:         widgetMaxSpeed,
		widgetMaxForce:         widgetMaxForce,
		widgetShowPerception:   widgetShowPerception,
		cfg:                    cfg,
	}, nil
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.lastUpdateDuration = time.Since(start)
		// Rolling average (exponential moving average)
		g.updateAvg = g.updateAvg*0.95 + float64(g.lastUpdateDuration.Microseconds())/1000.0*0.05
	}()

	// 1. Update UI Panel
	g.panel.Update()

	// 2. Retrieve latest state (non-blocking)
	select {
	case snap := <-g.snapshotCh:
		g.lastState = snap
	default:
		// Use previous state if new one isn't ready
	}

	// 3. Send all updated configuration values to the world
	actor.Tell(g.ctx, g.worldPID, &pb.UpdateConfig{
		SeparationWeight: g.widgetSeparationWeight.Value,
		AlignmentWeight:  g.widgetAlignmentWeight.Value,
		CohesionWeight:   g.widgetCohesionWeight.Value,
		PerceptionRadius: g.widgetPerceptionRadius.Value,
		SeparationRadius: g.widgetSeparationRadius.Value,
		MaxSpeed:         g.widgetMaxSpeed.Value,
		MaxForce:         g.widgetMaxForce.Value,
	})

	// 4. Trigger simulation step
	actor.Tell(g.ctx, g.worldPID, &pb.Tick{DeltaTime: g.cfg.Dt})

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.lastDrawDuration = time.Since(start)
		g.drawAvg = g.drawAvg*0.95 + float64(g.lastDrawDuration.Microseconds())/1000.0*0.05
	}()

	screen.Fill(color.RGBA{R: 10, G: 10, B: 30, A: 255})

	for _, b := range g.lastState.Boids {
		if g.widgetShowPerception.Value {
			vector.StrokeCircle(
				screen,
				float32(b.PositionX),
				float32(b.PositionY),
				float32(g.widgetPerceptionRadius.Value),
				1,
				color.RGBA{R: 60, G: 90, B: 120, A: 80},
				true,
			)
		}
		drawBoid(screen, b)
	}

	g.panel.Draw(screen)

	// Display timing breakdown for performance analysis
	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\nTick: %d\n\nUpdate: %.2fms\nDraw:   %.2fms\nTotal:  %.2fms",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		g.lastState.Tick,
		g.updateAvg,
		g.drawAvg,
		g.updateAvg+g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, int(g.cfg.WorldWidth)-150, 10)
}

// drawBoid renders one boid as a triangle pointing along its velocity.
func drawBoid(screen *ebiten.Image, b *pb.BoidState) {
	angle := math.Atan2(b.VelocityY, b.VelocityX)

	tipX := b.PositionX + math.Cos(angle)*6
	tipY := b.PositionY + math.Sin(angle)*6
	rightX := b.PositionX + math.Cos(angle+2.5)*5
	rightY := b.PositionY + math.Sin(angle+2.5)*5
	leftX := b.PositionX + math.Cos(angle-2.5)*5
	leftY := b.PositionY + math.Sin(angle-2.5)*5

	vertices := []ebiten.Vertex{
		{
			DstX: float32(tipX),
			DstY: float32(tipY),
			SrcX: 1, SrcY: 1,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		},
		{
			DstX: float32(rightX),
			DstY: float32(rightY),
			SrcX: 1, SrcY: 1,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		},
		{
			DstX: float32(leftX),
			DstY: float32(leftY),
			SrcX: 1, SrcY: 1,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		},
	}

	indices := []uint16{0, 1, 2}

	op := &ebiten.DrawTrianglesOptions{}
	screen.DrawTriangles(vertices, indices, whiteImage, op)
}

func (g *Game) Layout(w, h int) (int, int) {
	return int(g.cfg.WorldWidth), int(g.cfg.WorldHeight)
}
