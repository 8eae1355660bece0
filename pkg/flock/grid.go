package flock

import (
	"math"
	"sort"

	"github.com/flocklab/go-flocking-simulation/pkg/geometry"
)

type gridKey struct {
	x, y int
}

// minCellSize keeps cells from degenerating when the perception radius is
// tuned very low at runtime.
const minCellSize = 10.0

// Grid is a uniform spatial hash over the population's positions. It stores
// slot indices into the Flock's parallel slices, never boid data itself, so
// it survives any relocation of the underlying storage.
//
// A Grid is a per-tick snapshot: it must be rebuilt before the query phase
// of every tick and must not be queried after the indexed positions have
// been mutated.
type Grid struct {
	cellSize float64
	cells    map[gridKey][]int
}

// NewGrid creates an empty grid. The cell size is fixed at Rebuild time.
func NewGrid() *Grid {
	return &Grid{cells: make(map[gridKey][]int)}
}

// Rebuild re-buckets every position. Cell side is max(radius, minCellSize)
// so a radius query never has to visit more than the cells overlapping the
// query circle.
//
// Bucket slices are truncated to length 0 instead of cleared, reusing their
// backing arrays and keeping steady-state allocations near zero.
func (g *Grid) Rebuild(positions []geometry.Vector2D, radius float64) {
	for k := range g.cells {
		g.cells[k] = g.cells[k][:0]
	}

	g.cellSize = math.Max(radius, minCellSize)
	for slot, p := range positions {
		key := gridKey{x: int(math.Floor(p.X / g.cellSize)), y: int(math.Floor(p.Y / g.cellSize))}
		g.cells[key] = append(g.cells[key], slot)
	}
}

// Query appends to out the slots of all boids within radius of p, excluding
// the slot exclude (a boid is never its own neighbor). The boundary is
// inclusive: a boid at exactly radius distance counts as a neighbor.
//
// Results are sorted by slot so that accumulation order is reproducible for
// a given population layout. The returned slice aliases out's backing array.
func (g *Grid) Query(positions []geometry.Vector2D, p geometry.Vector2D, radius float64, exclude int, out []int) []int {
	out = out[:0]
	radiusSq := radius * radius

	minGx := int(math.Floor((p.X - radius) / g.cellSize))
	maxGx := int(math.Floor((p.X + radius) / g.cellSize))
	minGy := int(math.Floor((p.Y - radius) / g.cellSize))
	maxGy := int(math.Floor((p.Y + radius) / g.cellSize))

	for gx := minGx; gx <= maxGx; gx++ {
		for gy := minGy; gy <= maxGy; gy++ {
			slots, ok := g.cells[gridKey{x: gx, y: gy}]
			if !ok {
				continue
			}
			for _, slot := range slots {
				if slot == exclude {
					continue
				}
				if positions[slot].DistanceSquaredTo(p) <= radiusSq {
					out = append(out, slot)
				}
			}
		}
	}

	sort.Ints(out)
	return out
}
