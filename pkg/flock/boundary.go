package flock

import (
	"math"

	"github.com/flocklab/go-flocking-simulation/pkg/geometry"
)

// apply enforces the boundary policy on one boid after integration,
// independently per axis. The world range is [0, width) x [0, height).
func (p BoundaryPolicy) apply(pos, vel *geometry.Vector2D, width, height float64) {
	switch p {
	case BoundaryWrap:
		pos.X = wrap(pos.X, width)
		pos.Y = wrap(pos.Y, height)
	default: // BoundaryBounce
		pos.X, vel.X = bounce(pos.X, vel.X, width)
		pos.Y, vel.Y = bounce(pos.Y, vel.Y, height)
	}
}

// wrap maps v into [0, max) modulo the range.
func wrap(v, max float64) float64 {
	v = math.Mod(v, max)
	if v < 0 {
		v += max
	}
	return v
}

// bounce clamps v to [0, max] and reflects the velocity component when the
// bound was crossed.
func bounce(v, vel, max float64) (float64, float64) {
	if v < 0 {
		return 0, -vel
	}
	if v > max {
		return max, -vel
	}
	return v, vel
}
