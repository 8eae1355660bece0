package flock

import "github.com/flocklab/go-flocking-simulation/pkg/geometry"

// The three steering rules are pure functions over the previous tick's
// snapshot: they read positions/velocities and the querying boid's neighbor
// slots, and return a desired change of velocity. An empty neighbor list is
// a no-op contribution (zero vector), never an error.
//
// All accumulation is plain summation in slot order, so the result does not
// depend on how the neighbor set was discovered.

// Separation steers away from neighbors closer than radius. Each crowding
// neighbor contributes the unit vector pointing away from it scaled by the
// inverse of the distance, so closer boids repel more strongly. The sum is
// averaged over the contributing neighbors.
//
// Coincident boids (distance below geometry.Epsilon) contribute nothing:
// there is no meaningful "away" direction and dividing would produce NaN.
func Separation(self int, neighbors []int, positions []geometry.Vector2D, radius float64) geometry.Vector2D {
	var steer geometry.Vector2D
	count := 0

	for _, n := range neighbors {
		diff := positions[self].Sub(positions[n])
		d := diff.Len()
		if d > radius || d < geometry.Epsilon {
			continue
		}
		// diff/d is the unit away-direction, the extra 1/d is the weight.
		steer = steer.Add(diff.Mul(1 / (d * d)))
		count++
	}

	if count == 0 {
		return geometry.Vector2D{}
	}
	return steer.Mul(1 / float64(count))
}

// Alignment steers toward the average heading of the neighborhood: the
// correction (average neighbor velocity - own velocity).
func Alignment(self int, neighbors []int, velocities []geometry.Vector2D) geometry.Vector2D {
	if len(neighbors) == 0 {
		return geometry.Vector2D{}
	}

	var avg geometry.Vector2D
	for _, n := range neighbors {
		avg = avg.Add(velocities[n])
	}
	avg = avg.Mul(1 / float64(len(neighbors)))

	return avg.Sub(velocities[self])
}

// Cohesion steers toward the perceived center of mass of the neighborhood:
// (average neighbor position - own position).
func Cohesion(self int, neighbors []int, positions []geometry.Vector2D) geometry.Vector2D {
	if len(neighbors) == 0 {
		return geometry.Vector2D{}
	}

	var center geometry.Vector2D
	for _, n := range neighbors {
		center = center.Add(positions[n])
	}
	center = center.Mul(1 / float64(len(neighbors)))

	return center.Sub(positions[self])
}

// blendSteering limits each raw rule output to maxForce before weighting,
// so no single rule can dominate numerically, then sums the weighted terms
// into one acceleration vector.
func blendSteering(sep, align, coh geometry.Vector2D, cfg *Config) geometry.Vector2D {
	return sep.Limit(cfg.MaxForce).Mul(cfg.SeparationWeight).
		Add(align.Limit(cfg.MaxForce).Mul(cfg.AlignmentWeight)).
		Add(coh.Limit(cfg.MaxForce).Mul(cfg.CohesionWeight))
}
