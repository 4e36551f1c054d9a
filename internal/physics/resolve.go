package physics

import (
	"fmt"

	"github.com/kerskuchen/pongi/internal/geom"
)

// SafetyMargin is added to the travel ray length so a collision landing
// exactly at the end of the nominal travel distance is still detected,
// and subtracted from the advance distance so the body always stops just
// short of the true contact point.
const SafetyMargin = 0.01

// maxReflections bounds the slide-reflect loop within a single frame.
// Hitting the bound means the body is wedged in degenerate geometry
// (e.g. a near-perpendicular corner at high speed); the resolver reports
// it instead of guessing.
const maxReflections = 3

// ResolutionOverflowError reports that the reflection loop exceeded its
// iteration limit within one frame. It is an expected, recoverable
// condition: the caller decides policy (typically freezing the simulation
// and surfacing the message), the resolver never retries internally.
type ResolutionOverflowError struct {
	Reflections int
}

func (e *ResolutionOverflowError) Error() string {
	return fmt.Sprintf("collision resolution overflow: %d reflections in a single frame", e.Reflections)
}

// MoveSphere advances a sphere through the mesh by velocity*dt, resolving
// any collisions on the way with perfectly elastic reflections: slide
// until the nearest boundary, reflect the direction about the contact
// normal keeping speed unchanged, and repeat until the frame's travel
// distance is consumed.
//
// Collisions within the frame are resolved strictly nearest-first, which
// is what makes multi-bounce sequences (corner hits) physically correct.
// The returned velocity has the same magnitude as the input velocity.
//
// The mesh and all caller state are left untouched; the caller commits
// the returned position and velocity. The only error is
// *ResolutionOverflowError.
func MoveSphere(mesh *CollisionMesh, pos, vel geom.Vec2, radius, dt float64) (geom.Vec2, geom.Vec2, error) {
	speed := vel.Length()
	if dt <= 0 || speed < geom.Epsilon {
		return pos, vel, nil
	}

	dir := vel.Normalized()
	remaining := speed * dt
	reflections := 0

	for {
		ray := geom.L(pos, pos.Add(dir.Scale(remaining+SafetyMargin)))
		hit, ok := mesh.SweepcastSphere(ray, radius)
		if !ok {
			break
		}

		distanceToHit := geom.Distance(hit.Intersection.Point, pos)
		safeDistance := distanceToHit - SafetyMargin
		if remaining < safeDistance {
			// The contact lies beyond this frame's travel.
			break
		}
		if safeDistance < 0 {
			// Already closer than the margin allows: reflect in place,
			// never move backward.
			safeDistance = 0
		}

		pos = pos.Add(dir.Scale(safeDistance))
		dir = dir.Reflected(hit.Intersection.Normal)
		remaining -= safeDistance

		reflections++
		if reflections >= maxReflections {
			return pos, dir.Scale(speed), &ResolutionOverflowError{Reflections: reflections}
		}
	}

	if reflections == 0 {
		// Common case: nothing in the way, the travel is exact.
		return pos.Add(vel.Scale(dt)), vel, nil
	}

	pos = pos.Add(dir.Scale(remaining))
	return pos, dir.Scale(speed), nil
}
