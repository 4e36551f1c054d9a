package physics

import "github.com/kerskuchen/pongi/internal/geom"

// Intersection is a contact between a travel ray and an obstacle boundary.
// Normal is unit length and faces outward from the obstacle.
type Intersection struct {
	Point  geom.Vec2
	Normal geom.Vec2
}

// intersectRaySegment intersects a directed ray (itself a segment, t in
// [0,1]) with another segment (s in [0,1]) by solving the 2x2 linear
// system of the two parametric forms. Parallel or near-parallel pairs
// (determinant within epsilon of zero) never intersect.
// Returns the hit point, the ray parameter t and whether a hit exists.
func intersectRaySegment(ray, segment geom.Line) (geom.Vec2, float64, bool) {
	rayDir := ray.Dir()
	segDir := segment.Dir()

	det := rayDir.X*segDir.Y - rayDir.Y*segDir.X
	if geom.IsAlmostZero(det) {
		return geom.Vec2{}, 0, false
	}

	diff := segment.Start.Sub(ray.Start)
	t := (diff.X*segDir.Y - diff.Y*segDir.X) / det
	s := (diff.X*rayDir.Y - diff.Y*rayDir.X) / det

	if t < 0 || t > 1 || s < 0 || s > 1 {
		return geom.Vec2{}, 0, false
	}

	return ray.Start.Add(rayDir.Scale(t)), t, true
}
