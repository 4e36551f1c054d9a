package physics

import "github.com/kerskuchen/pongi/internal/geom"

// ShapeID identifies a shape within a CollisionMesh. IDs are assigned in
// registration order starting at zero; they are compact ints so that the
// sweep hot path never compares or allocates strings. Display names for
// diagnostics live in a side table on the mesh.
type ShapeID int

// SweepResult describes the nearest obstacle hit along a travel ray.
// Segment is the index of the original border edge that produced the
// struck boundary segment (geom.EdgeBottom..geom.EdgeLeft).
type SweepResult struct {
	Shape        ShapeID
	Segment      int
	Intersection Intersection
}

// CollisionMesh is a named, ordered collection of rectangular obstacles.
// It owns no physics state and is intended to be rebuilt from the current
// wall layout each simulation step, so moving obstacles never need cache
// invalidation. The resolver only borrows it for the duration of a sweep.
type CollisionMesh struct {
	name       string
	shapes     []geom.Rect
	shapeNames []string
}

// NewCollisionMesh creates an empty mesh with a diagnostic name.
func NewCollisionMesh(name string) *CollisionMesh {
	return &CollisionMesh{name: name}
}

// Name returns the mesh's diagnostic name.
func (m *CollisionMesh) Name() string {
	return m.name
}

// AddRect registers a rectangular obstacle and returns its ShapeID.
// Registration order matters: it is the documented tie-break for sweeps
// that hit two shapes at the same distance.
func (m *CollisionMesh) AddRect(name string, rect geom.Rect) ShapeID {
	id := ShapeID(len(m.shapes))
	m.shapes = append(m.shapes, rect)
	m.shapeNames = append(m.shapeNames, name)
	return id
}

// Len returns the number of registered shapes.
func (m *CollisionMesh) Len() int {
	return len(m.shapes)
}

// ShapeName returns the display name of a shape for diagnostics.
func (m *CollisionMesh) ShapeName(id ShapeID) string {
	if int(id) < 0 || int(id) >= len(m.shapeNames) {
		return ""
	}
	return m.shapeNames[id]
}

// ShapeRect returns the registered rectangle for a shape.
func (m *CollisionMesh) ShapeRect(id ShapeID) geom.Rect {
	return m.shapes[id]
}

// SweepcastSphere sweeps a sphere of the given radius along the travel
// ray and returns the nearest boundary hit, if any. Every shape is
// expanded by radius and the ray is intersected with every expanded
// segment; the hit with the smallest ray parameter wins. Ties within
// epsilon are resolved to the first-registered shape/segment, which keeps
// grazing double-hits deterministic.
func (m *CollisionMesh) SweepcastSphere(ray geom.Line, radius float64) (SweepResult, bool) {
	var nearest SweepResult
	nearestT := 0.0
	found := false

	for i, rect := range m.shapes {
		sum := NewRectSphereSum(rect, radius)
		for _, seg := range sum.Segments() {
			point, t, ok := intersectRaySegment(ray, seg.Line)
			if !ok {
				continue
			}
			// Strict less-than keeps the earlier registration on ties.
			if found && t >= nearestT-geom.Epsilon {
				continue
			}
			nearest = SweepResult{
				Shape:   ShapeID(i),
				Segment: seg.Edge,
				Intersection: Intersection{
					Point:  point,
					Normal: seg.Normal,
				},
			}
			nearestT = t
			found = true
		}
	}

	return nearest, found
}

// ExpandedLines returns the expanded outline of every shape in
// registration order, for debug visualization by a line renderer. It is
// read-only and independent of the sweep internals.
func (m *CollisionMesh) ExpandedLines(radius float64) [][]geom.Line {
	outlines := make([][]geom.Line, len(m.shapes))
	for i, rect := range m.shapes {
		sum := NewRectSphereSum(rect, radius)
		outlines[i] = sum.Lines()
	}
	return outlines
}
