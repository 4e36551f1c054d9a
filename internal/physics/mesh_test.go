package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerskuchen/pongi/internal/geom"
)

func TestAddRectAssignsSequentialIDsAndKeepsNames(t *testing.T) {
	mesh := NewCollisionMesh("play_field")

	a := mesh.AddRect("left_wall", geom.RectFromBounds(0, 1, 0, 1))
	b := mesh.AddRect("right_wall", geom.RectFromBounds(2, 3, 0, 1))

	assert.Equal(t, "play_field", mesh.Name())
	assert.Equal(t, ShapeID(0), a)
	assert.Equal(t, ShapeID(1), b)
	assert.Equal(t, 2, mesh.Len())
	assert.Equal(t, "left_wall", mesh.ShapeName(a))
	assert.Equal(t, "right_wall", mesh.ShapeName(b))
	assert.Equal(t, "", mesh.ShapeName(ShapeID(99)))
}

func TestSweepcastSphereMissesWhenRayFallsShort(t *testing.T) {
	mesh := NewCollisionMesh("m")
	mesh.AddRect("wall", geom.RectFromBounds(10, 12, -10, 10))

	// Expanded boundary sits at x=8; a ray ending at x=7 cannot touch it.
	_, ok := mesh.SweepcastSphere(geom.L(geom.V2(0, 0), geom.V2(7, 0)), 2)
	assert.False(t, ok)
}

func TestSweepcastSphereHitsNearestBoundaryWithEdgeNormal(t *testing.T) {
	mesh := NewCollisionMesh("m")
	near := mesh.AddRect("near", geom.RectFromBounds(10, 12, -10, 10))
	mesh.AddRect("far", geom.RectFromBounds(20, 22, -10, 10))

	result, ok := mesh.SweepcastSphere(geom.L(geom.V2(0, 0), geom.V2(30, 0)), 2)

	require.True(t, ok)
	assert.Equal(t, near, result.Shape)
	assert.Equal(t, geom.EdgeLeft, result.Segment)
	assert.InDelta(t, 8, result.Intersection.Point.X, 1e-9)
	assert.InDelta(t, 0, result.Intersection.Point.Y, 1e-9)
	assert.Equal(t, geom.V2(-1, 0), result.Intersection.Normal)
}

func TestSweepcastSphereParallelRayNeverHits(t *testing.T) {
	mesh := NewCollisionMesh("m")
	mesh.AddRect("wall", geom.RectFromBounds(10, 12, -10, 10))

	// Travelling parallel to the expanded left boundary, one unit away.
	_, ok := mesh.SweepcastSphere(geom.L(geom.V2(7, -20), geom.V2(7, 20)), 2)
	assert.False(t, ok)
}

func TestSweepcastSphereGrazingTieResolvesToFirstRegistered(t *testing.T) {
	// Two stacked walls share a corner at (10,0). A ray along y=0 grazes
	// both expanded outlines at exactly the same distance; the documented
	// tie-break is first-registered-wins, stable across runs.
	build := func() *CollisionMesh {
		mesh := NewCollisionMesh("m")
		mesh.AddRect("lower", geom.RectFromBounds(10, 20, -5, 0))
		mesh.AddRect("upper", geom.RectFromBounds(10, 20, 0, 5))
		return mesh
	}

	ray := geom.L(geom.V2(0, 0), geom.V2(20, 0))

	first, ok := build().SweepcastSphere(ray, 1)
	require.True(t, ok)
	assert.Equal(t, ShapeID(0), first.Shape)

	for i := 0; i < 100; i++ {
		result, ok := build().SweepcastSphere(ray, 1)
		require.True(t, ok)
		require.Equal(t, first.Shape, result.Shape)
		require.Equal(t, first.Segment, result.Segment)
		require.Equal(t, first.Intersection, result.Intersection)
	}
}

func TestSweepcastSphereCornerContactUsesChamferNormal(t *testing.T) {
	// Known edge case: a diagonal approach onto a corner lands on the
	// chamfer segment, whose reported normal is the adjacent edge's
	// normal rather than the true corner diagonal. The stop position is
	// still safe; only the reflection direction is approximate there.
	mesh := NewCollisionMesh("m")
	mesh.AddRect("box", geom.RectFromBounds(0, 10, 0, 10))

	result, ok := mesh.SweepcastSphere(geom.L(geom.V2(-6, -6), geom.V2(0, 0)), 2)

	require.True(t, ok)
	assert.Equal(t, geom.EdgeLeft, result.Segment)
	assert.Equal(t, geom.V2(-1, 0), result.Intersection.Normal)
	assert.InDelta(t, -1, result.Intersection.Point.X, 1e-9)
	assert.InDelta(t, -1, result.Intersection.Point.Y, 1e-9)
}

func TestSweepcastSphereEmptyMeshNeverHits(t *testing.T) {
	mesh := NewCollisionMesh("empty")
	_, ok := mesh.SweepcastSphere(geom.L(geom.V2(0, 0), geom.V2(100, 100)), 5)
	assert.False(t, ok)
}

func TestExpandedLinesReturnsOneOutlinePerShape(t *testing.T) {
	mesh := NewCollisionMesh("m")
	mesh.AddRect("a", geom.RectFromBounds(0, 10, 0, 10))
	mesh.AddRect("b", geom.RectFromBounds(20, 30, 0, 10))

	outlines := mesh.ExpandedLines(2)

	require.Len(t, outlines, 2)
	for _, outline := range outlines {
		assert.Len(t, outline, 8)
	}
	// The first outline's bottom offset runs along y=-2.
	assert.InDelta(t, -2, outlines[0][0].Start.Y, 1e-9)
	assert.InDelta(t, -2, outlines[0][0].End.Y, 1e-9)
}
