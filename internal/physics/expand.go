// Package physics implements swept-sphere collision detection and elastic
// response against axis-aligned rectangular obstacles. A moving sphere is
// reduced to a moving point tested against rectangles grown by the sphere
// radius (Minkowski sum), so the sweep test only needs ray/segment
// intersections.
package physics

import "github.com/kerskuchen/pongi/internal/geom"

// BoundarySegment is one piece of an expanded rectangle's outline. Normal
// is the outward normal of the original rectangle edge the segment derives
// from, which is the physically correct reflection normal. Edge is that
// edge's index (geom.EdgeBottom..geom.EdgeLeft).
type BoundarySegment struct {
	Line   geom.Line
	Normal geom.Vec2
	Edge   int
}

// RectSphereSum is the Minkowski sum of a rectangle and a sphere of the
// given radius: the set of segments a sphere's center must cross to touch
// the original rectangle's boundary.
//
// The outline has 8 segments: the 4 border edges pushed outward by radius
// along their fixed outward normals, joined by 4 straight chamfers at the
// corners. A true sum would round the corners with quarter arcs; the
// chamfer is a deliberate approximation. A sweep that stops on a chamfer
// still stops at a safe position, but the reflection normal reported there
// (the normal of the edge the chamfer follows) is only approximate.
type RectSphereSum struct {
	segments [8]BoundarySegment
}

// NewRectSphereSum expands rect outward by radius.
func NewRectSphereSum(rect geom.Rect, radius float64) RectSphereSum {
	var sum RectSphereSum

	borders := rect.BorderLines()

	// Offset edges keep the winding order of BorderLines.
	for edge := 0; edge < geom.EdgeCount; edge++ {
		normal := geom.EdgeNormal(edge)
		offset := normal.Scale(radius)
		sum.segments[2*edge] = BoundarySegment{
			Line: geom.L(
				borders[edge].Start.Add(offset),
				borders[edge].End.Add(offset),
			),
			Normal: normal,
			Edge:   edge,
		}
	}

	// Chamfers connect each offset edge's end to the next offset edge's
	// start. The chamfer inherits the normal of the edge it follows.
	for edge := 0; edge < geom.EdgeCount; edge++ {
		next := (edge + 1) % geom.EdgeCount
		sum.segments[2*edge+1] = BoundarySegment{
			Line: geom.L(
				sum.segments[2*edge].Line.End,
				sum.segments[2*next].Line.Start,
			),
			Normal: geom.EdgeNormal(edge),
			Edge:   edge,
		}
	}

	return sum
}

// Segments returns the 8 boundary segments of the expanded outline in
// winding order: offset bottom, chamfer, offset right, chamfer, offset
// top, chamfer, offset left, chamfer.
func (s *RectSphereSum) Segments() []BoundarySegment {
	return s.segments[:]
}

// Lines returns just the outline segments for debug rendering.
func (s *RectSphereSum) Lines() []geom.Line {
	lines := make([]geom.Line, len(s.segments))
	for i, seg := range s.segments {
		lines[i] = seg.Line
	}
	return lines
}
