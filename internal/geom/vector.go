// Package geom provides the 2D geometry primitives used by the collision
// core and the renderer: vectors, axis-aligned rectangles and line segments.
package geom

import "math"

// Epsilon is the tolerance below which floating point values are treated
// as zero throughout the geometry and collision code.
const Epsilon = 1e-6

// Vec2 represents a 2D vector or point.
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// FromAngle returns the unit vector pointing at the given angle in radians
// (0 = pointing right, increases counter-clockwise).
func FromAngle(radians float64) Vec2 {
	return Vec2{math.Cos(radians), math.Sin(radians)}
}

// Add returns the vector sum a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Scale returns the scalar product a * s.
func (a Vec2) Scale(s float64) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

// Mul returns the component-wise product a * b.
func (a Vec2) Mul(b Vec2) Vec2 {
	return Vec2{a.X * b.X, a.Y * b.Y}
}

// Neg returns the negated vector.
func (a Vec2) Neg() Vec2 {
	return Vec2{-a.X, -a.Y}
}

// Dot returns the dot product a · b.
func (a Vec2) Dot(b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Length returns the magnitude of the vector.
func (a Vec2) Length() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y)
}

// LengthSq returns the squared magnitude. Use this when comparing
// distances to avoid the sqrt cost.
func (a Vec2) LengthSq() float64 {
	return a.X*a.X + a.Y*a.Y
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Vec2) float64 {
	return a.Sub(b).Length()
}

// Normalized returns the unit vector pointing in the same direction.
// The zero vector normalizes to the zero vector.
func (a Vec2) Normalized() Vec2 {
	length := a.Length()
	if length < Epsilon {
		return Vec2{}
	}
	return Vec2{a.X / length, a.Y / length}
}

// Reflected returns the vector mirrored about the given unit-length
// surface normal: a' = a - 2(a·n)n.
func (a Vec2) Reflected(normal Vec2) Vec2 {
	dot2 := 2 * a.Dot(normal)
	return Vec2{a.X - dot2*normal.X, a.Y - dot2*normal.Y}
}

// IsAlmostZero reports whether x is within Epsilon of zero.
func IsAlmostZero(x float64) bool {
	return math.Abs(x) < Epsilon
}

// Clamp restricts val to the interval [min, max].
func Clamp(val, min, max float64) float64 {
	return math.Max(min, math.Min(val, max))
}
