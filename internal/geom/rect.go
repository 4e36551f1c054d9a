package geom

// Rect is an axis-aligned rectangle stored as explicit bounds.
// The invariant is Left <= Right and Bottom <= Top, with Top being the
// larger Y coordinate (world space is Y-up; the renderer flips when
// mapping to terminal rows). Degenerate rects with zero width or height
// are tolerated and produce degenerate but well-defined results.
type Rect struct {
	Left, Right, Bottom, Top float64
}

// RectFromBounds creates a rectangle from explicit edge coordinates.
func RectFromBounds(left, right, bottom, top float64) Rect {
	return Rect{Left: left, Right: right, Bottom: bottom, Top: top}
}

// RectFromXYWH creates a rectangle from its bottom-left corner and dimensions.
func RectFromXYWH(x, y, width, height float64) Rect {
	return Rect{Left: x, Right: x + width, Bottom: y, Top: y + height}
}

// RectFromPointDim creates a rectangle from its bottom-left corner and a
// dimension vector.
func RectFromPointDim(pos, dim Vec2) Rect {
	return RectFromXYWH(pos.X, pos.Y, dim.X, dim.Y)
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Top - r.Bottom
}

// Dim returns the dimensions as a vector.
func (r Rect) Dim() Vec2 {
	return Vec2{r.Width(), r.Height()}
}

// Pos returns the bottom-left corner.
func (r Rect) Pos() Vec2 {
	return Vec2{r.Left, r.Bottom}
}

// Center returns the center point.
func (r Rect) Center() Vec2 {
	return r.Pos().Add(r.Dim().Scale(0.5))
}

// TranslatedBy returns the rectangle shifted by the given vector.
func (r Rect) TranslatedBy(translation Vec2) Rect {
	return Rect{
		Left:   r.Left + translation.X,
		Right:  r.Right + translation.X,
		Bottom: r.Bottom + translation.Y,
		Top:    r.Top + translation.Y,
	}
}

// Centered returns the rectangle shifted so that its previous bottom-left
// corner becomes its center.
func (r Rect) Centered() Rect {
	return r.TranslatedBy(r.Dim().Scale(-0.5))
}

// CenteredAt returns the rectangle moved so that its center is at pos.
func (r Rect) CenteredAt(pos Vec2) Rect {
	return r.TranslatedBy(pos.Sub(r.Center()))
}

// ExtendedUniformlyBy grows the rectangle outward by the given amount on
// all four sides. Negative amounts shrink it.
func (r Rect) ExtendedUniformlyBy(amount float64) Rect {
	return Rect{
		Left:   r.Left - amount,
		Right:  r.Right + amount,
		Bottom: r.Bottom - amount,
		Top:    r.Top + amount,
	}
}

// ContainsPoint reports whether the point lies inside the rectangle,
// boundary included.
func (r Rect) ContainsPoint(p Vec2) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Bottom && p.Y <= r.Top
}

// ClampPoint clamps a point's coordinates to the rectangle's bounds.
func (r Rect) ClampPoint(p Vec2) Vec2 {
	return Vec2{Clamp(p.X, r.Left, r.Right), Clamp(p.Y, r.Bottom, r.Top)}
}

// Line is a directed segment from Start to End. It is used both for wall
// edges and for the travel ray of a swept sphere.
type Line struct {
	Start, End Vec2
}

// L creates a new Line.
func L(start, end Vec2) Line {
	return Line{Start: start, End: end}
}

// Dir returns the (non-normalized) direction vector End - Start.
func (l Line) Dir() Vec2 {
	return l.End.Sub(l.Start)
}

// Length returns the segment length.
func (l Line) Length() float64 {
	return l.Dir().Length()
}

// Edge indices of a rectangle's border as returned by BorderLines.
// The order is load-bearing: the collision code derives outward normals
// from these positions rather than from edge coordinates, which keeps
// normals stable even for degenerate (zero-extent) edges.
const (
	EdgeBottom = iota
	EdgeRight
	EdgeTop
	EdgeLeft
	EdgeCount
)

// EdgeNormal returns the fixed outward normal for a border edge index.
func EdgeNormal(edge int) Vec2 {
	switch edge {
	case EdgeBottom:
		return Vec2{0, -1}
	case EdgeRight:
		return Vec2{1, 0}
	case EdgeTop:
		return Vec2{0, 1}
	default:
		return Vec2{-1, 0}
	}
}

// BorderLines decomposes the rectangle into its four border segments in
// the order (bottom, right, top, left), winding counter-clockwise.
func (r Rect) BorderLines() [EdgeCount]Line {
	bottomLeft := Vec2{r.Left, r.Bottom}
	bottomRight := Vec2{r.Right, r.Bottom}
	topRight := Vec2{r.Right, r.Top}
	topLeft := Vec2{r.Left, r.Top}

	return [EdgeCount]Line{
		EdgeBottom: {Start: bottomLeft, End: bottomRight},
		EdgeRight:  {Start: bottomRight, End: topRight},
		EdgeTop:    {Start: topRight, End: topLeft},
		EdgeLeft:   {Start: topLeft, End: bottomLeft},
	}
}
