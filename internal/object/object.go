package object

import (
	"github.com/kerskuchen/pongi/internal/draw"
	"github.com/kerskuchen/pongi/internal/geom"
	"github.com/kerskuchen/pongi/internal/input"
	"github.com/kerskuchen/pongi/internal/physics"
)

// Input is an alias for the input package's Input type.
type Input = input.Input

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta   float64 // Frame time in seconds, already pause/time-scale adjusted
	Input   Input
	Field   geom.Rect // Inner playing field (inside the walls)
	Mesh    *physics.CollisionMesh
	BallPos geom.Vec2 // Ball position at frame start (for the computer paddle)
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas *draw.Canvas // High-resolution canvas (2x vertical)
	Field  geom.Rect    // World rect mapped onto the canvas
}

// Project converts a world position to canvas coordinates. World space is
// Y-up; canvas rows grow downward, so Y flips here and only here.
func (ctx DrawContext) Project(p geom.Vec2) draw.Point {
	w := ctx.Canvas.LogicalWidth()
	h := ctx.Canvas.LogicalHeight()
	return draw.Point{
		X: (p.X - ctx.Field.Left) / ctx.Field.Width() * w,
		Y: (ctx.Field.Top - p.Y) / ctx.Field.Height() * h,
	}
}

// ProjectLen converts a world-space length to canvas pixels along X.
func (ctx DrawContext) ProjectLen(worldLen float64) float64 {
	return worldLen / ctx.Field.Width() * ctx.Canvas.LogicalWidth()
}

// Object is a drawable and updatable game entity.
type Object interface {
	// Update advances the object state by ctx.Delta seconds.
	Update(ctx UpdateContext) error

	// Draw draws the object onto the frame's canvas.
	Draw(ctx DrawContext) error
}
