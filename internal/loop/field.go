package loop

import (
	"github.com/kerskuchen/pongi/internal/geom"
	"github.com/kerskuchen/pongi/internal/object"
	"github.com/kerskuchen/pongi/internal/physics"
)

// FieldBounds returns the inner playing field, centered on the origin.
func FieldBounds() geom.Rect {
	return geom.RectFromBounds(-FieldHalfWidth, FieldHalfWidth, -FieldHalfHeight, FieldHalfHeight)
}

// BuildFieldMesh assembles the frame's collision mesh: four walls of finite
// thickness hugging the field from the outside, then the paddles. The mesh is
// rebuilt every frame because the paddles move; registration order is fixed
// so collision tie-breaks stay deterministic.
func BuildFieldMesh(field geom.Rect, paddles ...*object.Paddle) *physics.CollisionMesh {
	mesh := physics.NewCollisionMesh("field")

	mesh.AddRect("wall left", geom.RectFromBounds(
		field.Left-WallThickness, field.Left,
		field.Bottom-WallThickness, field.Top+WallThickness))
	mesh.AddRect("wall right", geom.RectFromBounds(
		field.Right, field.Right+WallThickness,
		field.Bottom-WallThickness, field.Top+WallThickness))
	mesh.AddRect("wall top", geom.RectFromBounds(
		field.Left, field.Right,
		field.Top, field.Top+WallThickness))
	mesh.AddRect("wall bottom", geom.RectFromBounds(
		field.Left, field.Right,
		field.Bottom-WallThickness, field.Bottom))

	for _, p := range paddles {
		name := "paddle left"
		if p.Side == object.SideRight {
			name = "paddle right"
		}
		mesh.AddRect(name, p.Rect(field))
	}

	return mesh
}
