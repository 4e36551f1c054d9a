package object

import (
	"github.com/kerskuchen/pongi/internal/geom"
	"github.com/kerskuchen/pongi/internal/physics"
)

// Pongi is the ball. Position and velocity are committed only when the
// resolver succeeds; on a resolution overflow the previous state is kept and
// the error is returned for the loop to surface.
type Pongi struct {
	Pos    geom.Vec2
	Vel    geom.Vec2
	Radius float64
	Pulse  float64 // Beat pulse in [0,1], drives the render size
}

// NewPongi creates a ball at pos launched with speed at angle radians.
func NewPongi(pos geom.Vec2, speed, angle, radius float64) *Pongi {
	return &Pongi{
		Pos:    pos,
		Vel:    geom.FromAngle(angle).Scale(speed),
		Radius: radius,
	}
}

// Update sweeps the ball through the frame's collision mesh.
func (p *Pongi) Update(ctx UpdateContext) error {
	pos, vel, err := physics.MoveSphere(ctx.Mesh, p.Pos, p.Vel, p.Radius, ctx.Delta)
	if err != nil {
		return err
	}
	p.Pos = pos
	p.Vel = vel
	return nil
}

// Draw renders the ball as a filled circle, swelling slightly with the beat.
func (p *Pongi) Draw(ctx DrawContext) error {
	center := ctx.Project(p.Pos)
	radius := ctx.ProjectLen(p.Radius * (0.85 + 0.15*p.Pulse))
	ctx.Canvas.FillCircle(center.X, center.Y, radius)
	return nil
}

var _ Object = (*Pongi)(nil)
