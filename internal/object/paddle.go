package object

import (
	"math"

	"github.com/kerskuchen/pongi/internal/geom"
)

// Side selects which field edge a paddle guards.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// Paddle is a vertical bat hugging one field edge. The left paddle follows
// player input; the right one runs a simple follow-the-ball opponent.
type Paddle struct {
	Side     Side
	CenterY  float64
	Width    float64
	Height   float64
	Speed    float64
	Computer bool
}

// NewPaddle creates a paddle centered vertically on the field edge.
func NewPaddle(side Side, width, height, speed float64, computer bool) *Paddle {
	return &Paddle{
		Side:     side,
		Width:    width,
		Height:   height,
		Speed:    speed,
		Computer: computer,
	}
}

// Rect returns the paddle's collision rect in world space, flush against its
// field edge. Registered into the frame mesh by the loop.
func (p *Paddle) Rect(field geom.Rect) geom.Rect {
	var left float64
	if p.Side == SideLeft {
		left = field.Left
	} else {
		left = field.Right - p.Width
	}
	return geom.RectFromBounds(left, left+p.Width, p.CenterY-p.Height/2, p.CenterY+p.Height/2)
}

// Update moves the paddle and clamps it to the field.
func (p *Paddle) Update(ctx UpdateContext) error {
	if p.Computer {
		// Track the ball, capped at paddle speed so it can be outplayed.
		diff := ctx.BallPos.Y - p.CenterY
		step := p.Speed * ctx.Delta
		p.CenterY += math.Copysign(math.Min(math.Abs(diff), step), diff)
	} else {
		if ctx.Input.Up {
			p.CenterY += p.Speed * ctx.Delta
		}
		if ctx.Input.Down {
			p.CenterY -= p.Speed * ctx.Delta
		}
	}

	half := p.Height / 2
	if p.CenterY+half > ctx.Field.Top {
		p.CenterY = ctx.Field.Top - half
	}
	if p.CenterY-half < ctx.Field.Bottom {
		p.CenterY = ctx.Field.Bottom + half
	}
	return nil
}

// Draw renders the paddle as a filled rect.
func (p *Paddle) Draw(ctx DrawContext) error {
	r := p.Rect(ctx.Field)
	topLeft := ctx.Project(geom.V2(r.Left, r.Top))
	w := ctx.ProjectLen(r.Width())
	h := ctx.Project(geom.V2(r.Left, r.Bottom)).Y - topLeft.Y
	ctx.Canvas.FillRect(topLeft.X, topLeft.Y, w, h)
	return nil
}

var _ Object = (*Paddle)(nil)
