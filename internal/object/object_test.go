package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerskuchen/pongi/internal/draw"
	"github.com/kerskuchen/pongi/internal/geom"
	"github.com/kerskuchen/pongi/internal/input"
	"github.com/kerskuchen/pongi/internal/physics"
)

func testField() geom.Rect {
	return geom.RectFromBounds(-50, 50, -30, 30)
}

func newTestCanvas() *draw.Canvas {
	return draw.NewScaledCanvas(80, 24, 160, 96)
}

func TestPaddleRectHugsItsEdge(t *testing.T) {
	field := testField()

	left := NewPaddle(SideLeft, 4, 20, 100, false)
	r := left.Rect(field)
	assert.Equal(t, field.Left, r.Left)
	assert.Equal(t, 4.0, r.Width())
	assert.Equal(t, 20.0, r.Height())

	right := NewPaddle(SideRight, 4, 20, 100, true)
	r = right.Rect(field)
	assert.Equal(t, field.Right, r.Right)
}

func TestPaddleClampedToField(t *testing.T) {
	field := testField()
	p := NewPaddle(SideLeft, 4, 20, 1000, false)

	ctx := UpdateContext{Delta: 1, Field: field, Input: input.Input{Up: true}}
	require.NoError(t, p.Update(ctx))
	assert.Equal(t, field.Top-10, p.CenterY)

	ctx.Input = input.Input{Down: true}
	require.NoError(t, p.Update(ctx))
	assert.Equal(t, field.Bottom+10, p.CenterY)
}

func TestComputerPaddleTracksBallCapped(t *testing.T) {
	field := testField()
	p := NewPaddle(SideRight, 4, 20, 10, true)

	// Ball far above: movement limited to speed * dt.
	ctx := UpdateContext{Delta: 0.5, Field: field, BallPos: geom.V2(0, 25)}
	require.NoError(t, p.Update(ctx))
	assert.InDelta(t, 5, p.CenterY, 1e-12)

	// Ball just below the paddle center: snaps to it, no overshoot.
	ctx.BallPos = geom.V2(0, 4)
	require.NoError(t, p.Update(ctx))
	assert.InDelta(t, 4, p.CenterY, 1e-12)
}

func TestPongiCommitsOnlyOnSuccess(t *testing.T) {
	mesh := physics.NewCollisionMesh("test")
	mesh.AddRect("far wall", geom.RectFromBounds(100, 104, -50, 50))

	ball := NewPongi(geom.V2(0, 0), 10, 0, 1)

	// Clear travel commits the advanced position.
	ctx := UpdateContext{Delta: 0.5, Mesh: mesh}
	require.NoError(t, ball.Update(ctx))
	assert.InDelta(t, 5, ball.Pos.X, 1e-12)

	// A resolution overflow leaves the ball untouched.
	corridor := physics.NewCollisionMesh("corridor")
	corridor.AddRect("left", geom.RectFromBounds(-4, -3, -50, 50))
	corridor.AddRect("right", geom.RectFromBounds(8, 9, -50, 50))
	stuck := NewPongi(geom.V2(6, 0), 1000, 0, 1)
	before := *stuck

	ctx = UpdateContext{Delta: 1, Mesh: corridor}
	err := stuck.Update(ctx)
	require.Error(t, err)

	var overflow *physics.ResolutionOverflowError
	require.ErrorAs(t, err, &overflow)
	assert.Equal(t, before.Pos, stuck.Pos)
	assert.Equal(t, before.Vel, stuck.Vel)
}

func TestProjectFlipsY(t *testing.T) {
	canvas := newTestCanvas()
	ctx := DrawContext{Canvas: canvas, Field: testField()}

	topLeft := ctx.Project(geom.V2(-50, 30))
	assert.InDelta(t, 0, topLeft.X, 1e-12)
	assert.InDelta(t, 0, topLeft.Y, 1e-12)

	bottomRight := ctx.Project(geom.V2(50, -30))
	assert.InDelta(t, canvas.LogicalWidth(), bottomRight.X, 1e-12)
	assert.InDelta(t, canvas.LogicalHeight(), bottomRight.Y, 1e-12)
}
