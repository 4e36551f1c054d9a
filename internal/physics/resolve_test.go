package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerskuchen/pongi/internal/geom"
)

// squareArena builds a mesh of four zero-thickness walls at x=±half, y=±half.
func squareArena(half float64) *CollisionMesh {
	mesh := NewCollisionMesh("arena")
	mesh.AddRect("left_wall", geom.RectFromBounds(-half, -half, -half, half))
	mesh.AddRect("right_wall", geom.RectFromBounds(half, half, -half, half))
	mesh.AddRect("bottom_wall", geom.RectFromBounds(-half, half, -half, -half))
	mesh.AddRect("top_wall", geom.RectFromBounds(-half, half, half, half))
	return mesh
}

func TestMoveSphereClearPathEndsExactlyAtTarget(t *testing.T) {
	mesh := squareArena(50)

	pos := geom.V2(0, 0)
	vel := geom.V2(30, 10)
	newPos, newVel, err := MoveSphere(mesh, pos, vel, 5, 0.5)

	require.NoError(t, err)
	// Full travel never reaches an expanded boundary, so the result is
	// exactly pos + vel*dt with the velocity untouched.
	assert.InDelta(t, 15, newPos.X, 1e-12)
	assert.InDelta(t, 5, newPos.Y, 1e-12)
	assert.Equal(t, vel, newVel)
}

func TestMoveSphereZeroDeltaTimeIsANoOp(t *testing.T) {
	mesh := squareArena(50)

	pos := geom.V2(49, 0)
	vel := geom.V2(1000, 0)
	newPos, newVel, err := MoveSphere(mesh, pos, vel, 5, 0)

	require.NoError(t, err)
	assert.Equal(t, pos, newPos)
	assert.Equal(t, vel, newVel)
}

func TestMoveSphereZeroVelocityIsANoOp(t *testing.T) {
	mesh := squareArena(50)

	pos := geom.V2(44, 0)
	newPos, newVel, err := MoveSphere(mesh, pos, geom.V2(0, 0), 5, 1)

	require.NoError(t, err)
	assert.Equal(t, pos, newPos)
	assert.Equal(t, geom.V2(0, 0), newVel)
}

func TestMoveSphereHeadOnReflectionNegatesVelocity(t *testing.T) {
	// Square arena with walls at x=±50, y=±50; a sphere of radius 5
	// travelling at (100,0) touches the expanded right wall at x=45.
	mesh := squareArena(50)

	pos := geom.V2(40, 0)
	vel := geom.V2(100, 0)

	// dt sized so the nominal travel exactly reaches the boundary: the
	// sphere stops just short of x=45 (one safety margin before contact,
	// one for the leftover reflected travel) with its velocity negated.
	newPos, newVel, err := MoveSphere(mesh, pos, vel, 5, 0.05)

	require.NoError(t, err)
	assert.InDelta(t, 45, newPos.X, 3*SafetyMargin)
	assert.Less(t, newPos.X, 45.0)
	assert.InDelta(t, 0, newPos.Y, 1e-12)
	assert.InDelta(t, -100, newVel.X, 1e-9)
	assert.InDelta(t, 0, newVel.Y, 1e-12)
}

func TestMoveSphereBounceConsumesRemainingTravel(t *testing.T) {
	// Same approach as the head-on test but with enough travel left after
	// the bounce to come back out: 20 units of travel, 5 to the wall,
	// roughly 15 back to x≈30.
	mesh := squareArena(50)

	newPos, newVel, err := MoveSphere(mesh, geom.V2(40, 0), geom.V2(100, 0), 5, 0.2)

	require.NoError(t, err)
	assert.InDelta(t, 30, newPos.X, 4*SafetyMargin)
	assert.InDelta(t, -100, newVel.X, 1e-9)
	assert.InDelta(t, 0, newVel.Y, 1e-12)
}

func TestMoveSphereNeverTunnelsThroughThinWallAtHighSpeed(t *testing.T) {
	mesh := NewCollisionMesh("thin")
	mesh.AddRect("wall", geom.RectFromBounds(0, 0.1, -1000, 1000))

	// Nominal travel is 10000 units, far beyond the wall 30 units ahead.
	newPos, newVel, err := MoveSphere(mesh, geom.V2(-30, 0), geom.V2(10000, 0), 5, 1)

	require.NoError(t, err)
	// The expanded boundary sits at x=-5; the sphere must reflect there
	// and end up on the near side, never beyond it.
	assert.Less(t, newPos.X, -5.0)
	assert.InDelta(t, -10000, newVel.X, 1e-6)
}

func TestMoveSphereSpeedConservedAcrossMultipleReflections(t *testing.T) {
	mesh := squareArena(20)

	pos := geom.V2(15, 14)
	vel := geom.V2(100, 90)
	speed := vel.Length()

	// Two bounces within one frame: right wall then top wall.
	newPos, newVel, err := MoveSphere(mesh, pos, vel, 2, 0.2)

	require.NoError(t, err)
	assert.InDelta(t, speed, newVel.Length(), 1e-9)
	assert.NotEqual(t, pos, newPos)
	// Both components reflected.
	assert.Negative(t, newVel.X)
	assert.Negative(t, newVel.Y)
}

func TestMoveSphereWedgedBetweenWallsReturnsOverflowError(t *testing.T) {
	// Two parallel walls 4 units apart with a radius-1 sphere between
	// them: the expanded boundaries leave a 2-unit corridor, so 1000
	// units of travel must reflect three times within the frame and
	// abort instead of ping-ponging on.
	mesh := NewCollisionMesh("corridor")
	mesh.AddRect("left", geom.RectFromBounds(0, 0, -50, 50))
	mesh.AddRect("right", geom.RectFromBounds(4, 4, -50, 50))

	_, _, err := MoveSphere(mesh, geom.V2(2, 0), geom.V2(1000, 0), 1, 1)

	require.Error(t, err)
	var overflow *ResolutionOverflowError
	require.ErrorAs(t, err, &overflow)
	assert.Equal(t, 3, overflow.Reflections)
	assert.Contains(t, overflow.Error(), "3 reflections")
}

func TestMoveSphereDiagonalBounceObeysReflectionLaw(t *testing.T) {
	mesh := NewCollisionMesh("floor")
	mesh.AddRect("floor", geom.RectFromBounds(-100, 100, -10, 0))

	// 45° incoming against a horizontal surface: outgoing mirrors the Y
	// component only.
	vel := geom.V2(50, -50)
	_, newVel, err := MoveSphere(mesh, geom.V2(0, 20), vel, 5, 1)

	require.NoError(t, err)
	assert.InDelta(t, 50, newVel.X, 1e-9)
	assert.InDelta(t, 50, newVel.Y, 1e-9)
	assert.InDelta(t, vel.Length(), newVel.Length(), 1e-9)
}

func TestMoveSphereSpeedConservedOverManyFrames(t *testing.T) {
	mesh := squareArena(50)

	pos := geom.V2(8, -4)
	vel := geom.FromAngle(40 * math.Pi / 180).Scale(240)
	speed := vel.Length()

	for frame := 0; frame < 600; frame++ {
		var err error
		pos, vel, err = MoveSphere(mesh, pos, vel, 5, 1.0/60)
		require.NoError(t, err, "frame %d", frame)
		require.InDelta(t, speed, vel.Length(), 1e-6, "frame %d", frame)
	}

	// The ball is still inside the arena's expanded bounds.
	assert.True(t, geom.RectFromBounds(-45, 45, -45, 45).ExtendedUniformlyBy(SafetyMargin).ContainsPoint(pos),
		"ball escaped the arena: %+v", pos)
}

func TestResolutionOverflowErrorMatchesWithErrorsAs(t *testing.T) {
	err := error(&ResolutionOverflowError{Reflections: 3})
	wrapped := errors.Join(err)

	var overflow *ResolutionOverflowError
	assert.True(t, errors.As(wrapped, &overflow))
	assert.Equal(t, 3, overflow.Reflections)
}
