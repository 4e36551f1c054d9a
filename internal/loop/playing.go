package loop

import (
	"github.com/kerskuchen/pongi/internal/geom"
	"github.com/kerskuchen/pongi/internal/object"
)

// updatePlayingState advances one frame of gameplay.
func updatePlayingState(state *State) {
	applySimulationKeys(state)

	if state.Input.Escape {
		state.GameState = GameStateMenu
		return
	}

	dt := state.Delta.Seconds() * state.TimeFactor
	if state.Paused || state.Err != nil {
		// Frozen: either the player paused, or the resolver overflowed and
		// the last good state stays on screen with the error message.
		dt = 0
	}

	state.Beat.Advance(dt)
	state.Pongi.Pulse = state.Beat.Value()

	if dt <= 0 {
		return
	}

	// Paddles move first, then the mesh is rebuilt so the ball sweeps
	// against this frame's paddle positions.
	ctx := state.UpdateContext(dt)
	state.LeftPaddle.Update(ctx)
	state.RightPaddle.Update(ctx)

	state.Mesh = BuildFieldMesh(state.Field, state.LeftPaddle, state.RightPaddle)

	ctx = state.UpdateContext(dt)
	if err := state.Pongi.Update(ctx); err != nil {
		state.Err = err
	}
}

// applySimulationKeys handles the pause, debug and time-scale toggles.
func applySimulationKeys(state *State) {
	if state.Input.PauseToggled {
		state.Paused = !state.Paused
	}
	if state.Input.DebugToggled {
		state.DebugOverlay = !state.DebugOverlay
	}
	if state.Input.Slower {
		state.TimeFactor = geom.Clamp(state.TimeFactor/TimeFactorStep, TimeFactorMin, TimeFactorMax)
	}
	if state.Input.Faster {
		state.TimeFactor = geom.Clamp(state.TimeFactor*TimeFactorStep, TimeFactorMin, TimeFactorMax)
	}
}

// startGame resets the playing state and launches the ball.
func startGame(state *State) {
	state.LeftPaddle = object.NewPaddle(object.SideLeft, PaddleWidth, PaddleHeight, PaddleSpeed, false)
	state.RightPaddle = object.NewPaddle(object.SideRight, PaddleWidth, PaddleHeight, PaddleSpeed, true)
	state.Pongi = object.NewPongi(geom.V2(0, 0), PongiBaseSpeed, LaunchAngle, PongiRadius)
	state.Mesh = BuildFieldMesh(state.Field, state.LeftPaddle, state.RightPaddle)

	state.Beat.Reset()
	state.Paused = false
	state.TimeFactor = 1
	state.Err = nil
	state.GameState = GameStatePlaying
}
