package loop

import (
	"fmt"

	"github.com/kerskuchen/pongi/internal/draw"
	"github.com/kerskuchen/pongi/internal/input"
	"github.com/kerskuchen/pongi/internal/object"
)

// updateMenuState handles the menu screen.
func updateMenuState(state *State) {
	if state.Input.Space || state.Input.Enter {
		input.ResetKeyInput(state.InputStream)
		startGame(state)
	}
}

// drawUI draws the text overlay on top of the rendered canvas.
func drawUI(state *State, cw *draw.ChunkWriter, canvas *draw.Canvas) {
	termWidth := canvas.TerminalWidth()
	termHeight := canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	switch state.GameState {
	case GameStateMenu:
		drawMenuScreen(cw, centerX, centerY)
	case GameStatePlaying:
		drawPlayingHUD(state, cw, termWidth, centerX, centerY)
	}
}

// drawMenuScreen draws the title screen.
func drawMenuScreen(cw *draw.ChunkWriter, centerX, centerY int) {
	title := "P O N G I"
	cw.WriteAt(centerX-len(title)/2, centerY-2, title)

	subtitle := "Press SPACE to Play"
	cw.WriteAt(centerX-len(subtitle)/2, centerY+1, subtitle)

	controls := "Controls: W/S or Arrows to move, P pause, [ ] time scale, B debug, Q quit"
	cw.WriteAt(centerX-len(controls)/2, centerY+4, controls)
}

// drawPlayingHUD draws the in-game overlay: beat marker, pause and time-scale
// indicators, and the frozen-simulation error if the resolver gave up.
func drawPlayingHUD(state *State, cw *draw.ChunkWriter, termWidth, centerX, centerY int) {
	// Beat marker pulses in the top-left corner
	if state.Beat.Value() > 0.5 {
		cw.WriteAt(2, 1, "*")
	}

	if state.TimeFactor != 1 {
		text := fmt.Sprintf("x%g", state.TimeFactor)
		cw.WriteAt(termWidth-len(text)-1, 1, text)
	}

	if state.Paused {
		text := "PAUSED"
		cw.WriteAt(centerX-len(text)/2, 1, text)
	}

	if state.Err != nil {
		text := fmt.Sprintf("simulation stuck: %v", state.Err)
		cw.WriteAt(centerX-len(text)/2, centerY, text)

		prompt := "Press ESC for menu"
		cw.WriteAt(centerX-len(prompt)/2, centerY+2, prompt)
	}
}

// drawDebugOverlay renders the expanded collision outlines for the ball's
// radius plus a velocity arrow, straight onto the canvas.
func drawDebugOverlay(state *State, ctx object.DrawContext) {
	for _, outline := range state.Mesh.ExpandedLines(state.Pongi.Radius) {
		for _, line := range outline {
			ctx.Canvas.DrawLine(ctx.Project(line.Start), ctx.Project(line.End))
		}
	}

	// Velocity arrow: a tenth of a second of travel
	tip := state.Pongi.Pos.Add(state.Pongi.Vel.Scale(0.1))
	ctx.Canvas.DrawLine(ctx.Project(state.Pongi.Pos), ctx.Project(tip))
}
