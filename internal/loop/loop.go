// Package loop provides the main game loop and state management.
package loop

import (
	"bufio"
	"io"
	"time"

	"github.com/kerskuchen/pongi/internal/draw"
	"github.com/kerskuchen/pongi/internal/input"
	"github.com/kerskuchen/pongi/internal/object"
)

const targetFPS = 60
const targetFrameTime = time.Second / targetFPS

// Logical canvas resolution - world coordinates map onto these dimensions.
// Actual rendering scales to fit terminal size.
const (
	targetWidth  = 160 // Logical width
	targetHeight = 96  // Logical height (in sub-pixels, so 48 terminal rows)
)

// Run starts the main game loop with the standard Input → Update → Draw cycle.
// sizeFunc reports the terminal size; pass nil to query os.Stdout (local play).
// SSH sessions pass a func backed by window-change events.
func Run(r *bufio.Reader, w io.Writer, sizeFunc draw.TermSizeFunc) error {
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}

	state := NewState()
	state.InputStream = input.StartStream(r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	termWidth, termHeight, err := sizeFunc()
	if err != nil {
		return err
	}
	canvas := draw.NewScaledCanvas(termWidth, termHeight, targetWidth, targetHeight)
	layoutCanvas(canvas, termWidth, termHeight)

	// All frame output goes through one chunked writer, flushed once per
	// frame to keep SSH traffic smooth.
	cw := draw.NewChunkWriter(w, canvas.OffsetCol(), canvas.OffsetRow())

	lastTime := time.Now()

	for state.Running {
		frameStart := time.Now()
		state.Delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		processInput(state)

		// ===== UPDATE PHASE =====
		if err := updateScreen(canvas, cw, sizeFunc); err != nil {
			return err
		}

		switch state.GameState {
		case GameStateMenu:
			updateMenuState(state)
		case GameStatePlaying:
			updatePlayingState(state)
		}

		// ===== DRAW PHASE =====
		if err := drawFrame(state, cw, canvas); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// processInput reads all pending input and applies the global keys.
func processInput(state *State) {
	inp := input.ReadInput(state.InputStream)
	state.Input = inp

	if inp.Quit {
		state.Running = false
	}
}

// layoutCanvas fits the logical aspect ratio into the terminal and centers
// the render area. Terminal cells are two sub-pixels tall, hence the
// factor 2 when comparing aspect ratios.
func layoutCanvas(canvas *draw.Canvas, termWidth, termHeight int) {
	cols := termWidth
	rows := termWidth * targetHeight / (2 * targetWidth)
	if rows > termHeight {
		rows = termHeight
		cols = 2 * termHeight * targetWidth / targetHeight
	}
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	canvas.Resize(cols, rows)
	canvas.SetOffset((termWidth-cols)/2, (termHeight-rows)/2)
}

// updateScreen checks for terminal resize and updates canvas scaling and
// the overlay offsets.
func updateScreen(canvas *draw.Canvas, cw *draw.ChunkWriter, sizeFunc draw.TermSizeFunc) error {
	termWidth, termHeight, err := sizeFunc()
	if err != nil {
		return err
	}

	layoutCanvas(canvas, termWidth, termHeight)
	cw.SetOffset(canvas.OffsetCol(), canvas.OffsetRow())

	return nil
}

// drawFrame draws the scene and the UI overlay, then flushes the frame.
func drawFrame(state *State, cw *draw.ChunkWriter, canvas *draw.Canvas) error {
	draw.ClearScreen(cw)
	canvas.Clear()

	ctx := object.DrawContext{
		Canvas: canvas,
		Field:  state.Field,
	}

	if state.GameState == GameStatePlaying {
		for _, obj := range []object.Object{state.LeftPaddle, state.RightPaddle, state.Pongi} {
			if err := obj.Draw(ctx); err != nil {
				return err
			}
		}
		if state.DebugOverlay {
			drawDebugOverlay(state, ctx)
		}
	}

	// Render canvas into the frame buffer
	canvas.Render(cw)

	// UI overlay last so it sits on top of the canvas
	drawUI(state, cw, canvas)

	return cw.Flush()
}
