package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// queuedStream returns a Stream with the given bytes already buffered, so
// parsing is deterministic regardless of reader goroutine timing.
func queuedStream(data string) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	for i := 0; i < len(data); i++ {
		s.ch <- data[i]
	}
	return s
}

func TestHeldKeysFromStream(t *testing.T) {
	inp := ReadInput(queuedStream("w"))
	assert.True(t, inp.Up)
	assert.False(t, inp.Down)
}

func TestArrowEscapeSequence(t *testing.T) {
	inp := ReadInput(queuedStream("\x1b[B"))
	assert.True(t, inp.Down)
	// The CSI bytes must not leak into the escape key state.
	assert.False(t, inp.Escape)
}

func TestClosedStreamReadsAsQuit(t *testing.T) {
	s := queuedStream("")
	close(s.ch)
	assert.True(t, ReadInput(s).Quit)
}

func TestTogglesAreEdgeTriggered(t *testing.T) {
	inp := ReadInput(queuedStream("p]"))
	assert.True(t, inp.PauseToggled)
	assert.True(t, inp.Faster)
	assert.False(t, inp.DebugToggled)
	assert.False(t, inp.Slower)

	// The next frame sees no bytes, so the toggles clear.
	inp = ReadInput(&Stream{ch: make(chan byte, 1)})
	assert.False(t, inp.PauseToggled)
}

func TestResetKeyInputClearsHeldKeys(t *testing.T) {
	s := &Stream{ch: make(chan byte, 8)}
	s.state.up = time.Now()
	require.True(t, ReadInput(s).Up)

	ResetKeyInput(s)
	assert.False(t, ReadInput(s).Up)
}
