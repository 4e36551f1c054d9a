package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Input represents the current frame's input state. Held keys (paddle
// movement) use the key state timestamps; toggles (pause, debug, time scale)
// are edge-triggered on this frame's bytes only.
type Input struct {
	Quit   bool
	Up     bool
	Down   bool
	Space  bool
	Enter  bool
	Escape bool

	PauseToggled bool
	DebugToggled bool
	Slower       bool
	Faster       bool
}

// keyState tracks the last time each held key was pressed.
type keyState struct {
	quit   time.Time
	up     time.Time
	down   time.Time
	space  time.Time
	enter  time.Time
	escape time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and accumulates all pressed keys.
// Uses key state persistence to allow detecting simultaneous key combinations.
func ReadInput(s *Stream) Input {
	now := time.Now()
	var buf []byte

	// Drain all available bytes
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				// Reader hit EOF: the session is gone, treat as quit.
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	var input Input

	// Parse the collected bytes and update key state timestamps
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// Check for escape sequences (arrow keys, etc.)
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			// CSI sequence: ESC [ <code>
			switch buf[i+2] {
			case 'A': // Up arrow
				s.state.up = now
				i += 2
				continue
			case 'B': // Down arrow
				s.state.down = now
				i += 2
				continue
			case 'C', 'D': // Left/right arrows are unused, swallow them
				i += 2
				continue
			}
		}

		applyByteToState(&s.state, b, now)
		applyToggle(&input, b)
	}

	// Held keys are "pressed" if seen within the hold duration
	input.Quit = s.closed || now.Sub(s.state.quit) < keyHoldDuration
	input.Up = now.Sub(s.state.up) < keyHoldDuration
	input.Down = now.Sub(s.state.down) < keyHoldDuration
	input.Space = now.Sub(s.state.space) < keyHoldDuration
	input.Enter = now.Sub(s.state.enter) < keyHoldDuration
	input.Escape = now.Sub(s.state.escape) < keyHoldDuration

	return input
}

// ResetKeyInput clears all key state and drains pending bytes. Used on state
// transitions so a held key does not leak into the next screen.
func ResetKeyInput(s *Stream) {
	s.state = keyState{}
	for {
		select {
		case _, ok := <-s.ch:
			if !ok {
				s.closed = true
				return
			}
		default:
			return
		}
	}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q':
		state.quit = now
	case 'w', 'W', 'i', 'I':
		state.up = now
	case 's', 'S', 'k', 'K':
		state.down = now
	case ' ':
		state.space = now
	case '\n', '\r':
		state.enter = now
	case '\x1b':
		state.escape = now
	}
}

// applyToggle sets the edge-triggered flags for bytes seen this frame.
func applyToggle(input *Input, b byte) {
	switch b {
	case 'p', 'P':
		input.PauseToggled = true
	case 'b', 'B':
		input.DebugToggled = true
	case '[':
		input.Slower = true
	case ']':
		input.Faster = true
	}
}
