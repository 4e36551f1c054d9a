package loop

import (
	"time"

	"github.com/kerskuchen/pongi/internal/geom"
	"github.com/kerskuchen/pongi/internal/input"
	"github.com/kerskuchen/pongi/internal/object"
	"github.com/kerskuchen/pongi/internal/physics"
)

// GameState represents the current game phase.
type GameState int

const (
	GameStateMenu    GameState = iota // Title / menu screen
	GameStatePlaying                  // Active gameplay
)

// State holds all game state for one session.
type State struct {
	Running   bool
	GameState GameState
	Input     object.Input
	Field     geom.Rect
	Delta     time.Duration

	// Playing state
	Pongi       *object.Pongi
	LeftPaddle  *object.Paddle
	RightPaddle *object.Paddle
	Mesh        *physics.CollisionMesh
	Beat        *Beat

	// Simulation controls
	Paused       bool
	TimeFactor   float64
	DebugOverlay bool

	// A resolver overflow freezes the simulation; the error stays on screen
	// until the player returns to the menu.
	Err error

	InputStream *input.Stream
}

// NewState creates a new initialized game state.
func NewState() *State {
	return &State{
		Running:    true,
		GameState:  GameStateMenu,
		Field:      FieldBounds(),
		TimeFactor: 1,
		Beat:       NewBeat(BeatsPerMinute),
	}
}

// UpdateContext creates an UpdateContext for the current frame. dt is the
// already pause/time-scale adjusted frame time in seconds.
func (s *State) UpdateContext(dt float64) object.UpdateContext {
	ctx := object.UpdateContext{
		Delta: dt,
		Input: s.Input,
		Field: s.Field,
		Mesh:  s.Mesh,
	}
	if s.Pongi != nil {
		ctx.BallPos = s.Pongi.Pos
	}
	return ctx
}
