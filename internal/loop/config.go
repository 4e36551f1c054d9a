package loop

import "math"

// Game configuration constants.
// All tunable game parameters are centralized here for easy adjustment.

// Playing field (world units, Y-up, origin at center)
const (
	FieldHalfWidth  = 70.0
	FieldHalfHeight = 42.0
	WallThickness   = 4.0
)

// Ball
const (
	PongiRadius    = 4.0
	PongiBaseSpeed = 240.0
	LaunchAngle    = 40.0 * math.Pi / 180.0
	BeatsPerMinute = 100.0
)

// Paddles
const (
	PaddleWidth  = 4.0
	PaddleHeight = 20.0
	PaddleSpeed  = 120.0
)

// Time scaling
const (
	TimeFactorMin  = 0.125
	TimeFactorMax  = 8.0
	TimeFactorStep = 2.0
)
