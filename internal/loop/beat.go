package loop

import "math"

// Beat is a BPM-driven pulse generator. Value spikes to 1 on every beat and
// decays to 0 before the next one, driving the ball's render size and the
// HUD marker.
type Beat struct {
	bpm  float64
	time float64
}

// NewBeat creates a beat clock at the given tempo.
func NewBeat(bpm float64) *Beat {
	return &Beat{bpm: bpm}
}

// Advance moves the clock forward by dt seconds.
func (b *Beat) Advance(dt float64) {
	b.time += dt
}

// Reset rewinds the clock to the downbeat.
func (b *Beat) Reset() {
	b.time = 0
}

// Value returns the current pulse in [0,1]: 1 exactly on a beat, decaying
// quadratically until the next.
func (b *Beat) Value() float64 {
	period := 60 / b.bpm
	phase := math.Mod(b.time, period) / period
	decay := 1 - phase
	return decay * decay
}
