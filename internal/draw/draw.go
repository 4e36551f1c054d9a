// Package draw renders game graphics into a terminal using half-block
// characters for double vertical resolution, plus a chunked writer for
// text overlays that plays nicely with slow links (SSH).
package draw

// Point represents a 2D coordinate in canvas space.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockLight     = '░'
	BlockMedium    = '▒'
	BlockDark      = '▓'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)
