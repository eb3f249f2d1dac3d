package movegen

import (
	"fmt"

	"chess-rules/geom"
)

// Board is a rectangular bounds predicate. Width and Height are the largest
// valid coordinates, so Board{7, 7} spans 0..7 on both axes.
type Board struct {
	Width  int
	Height int
}

// MaxCoord is the largest Width or Height a Board may have. It keeps every
// slide short enough to enumerate.
const MaxCoord = 63

// StandardBoard is the 8x8 chess board.
var StandardBoard = Board{Width: 7, Height: 7}

// Contains reports whether v lies inside the board, bounds inclusive.
func (b Board) Contains(v geom.Vector) bool {
	return v.X >= 0 && v.X <= b.Width && v.Y >= 0 && v.Y <= b.Height
}

// RayLength is the slide distance that reaches every square of the board.
func (b Board) RayLength() int { return max(b.Width, b.Height) }

// IsStandard reports whether b is the 8x8 board.
func (b Board) IsStandard() bool { return b == StandardBoard }

// Squares lists every square, rank by rank from y = 0.
func (b Board) Squares() []geom.Vector {
	if b.Width < 0 || b.Height < 0 {
		return nil
	}
	out := make([]geom.Vector, 0, (b.Width+1)*(b.Height+1))
	for y := 0; y <= b.Height; y++ {
		for x := 0; x <= b.Width; x++ {
			out = append(out, geom.V(x, y))
		}
	}
	return out
}

// Validate rejects negative bounds and bounds above MaxCoord. A zero bound is a
// single file or rank.
func (b Board) Validate() error {
	if b.Width < 0 || b.Height < 0 {
		return fmt.Errorf("board (%d,%d): bounds must not be negative", b.Width, b.Height)
	}
	if b.Width > MaxCoord || b.Height > MaxCoord {
		return fmt.Errorf("board (%d,%d): bounds must not exceed %d", b.Width, b.Height, MaxCoord)
	}
	return nil
}

func (b Board) String() string { return fmt.Sprintf("%dx%d", b.Width+1, b.Height+1) }
