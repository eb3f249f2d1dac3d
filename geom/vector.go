package geom

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultRayLength is the longest slide on the standard 8x8 board.
const DefaultRayLength = 7

// ErrOffBoard is returned when a vector has no square index on the 8x8 board.
var ErrOffBoard = errors.New("vector is off the 8x8 board")

// Vector is a signed 2D board coordinate or offset. X is the file, Y the rank.
type Vector struct {
	X int
	Y int
}

// V is a convenience constructor for Vector.
func V(x, y int) Vector { return Vector{X: x, Y: y} }

// Add returns the component-wise sum of a and b.
func Add(a, b Vector) Vector {
	return Vector{X: a.X + b.X, Y: a.Y + b.Y}
}

// Rotate turns offset by quarterTurns*90 degrees around pivot and returns the
// resulting absolute coordinate. Quarter turns are clockwise on a board drawn
// with rank 1 at the bottom; any integer is accepted.
func Rotate(offset, pivot Vector, quarterTurns int) Vector {
	switch normalizeQuarterTurns(quarterTurns) {
	case 1:
		return Vector{X: pivot.X + offset.Y, Y: pivot.Y - offset.X}
	case 2:
		return Vector{X: pivot.X - offset.X, Y: pivot.Y - offset.Y}
	case 3:
		return Vector{X: pivot.X - offset.Y, Y: pivot.Y + offset.X}
	default:
		return Add(pivot, offset)
	}
}

func normalizeQuarterTurns(q int) int {
	q %= 4
	if q < 0 {
		q += 4
	}
	return q
}

// Scale returns the point factor steps away from center along offset.
func Scale(offset, center Vector, factor int) Vector {
	return Vector{X: center.X + offset.X*factor, Y: center.Y + offset.Y*factor}
}

// Ray returns Scale(offset, center, f) for f = 1..steps, nearest first.
func Ray(offset, center Vector, steps int) []Vector {
	if steps <= 0 {
		return nil
	}
	out := make([]Vector, 0, steps)
	for f := 1; f <= steps; f++ {
		out = append(out, Scale(offset, center, f))
	}
	return out
}

// OnStandardBoard reports whether v is one of the 64 squares a1..h8.
func (v Vector) OnStandardBoard() bool {
	return v.X >= 0 && v.X < 8 && v.Y >= 0 && v.Y < 8
}

// Index returns the rank-major square index (a1 = 0, h8 = 63).
func (v Vector) Index() (uint8, error) {
	if !v.OnStandardBoard() {
		return 0, fmt.Errorf("%s: %w", v.Coords(), ErrOffBoard)
	}
	return uint8(v.Y*8 + v.X), nil
}

// FromIndex is the inverse of Index. Indices above 63 wrap onto the board.
func FromIndex(sq uint8) Vector {
	sq &= 63
	return Vector{X: int(sq % 8), Y: int(sq / 8)}
}

// String prints algebraic notation for squares on the 8x8 board and the raw
// coordinate pair otherwise.
func (v Vector) String() string {
	if !v.OnStandardBoard() {
		return v.Coords()
	}
	return string([]byte{'a' + byte(v.X), '1' + byte(v.Y)})
}

// Coords prints v as "(x,y)".
func (v Vector) Coords() string {
	return "(" + strconv.Itoa(v.X) + "," + strconv.Itoa(v.Y) + ")"
}

// ParseVector accepts algebraic squares ("e4") or coordinate pairs ("4,3",
// "(4,3)", "-1,2").
func ParseVector(s string) (Vector, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return Vector{}, errors.New("empty square")
	}
	if len(s) == 2 && s[0] >= 'a' && s[0] <= 'h' && s[1] >= '1' && s[1] <= '8' {
		return Vector{X: int(s[0] - 'a'), Y: int(s[1] - '1')}, nil
	}

	s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Vector{}, fmt.Errorf("invalid square %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Vector{}, fmt.Errorf("invalid x in %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Vector{}, fmt.Errorf("invalid y in %q: %w", s, err)
	}
	return Vector{X: x, Y: y}, nil
}
