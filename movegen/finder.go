package movegen

import (
	"fmt"

	"chess-rules/geom"
	"chess-rules/rules"
)

// Finder enumerates the geometrically reachable squares of a piece. It knows
// nothing about other pieces: no blocking, captures or check.
type Finder struct {
	Board Board
}

func NewFinder(b Board) *Finder { return &Finder{Board: b} }

// Candidates concatenates every catalog rule's projection in catalog order,
// before the bounds filter.
func (f *Finder) Candidates(p rules.Piece, loc geom.Vector) []geom.Vector {
	rayLength := f.Board.RayLength()
	var out []geom.Vector
	for _, r := range rules.RulesFor(p) {
		out = append(out, r.Project(loc, rayLength)...)
	}
	return out
}

// FindMoves returns the in-bounds candidates in generation order. Squares
// produced by more than one rule are kept once per rule.
func (f *Finder) FindMoves(p rules.Piece, loc geom.Vector) []geom.Vector {
	return inBounds(f.Board, f.Candidates(p, loc))
}

// inBounds filters vs in place, keeping order and duplicates.
func inBounds(b Board, vs []geom.Vector) []geom.Vector {
	out := vs[:0]
	for _, v := range vs {
		if b.Contains(v) {
			out = append(out, v)
		}
	}
	return out
}

// FindMoves runs a Finder over the standard board.
func FindMoves(p rules.Piece, loc geom.Vector) []geom.Vector {
	return NewFinder(StandardBoard).FindMoves(p, loc)
}

// Mask packs 8x8 squares into a bitboard with a1 as bit 0.
func Mask(vs []geom.Vector) (uint64, error) {
	var mask uint64
	for _, v := range vs {
		sq, err := v.Index()
		if err != nil {
			return 0, fmt.Errorf("mask: %w", err)
		}
		mask |= uint64(1) << sq
	}
	return mask, nil
}
