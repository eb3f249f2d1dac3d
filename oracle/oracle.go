// Package oracle computes reference destination masks for the standard board
// independently of the rule catalog, so the catalog can be checked against
// conventional chess move generation.
package oracle

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/dylhunn/dragontoothmg"

	"chess-rules/geom"
	"chess-rules/movegen"
	"chess-rules/rules"
)

var (
	// ErrNoReference is returned for pieces whose catalog rules have no
	// conventional counterpart (the colorless pawn).
	ErrNoReference = errors.New("no reference moves for piece")
	// ErrBoardSize is returned when checking a board other than 8x8.
	ErrBoardSize = errors.New("reference moves need the standard 8x8 board")
)

// Mask returns the squares p reaches from loc on an empty 8x8 board.
func Mask(p rules.Piece, loc geom.Vector) (uint64, error) {
	sq, err := loc.Index()
	if err != nil {
		return 0, err
	}
	switch p {
	case rules.Knight:
		return knightMasks[sq], nil
	case rules.King:
		return kingMasks[sq], nil
	case rules.Castle:
		return dragontoothmg.CalculateRookMoveBitboard(sq, 0), nil
	case rules.Bishop:
		return dragontoothmg.CalculateBishopMoveBitboard(sq, 0), nil
	case rules.Queen:
		return dragontoothmg.CalculateRookMoveBitboard(sq, 0) |
			dragontoothmg.CalculateBishopMoveBitboard(sq, 0), nil
	default:
		return 0, fmt.Errorf("%s: %w", p, ErrNoReference)
	}
}

// HasReference reports whether Mask can answer for p.
func HasReference(p rules.Piece) bool {
	_, err := Mask(p, geom.V(0, 0))
	return err == nil
}

// MismatchError describes the squares where the finder and the reference
// disagree.
type MismatchError struct {
	Piece   rules.Piece
	From    geom.Vector
	Missing []geom.Vector
	Extra   []geom.Vector
}

func (e *MismatchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s from %s:", e.Piece, e.From)
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, " missing %s", joinSquares(e.Missing))
	}
	if len(e.Extra) > 0 {
		fmt.Fprintf(&b, " extra %s", joinSquares(e.Extra))
	}
	return b.String()
}

// Check compares the finder's moves for p at loc with the reference mask.
func Check(f *movegen.Finder, p rules.Piece, loc geom.Vector) error {
	if !f.Board.IsStandard() {
		return fmt.Errorf("board %s: %w", f.Board, ErrBoardSize)
	}
	want, err := Mask(p, loc)
	if err != nil {
		return err
	}
	got, err := movegen.Mask(f.FindMoves(p, loc))
	if err != nil {
		return err
	}
	if got == want {
		return nil
	}
	return &MismatchError{
		Piece:   p,
		From:    loc,
		Missing: squares(want &^ got),
		Extra:   squares(got &^ want),
	}
}

func squares(mask uint64) []geom.Vector {
	out := make([]geom.Vector, 0, bits.OnesCount64(mask))
	for mask != 0 {
		sq := bits.TrailingZeros64(mask)
		mask &= mask - 1
		out = append(out, geom.FromIndex(uint8(sq)))
	}
	return out
}

func joinSquares(vs []geom.Vector) string {
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = v.String()
	}
	return strings.Join(names, ",")
}
