package rules

import (
	"fmt"
	"strings"
)

// Piece is a colorless piece kind used to look up movement rules.
type Piece uint8

const (
	Pawn Piece = iota
	Knight
	Castle
	Bishop
	Queen
	King
)

func (p Piece) String() string {
	switch p {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Castle:
		return "castle"
	case Bishop:
		return "bishop"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return fmt.Sprintf("piece(%d)", uint8(p))
	}
}

// ParsePiece accepts full names and single letters. "rook" and "r" are
// accepted for Castle.
func ParsePiece(s string) (Piece, error) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "p", "pawn":
		return Pawn, nil
	case "n", "knight":
		return Knight, nil
	case "c", "r", "castle", "rook":
		return Castle, nil
	case "b", "bishop":
		return Bishop, nil
	case "q", "queen":
		return Queen, nil
	case "k", "king":
		return King, nil
	default:
		return 0, fmt.Errorf("unknown piece %q", s)
	}
}
