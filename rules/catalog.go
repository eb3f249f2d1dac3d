package rules

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"chess-rules/geom"
)

// Catalog builds the movement rules for every piece. The map is fresh on each
// call; rule order fixes the order of generated moves.
//
// Pawn rules always move toward +Y and the double step only fires from y == 2.
// Piece color is not modelled.
func Catalog() map[Piece][]Rule {
	return map[Piece][]Rule{
		Pawn: {
			AbsoluteRule(2, geom.V(0, 2)),
			RelativeRule(geom.V(0, 1)),
		},
		Knight: {
			RotatableRule(geom.V(1, 2)),
			RotatableRule(geom.V(2, 1)),
		},
		Castle: {
			ScalableRule(geom.V(0, 1)),
		},
		Bishop: {
			ScalableRule(geom.V(1, 1)),
		},
		Queen: {
			ScalableRule(geom.V(0, 1)),
			ScalableRule(geom.V(1, 1)),
		},
		King: {
			RotatableRule(geom.V(0, 1)),
			RotatableRule(geom.V(1, 1)),
		},
	}
}

// RulesFor returns the catalog entry for p. The catalog covers every Piece, so
// a miss is a programming error and panics.
func RulesFor(p Piece) []Rule {
	rs, ok := Catalog()[p]
	if !ok {
		panic(fmt.Sprintf("rules: no catalog entry for %s", p))
	}
	return rs
}

// Pieces lists the catalog's pieces in enum order.
func Pieces() []Piece {
	ps := maps.Keys(Catalog())
	slices.Sort(ps)
	return ps
}
