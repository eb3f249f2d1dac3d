package rules

import (
	"fmt"

	"chess-rules/geom"
)

// Kind tags the shape of a movement rule.
type Kind uint8

const (
	// Absolute fires only when the piece stands on Rank.
	Absolute Kind = iota
	// Relative is a single fixed offset.
	Relative
	// RelativeRotatable is a leap replicated at every quarter turn around the piece.
	RelativeRotatable
	// RelativeRotatableScalable is a slide along a direction and its three rotations.
	RelativeRotatableScalable
)

func (k Kind) String() string {
	switch k {
	case Absolute:
		return "absolute"
	case Relative:
		return "relative"
	case RelativeRotatable:
		return "rotatable"
	case RelativeRotatableScalable:
		return "scalable"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Rule is one movement rule. Rank is only read for Absolute rules.
type Rule struct {
	Kind   Kind
	Rank   int
	Vector geom.Vector
}

func AbsoluteRule(rank int, v geom.Vector) Rule {
	return Rule{Kind: Absolute, Rank: rank, Vector: v}
}

func RelativeRule(v geom.Vector) Rule { return Rule{Kind: Relative, Vector: v} }

func RotatableRule(v geom.Vector) Rule { return Rule{Kind: RelativeRotatable, Vector: v} }

func ScalableRule(v geom.Vector) Rule { return Rule{Kind: RelativeRotatableScalable, Vector: v} }

func (r Rule) String() string {
	if r.Kind == Absolute {
		return fmt.Sprintf("%s rank=%d %s", r.Kind, r.Rank, r.Vector.Coords())
	}
	return fmt.Sprintf("%s %s", r.Kind, r.Vector.Coords())
}

// Project expands r from loc into absolute destinations. rayLength bounds the
// slide of scalable rules. The result is unfiltered and may leave the board.
func (r Rule) Project(loc geom.Vector, rayLength int) []geom.Vector {
	return Project(r, loc, rayLength)
}

// Project is the function form of Rule.Project.
func Project(r Rule, loc geom.Vector, rayLength int) []geom.Vector {
	switch r.Kind {
	case Absolute:
		if loc.Y != r.Rank {
			return nil
		}
		return []geom.Vector{geom.Add(loc, r.Vector)}
	case Relative:
		return []geom.Vector{geom.Add(loc, r.Vector)}
	case RelativeRotatable:
		return []geom.Vector{
			geom.Add(loc, r.Vector),
			geom.Rotate(r.Vector, loc, 1),
			geom.Rotate(r.Vector, loc, 2),
			geom.Rotate(r.Vector, loc, 3),
		}
	case RelativeRotatableScalable:
		// Directions are rotated about the origin, then slid from loc.
		var origin geom.Vector
		out := make([]geom.Vector, 0, 4*max(rayLength, 0))
		for q := 0; q < 4; q++ {
			dir := geom.Rotate(r.Vector, origin, q)
			out = append(out, geom.Ray(dir, loc, rayLength)...)
		}
		return out
	default:
		return nil
	}
}
