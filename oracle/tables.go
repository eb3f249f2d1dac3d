package oracle

import "chess-rules/geom"

// Leap offsets as (file, rank) steps, listed out in full rather than derived
// from the rule catalog so the two can disagree.
var (
	knightLeaps = []geom.Vector{
		geom.V(1, 2), geom.V(2, 1), geom.V(2, -1), geom.V(1, -2),
		geom.V(-1, -2), geom.V(-2, -1), geom.V(-2, 1), geom.V(-1, 2),
	}
	kingLeaps = []geom.Vector{
		geom.V(0, 1), geom.V(1, 1), geom.V(1, 0), geom.V(1, -1),
		geom.V(0, -1), geom.V(-1, -1), geom.V(-1, 0), geom.V(-1, 1),
	}
)

var (
	knightMasks = leapTable(knightLeaps)
	kingMasks   = leapTable(kingLeaps)
)

// leapTable maps every square index to the bitboard of squares one leap away.
func leapTable(leaps []geom.Vector) (table [64]uint64) {
	for sq := range table {
		from := geom.FromIndex(uint8(sq))
		for _, leap := range leaps {
			if to, err := geom.Add(from, leap).Index(); err == nil {
				table[sq] |= 1 << to
			}
		}
	}
	return table
}
