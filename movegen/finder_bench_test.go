package movegen

import (
	"testing"

	"chess-rules/geom"
	"chess-rules/rules"
)

func benchFindMoves(b *testing.B, p rules.Piece) {
	f := NewFinder(StandardBoard)
	squares := StandardBoard.Squares()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.FindMoves(p, squares[i%len(squares)])
	}
}

func BenchmarkFindMoves_Knight(b *testing.B) { benchFindMoves(b, rules.Knight) }

func BenchmarkFindMoves_Queen(b *testing.B) { benchFindMoves(b, rules.Queen) }

func BenchmarkFindMoves_AllPieces(b *testing.B) {
	f := NewFinder(StandardBoard)
	pieces := rules.Pieces()
	loc := geom.V(3, 3)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, p := range pieces {
			_ = f.FindMoves(p, loc)
		}
	}
}
