package rules

import (
	"reflect"
	"testing"

	"chess-rules/geom"
)

func TestCatalogCoversEveryPiece(t *testing.T) {
	cat := Catalog()
	for p := Pawn; p <= King; p++ {
		if rs, ok := cat[p]; !ok || len(rs) == 0 {
			t.Errorf("catalog has no rules for %s", p)
		}
	}
	if got, want := Pieces(), []Piece{Pawn, Knight, Castle, Bishop, Queen, King}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Pieces() = %v, want %v", got, want)
	}
}

func TestCatalogEntries(t *testing.T) {
	tests := []struct {
		piece Piece
		want  []Rule
	}{
		{Pawn, []Rule{AbsoluteRule(2, geom.V(0, 2)), RelativeRule(geom.V(0, 1))}},
		{Knight, []Rule{RotatableRule(geom.V(1, 2)), RotatableRule(geom.V(2, 1))}},
		{Castle, []Rule{ScalableRule(geom.V(0, 1))}},
		{Bishop, []Rule{ScalableRule(geom.V(1, 1))}},
		{Queen, []Rule{ScalableRule(geom.V(0, 1)), ScalableRule(geom.V(1, 1))}},
		{King, []Rule{RotatableRule(geom.V(0, 1)), RotatableRule(geom.V(1, 1))}},
	}
	for _, tt := range tests {
		if got := RulesFor(tt.piece); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.piece, got, tt.want)
		}
	}
}

func TestCatalogIsRebuiltPerCall(t *testing.T) {
	a := Catalog()
	a[King][0] = RelativeRule(geom.V(9, 9))
	delete(a, Pawn)
	if got := RulesFor(King)[0]; got != RotatableRule(geom.V(0, 1)) {
		t.Fatalf("mutating one catalog leaked into the next: %v", got)
	}
	if _, ok := Catalog()[Pawn]; !ok {
		t.Fatalf("deleting from one catalog leaked into the next")
	}
}

func TestRulesForUnknownPiecePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for piece outside the catalog")
		}
	}()
	RulesFor(Piece(200))
}

func TestParsePiece(t *testing.T) {
	tests := []struct {
		in   string
		want Piece
	}{
		{"pawn", Pawn},
		{"N", Knight},
		{"rook", Castle},
		{"Castle", Castle},
		{" b ", Bishop},
		{"queen", Queen},
		{"k", King},
	}
	for _, tt := range tests {
		got, err := ParsePiece(tt.in)
		if err != nil {
			t.Fatalf("ParsePiece(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParsePiece(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
	if _, err := ParsePiece("archbishop"); err == nil {
		t.Fatalf("expected error for unknown piece")
	}
}
