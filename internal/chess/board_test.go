package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if got := b.Get(Sq(rank, file)); got != nil {
				t.Errorf("Get(%v) = %v; want empty", Sq(rank, file), got)
			}
		}
	}
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	tests := []struct {
		name  string
		sq    string
		piece *Piece
	}{
		// White back rank
		{"white rook a1", "a1", W(Rook)},
		{"white knight b1", "b1", W(Knight)},
		{"white bishop c1", "c1", W(Bishop)},
		{"white queen d1", "d1", W(Queen)},
		{"white king e1", "e1", W(King)},
		{"white rook h1", "h1", W(Rook)},
		// Pawns
		{"white pawn a2", "a2", W(Pawn)},
		{"white pawn h2", "h2", W(Pawn)},
		{"black pawn e7", "e7", B(Pawn)},
		// Black back rank
		{"black rook a8", "a8", B(Rook)},
		{"black queen d8", "d8", B(Queen)},
		{"black king e8", "e8", B(King)},
		// Empty middle
		{"empty e4", "e4", nil},
		{"empty d5", "d5", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Get(MustParseSquare(tt.sq))
			if (got == nil) != (tt.piece == nil) || (got != nil && *got != *tt.piece) {
				t.Errorf("Get(%s) = %v; want %v", tt.sq, got, tt.piece)
			}
		})
	}
}

func TestBoard_SetClearMove(t *testing.T) {
	b := NewBoard()
	e4 := MustParseSquare("e4")
	e5 := MustParseSquare("e5")

	knight := W(Knight)
	b.Set(e4, knight)
	if b.Get(e4) != knight {
		t.Fatalf("Get(e4) did not return the placed piece")
	}

	b.Set(e5, B(Pawn))
	captured := b.Move(e4, e5)
	if captured == nil || *captured != *B(Pawn) {
		t.Errorf("Move(e4, e5) captured %v; want black pawn", captured)
	}
	if !b.IsEmpty(e4) {
		t.Error("origin not empty after Move")
	}
	if b.Get(e5) != knight {
		t.Error("destination does not hold the moved piece")
	}

	b.Clear(e5)
	if !b.IsEmpty(e5) {
		t.Error("Clear(e5) left a piece behind")
	}
}

func TestBoard_OutOfBoundsPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(b *Board)
	}{
		{"get rank 8", func(b *Board) { b.Get(Sq(8, 0)) }},
		{"get file -1", func(b *Board) { b.Get(Sq(0, -1)) }},
		{"set rank -1", func(b *Board) { b.Set(Sq(-1, 3), W(Pawn)) }},
		{"clear file 8", func(b *Board) { b.Clear(Sq(2, 8)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, chesserrors.ErrOutOfBounds) {
					t.Errorf("recovered %v; want ErrOutOfBounds", r)
				}
			}()
			tt.fn(NewBoard())
		})
	}
}

func TestBoard_PieceAtOffBoard(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	if got := b.PieceAt(-1, 0); got != nil {
		t.Errorf("PieceAt(-1, 0) = %v; want nil", got)
	}
	if got := b.PieceAt(0, 8); got != nil {
		t.Errorf("PieceAt(0, 8) = %v; want nil", got)
	}
	if got := b.PieceAt(0, 4); got == nil || got.Type != King {
		t.Errorf("PieceAt(0, 4) = %v; want king", got)
	}
}

func TestBoard_FindKing(t *testing.T) {
	b := NewBoard()
	if _, ok := b.FindKing(White); ok {
		t.Error("FindKing on empty board reported a king")
	}

	b.SetupInitialPosition()
	tests := []struct {
		colour Colour
		want   string
	}{
		{White, "e1"},
		{Black, "e8"},
	}
	for _, tt := range tests {
		sq, ok := b.FindKing(tt.colour)
		if !ok || sq.String() != tt.want {
			t.Errorf("FindKing(%v) = %v, %v; want %s", tt.colour, sq, ok, tt.want)
		}
	}
}

func TestBoard_Occupied(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	if got := len(b.Occupied(White)); got != 16 {
		t.Errorf("len(Occupied(White)) = %d; want 16", got)
	}
	black := b.Occupied(Black)
	if len(black) != 16 {
		t.Fatalf("len(Occupied(Black)) = %d; want 16", len(black))
	}
	if black[0] != MustParseSquare("a7") {
		t.Errorf("Occupied(Black)[0] = %v; want a7", black[0])
	}
}

func TestBoard_Copy(t *testing.T) {
	original := NewBoard()
	original.SetupInitialPosition()
	e2 := MustParseSquare("e2")

	t.Run("shallow copy shares pieces", func(t *testing.T) {
		shallow := original.Copy()
		if shallow.Get(e2) != original.Get(e2) {
			t.Error("shallow copy should share piece identity")
		}
		shallow.Clear(e2)
		if original.IsEmpty(e2) {
			t.Error("clearing a square of the shallow copy emptied the original")
		}
	})

	t.Run("deep copy is independent", func(t *testing.T) {
		deep := original.DeepCopy()
		if !deep.Equal(original) {
			t.Fatal("deep copy differs from the original")
		}
		if deep.Get(e2) == original.Get(e2) {
			t.Error("deep copy should not share piece identity")
		}

		deep.Get(e2).Type = Queen
		deep.Move(MustParseSquare("g1"), MustParseSquare("f3"))
		if original.Get(e2).Type != Pawn {
			t.Error("mutating a deep-copied piece changed the original")
		}
		if original.IsEmpty(MustParseSquare("g1")) {
			t.Error("moving on the deep copy changed the original")
		}
	})
}

func TestPieceFromFEN(t *testing.T) {
	tests := []struct {
		symbol  byte
		want    Piece
		wantErr bool
	}{
		{'K', Piece{King, White}, false},
		{'q', Piece{Queen, Black}, false},
		{'R', Piece{Rook, White}, false},
		{'b', Piece{Bishop, Black}, false},
		{'N', Piece{Knight, White}, false},
		{'p', Piece{Pawn, Black}, false},
		{'x', Piece{}, true},
		{'1', Piece{}, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.symbol), func(t *testing.T) {
			got, err := PieceFromFEN(tt.symbol)
			if (err != nil) != tt.wantErr {
				t.Fatalf("PieceFromFEN(%q) error = %v, wantErr %v", tt.symbol, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrInvalidFEN) {
					t.Errorf("error %v should wrap ErrInvalidFEN", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("PieceFromFEN(%q) = %v; want %v", tt.symbol, got, tt.want)
			}
			if got.Symbol() != tt.symbol {
				t.Errorf("Symbol() = %q; want %q", got.Symbol(), tt.symbol)
			}
		})
	}
}

func TestPieceType_Movement(t *testing.T) {
	tests := []struct {
		pieceType  PieceType
		wantDeltas int
		wantSlides bool
	}{
		{Pawn, 0, false},
		{Knight, 8, false},
		{Bishop, 4, true},
		{Rook, 4, true},
		{Queen, 8, true},
		{King, 8, false},
	}

	for _, tt := range tests {
		t.Run(tt.pieceType.String(), func(t *testing.T) {
			if got := len(tt.pieceType.Deltas()); got != tt.wantDeltas {
				t.Errorf("len(Deltas()) = %d; want %d", got, tt.wantDeltas)
			}
			if got := tt.pieceType.Slides(); got != tt.wantSlides {
				t.Errorf("Slides() = %v; want %v", got, tt.wantSlides)
			}
		})
	}
}

func TestColour(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() is not an involution")
	}
	if White.PawnDirection() != 1 || Black.PawnDirection() != -1 {
		t.Error("PawnDirection() wrong")
	}
	if White.PawnStartRank() != 1 || Black.PawnStartRank() != 6 {
		t.Error("PawnStartRank() wrong")
	}
	if White.PromotionRank() != 7 || Black.PromotionRank() != 0 {
		t.Error("PromotionRank() wrong")
	}
}
