package chess

import "github.com/lgbarn/chessrules-go/internal/errors"

// Board is the 8x8 grid of optional occupants.
type Board struct {
	// Squares[rank][file]; nil means empty.
	Squares [BoardSize][BoardSize]*Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Squares[0][file] = W(backRank[file])
		b.Squares[1][file] = W(Pawn)
		b.Squares[6][file] = B(Pawn)
		b.Squares[7][file] = B(backRank[file])
	}
}

// Get returns the piece on the square, or nil if it is empty.
// Off-board squares are a programming error and panic.
func (b *Board) Get(sq Square) *Piece {
	if !sq.Valid() {
		panic(errors.OutOfBounds(sq.Rank, sq.File))
	}
	return b.Squares[sq.Rank][sq.File]
}

// Set places a piece on the square, replacing any occupant. A nil piece
// clears the square.
func (b *Board) Set(sq Square, piece *Piece) {
	if !sq.Valid() {
		panic(errors.OutOfBounds(sq.Rank, sq.File))
	}
	b.Squares[sq.Rank][sq.File] = piece
}

// Clear empties the square.
func (b *Board) Clear(sq Square) {
	b.Set(sq, nil)
}

// IsEmpty reports whether the square holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Get(sq) == nil
}

// PieceAt returns the piece at the given indices, or nil if the square is
// empty or off the board.
func (b *Board) PieceAt(rank, file int) *Piece {
	if rank < 0 || rank >= BoardSize || file < 0 || file >= BoardSize {
		return nil
	}
	return b.Squares[rank][file]
}

// Move relocates the occupant of from to to and returns whatever was on to.
func (b *Board) Move(from, to Square) *Piece {
	piece := b.Get(from)
	captured := b.Get(to)
	b.Clear(from)
	b.Set(to, piece)
	return captured
}

// FindKing returns the square of the king of the given colour.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			p := b.Squares[rank][file]
			if p != nil && p.Type == King && p.Colour == colour {
				return Square{rank, file}, true
			}
		}
	}
	return Square{}, false
}

// Occupied returns the squares holding pieces of the given colour, in
// rank-then-file order.
func (b *Board) Occupied(colour Colour) []Square {
	squares := make([]Square, 0, 16)
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if p := b.Squares[rank][file]; p != nil && p.Colour == colour {
				squares = append(squares, Square{rank, file})
			}
		}
	}
	return squares
}

// Copy creates a shallow copy of the board: the grid is new but the pieces
// are shared with the original.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// DeepCopy creates a wholly independent board with fresh piece values.
// Mutating either board, or any piece on it, never affects the other.
func (b *Board) DeepCopy() *Board {
	newBoard := &Board{}
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if p := b.Squares[rank][file]; p != nil {
				clone := *p
				newBoard.Squares[rank][file] = &clone
			}
		}
	}
	return newBoard
}

// Equal reports whether two boards hold the same piece types and colours on
// every square.
func (b *Board) Equal(other *Board) bool {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			p, q := b.Squares[rank][file], other.Squares[rank][file]
			if (p == nil) != (q == nil) {
				return false
			}
			if p != nil && *p != *q {
				return false
			}
		}
	}
	return true
}
