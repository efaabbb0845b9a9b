package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Piece is a coloured piece. It does not record its square: the board slot
// that owns it is the only source of position.
type Piece struct {
	Type   PieceType
	Colour Colour
}

// NewPiece returns a pointer to a fresh piece of the given colour and type.
func NewPiece(colour Colour, pieceType PieceType) *Piece {
	return &Piece{Type: pieceType, Colour: colour}
}

// W creates a white piece.
func W(pieceType PieceType) *Piece {
	return NewPiece(White, pieceType)
}

// B creates a black piece.
func B(pieceType PieceType) *Piece {
	return NewPiece(Black, pieceType)
}

// Symbol returns the FEN letter for the piece: uppercase for White.
func (p Piece) Symbol() byte {
	letter := p.Type.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	return fmt.Sprintf("%s %s", p.Colour, p.Type)
}

// PieceTypeFromLetter maps a case-insensitive piece letter to its type.
// It returns NoPieceType for anything else.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'P', 'p':
		return Pawn
	default:
		return NoPieceType
	}
}

// PieceFromFEN maps a single case-coded FEN symbol to a piece.
// Uppercase is White, lowercase is Black.
func PieceFromFEN(symbol byte) (Piece, error) {
	pieceType := PieceTypeFromLetter(symbol)
	if pieceType == NoPieceType {
		return Piece{}, errors.NewFormatError("piece", string(symbol), "unknown piece symbol")
	}
	colour := White
	if symbol >= 'a' && symbol <= 'z' {
		colour = Black
	}
	return Piece{Type: pieceType, Colour: colour}, nil
}
