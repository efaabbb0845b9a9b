package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MoveClass categorizes special moves. The classes are mutually exclusive.
type MoveClass int

const (
	NormalMove MoveClass = iota
	Castle
	EnPassant
	DoublePawnPush
)

// String returns the string representation of a move class.
func (c MoveClass) String() string {
	switch c {
	case Castle:
		return "castle"
	case EnPassant:
		return "en passant"
	case DoublePawnPush:
		return "double pawn push"
	default:
		return "normal"
	}
}

// Move describes one ply. It is a comparable value.
type Move struct {
	From Square
	To   Square

	// Piece type a pawn promotes to; NoPieceType when not a promotion.
	Promotion PieceType

	Class MoveClass
}

// NewMove creates an ordinary move.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// NewSpecialMove creates a castle, en passant or double pawn push.
func NewSpecialMove(from, to Square, class MoveClass) Move {
	return Move{From: from, To: to, Class: class}
}

// NewPromotion creates a promotion to the piece named by letter, which must
// be one of Q, R, B or N in either case. The destination must be on the
// first or last rank.
func NewPromotion(from, to Square, letter byte) (Move, error) {
	pieceType := PieceTypeFromLetter(letter)
	if !isPromotionPiece(pieceType) {
		return Move{}, fmt.Errorf("promotion piece %q: %w", letter, errors.ErrInvalidArgument)
	}
	if to.Rank != White.PromotionRank() && to.Rank != Black.PromotionRank() {
		return Move{}, fmt.Errorf("promotion to %s: %w", to, errors.ErrInvalidArgument)
	}
	return Move{From: from, To: to, Promotion: pieceType}, nil
}

func isPromotionPiece(pieceType PieceType) bool {
	for _, p := range PromotionPieces {
		if p == pieceType {
			return true
		}
	}
	return false
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPieceType
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Class == Castle
}

// IsEnPassant returns true if this move captures en passant.
func (m Move) IsEnPassant() bool {
	return m.Class == EnPassant
}

// IsDoublePawnPush returns true if this is a two-square pawn advance.
func (m Move) IsDoublePawnPush() bool {
	return m.Class == DoublePawnPush
}

// IsKingside reports whether a castling move goes towards the h-file.
func (m Move) IsKingside() bool {
	return m.To.File > m.From.File
}

// String returns the UCI form of the move, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += strings.ToLower(string(m.Promotion.Letter()))
	}
	return s
}

// ParseMove reads UCI text into a move carrying endpoints and promotion only.
// The class of the move is not knowable from text and is left as NormalMove;
// resolve it against the legal move list.
func ParseMove(text string) (Move, error) {
	text = strings.TrimSpace(text)
	if len(text) < 4 || len(text) > 5 {
		return Move{}, fmt.Errorf("move %q: expected 4 or 5 characters: %w", text, errors.ErrInvalidArgument)
	}
	from, err := ParseSquare(text[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidArgument)
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidArgument)
	}
	if len(text) == 5 {
		return NewPromotion(from, to, text[4])
	}
	return NewMove(from, to), nil
}

// Undo is the record produced by applying a move. Passing it back with the
// same move restores the board and state exactly.
type Undo struct {
	// The piece removed by the move, if any, and where it stood. For en
	// passant the square differs from the move's destination.
	Captured       *Piece
	CapturedSquare Square

	// Rook displacement for castling; nil otherwise.
	RookFrom *Square
	RookTo   *Square

	PrevCastling      CastlingRights
	PrevEnPassant     *Square
	PrevHalfmoveClock int
}
