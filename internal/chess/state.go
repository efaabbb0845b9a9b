package chess

// CastlingRight is one of the four castling options.
type CastlingRight uint8

const (
	WhiteKingside CastlingRight = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// CastlingRights is the set of castling options still structurally available.
type CastlingRights uint8

// AllCastlingRights holds every castling option.
const AllCastlingRights = CastlingRights(WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside)

// castlingLetters pairs each right with its FEN letter, in canonical order.
var castlingLetters = []struct {
	right  CastlingRight
	letter byte
}{
	{WhiteKingside, 'K'},
	{WhiteQueenside, 'Q'},
	{BlackKingside, 'k'},
	{BlackQueenside, 'q'},
}

// Has reports whether the right is present.
func (c CastlingRights) Has(right CastlingRight) bool {
	return uint8(c)&uint8(right) != 0
}

// Add returns the set with the right added.
func (c CastlingRights) Add(right CastlingRight) CastlingRights {
	return c | CastlingRights(right)
}

// Remove returns the set with the right removed.
func (c CastlingRights) Remove(right CastlingRight) CastlingRights {
	return c &^ CastlingRights(right)
}

// RemoveColour returns the set without either right of the colour.
func (c CastlingRights) RemoveColour(colour Colour) CastlingRights {
	return c.Remove(KingsideRight(colour)).Remove(QueensideRight(colour))
}

// String renders the rights in canonical "KQkq" order, or "-" when empty.
func (c CastlingRights) String() string {
	var out []byte
	for _, cl := range castlingLetters {
		if c.Has(cl.right) {
			out = append(out, cl.letter)
		}
	}
	if len(out) == 0 {
		return "-"
	}
	return string(out)
}

// ParseCastlingRights reads a FEN castling field. Characters outside "KQkq"
// are dropped rather than rejected.
func ParseCastlingRights(field string) CastlingRights {
	var rights CastlingRights
	if field == "-" {
		return rights
	}
	for i := 0; i < len(field); i++ {
		for _, cl := range castlingLetters {
			if field[i] == cl.letter {
				rights = rights.Add(cl.right)
			}
		}
	}
	return rights
}

// KingsideRight returns the kingside right of the colour.
func KingsideRight(colour Colour) CastlingRight {
	if colour == White {
		return WhiteKingside
	}
	return BlackKingside
}

// QueensideRight returns the queenside right of the colour.
func QueensideRight(colour Colour) CastlingRight {
	if colour == White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// Castling geometry on files indexed 0-7.
const (
	KingFile          = 4
	KingsideRookFile  = 7
	QueensideRookFile = 0
	KingsideKingTo    = 6
	KingsideRookTo    = 5
	QueensideKingTo   = 2
	QueensideRookTo   = 3
)

// GameState holds everything about a position that is not piece placement.
type GameState struct {
	// Who has the next move.
	ToMove Colour

	// Remaining castling options.
	Castling CastlingRights

	// The square passed over by the last double pawn push, if any.
	EnPassant *Square

	// Plies since the last pawn move or capture.
	HalfmoveClock int

	// Starts at 1 and increments after Black moves.
	FullmoveNumber int
}

// NewGameState returns the state of a fresh game: White to move, all rights.
func NewGameState() *GameState {
	return &GameState{
		ToMove:         White,
		Castling:       AllCastlingRights,
		FullmoveNumber: 1,
	}
}

// Copy returns an independent copy of the state.
func (s *GameState) Copy() *GameState {
	c := *s
	if s.EnPassant != nil {
		ep := *s.EnPassant
		c.EnPassant = &ep
	}
	return &c
}
