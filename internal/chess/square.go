package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Square addresses one cell of the board. Rank 0 is White's back rank and
// file 0 is the a-file, so a1 = {0, 0} and h8 = {7, 7}.
type Square struct {
	Rank int
	File int
}

// Sq builds a square from rank and file indices.
func Sq(rank, file int) Square {
	return Square{Rank: rank, File: file}
}

// Valid reports whether the square lies on the 8x8 grid.
func (s Square) Valid() bool {
	return s.Rank >= 0 && s.Rank < BoardSize && s.File >= 0 && s.File < BoardSize
}

// Offset returns the square shifted by dr ranks and df files.
// The result may be off the board.
func (s Square) Offset(dr, df int) Square {
	return Square{Rank: s.Rank + dr, File: s.File + df}
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Rank, s.File)
	}
	return string([]byte{byte(FileBase + s.File), byte(RankBase + s.Rank)})
}

// ParseSquare converts an algebraic square such as "e3" into a Square.
// The file letter is accepted in either case.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, errors.NewFormatError("square", text, "must be two characters")
	}
	file := text[0]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	rank := text[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, errors.NewFormatError("square", text, "not on the board")
	}
	return Square{Rank: int(rank - RankBase), File: int(file - FileBase)}, nil
}

// MustParseSquare is like ParseSquare but panics on error. It is meant for
// constants and tests.
func MustParseSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}
