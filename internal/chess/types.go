// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PawnDirection returns +1 for White, -1 for Black.
func (c Colour) PawnDirection() int {
	if c == White {
		return 1
	}
	return -1
}

// PawnStartRank returns the rank index pawns of this colour start on.
func (c Colour) PawnStartRank() int {
	if c == White {
		return 1
	}
	return 6
}

// PromotionRank returns the rank index on which pawns of this colour promote.
func (c Colour) PromotionRank() int {
	if c == White {
		return BoardSize - 1
	}
	return 0
}

// BackRank returns the rank index of this colour's home rank.
func (c Colour) BackRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PieceType represents a chess piece type.
type PieceType int

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Delta is a (rank, file) step.
type Delta struct {
	Rank, File int
}

var (
	knightDeltas = []Delta{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	diagonalDeltas = []Delta{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDeltas = []Delta{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	royalDeltas    = []Delta{
		{-1, -1}, {-1, 0}, {-1, 1}, {0, -1},
		{0, 1}, {1, -1}, {1, 0}, {1, 1},
	}
)

// movement is the per-type dispatch table. Pawns have no fixed deltas; their
// direction and start rank come from their colour.
var movement = map[PieceType]struct {
	deltas []Delta
	slides bool
}{
	Pawn:   {nil, false},
	Knight: {knightDeltas, false},
	Bishop: {diagonalDeltas, true},
	Rook:   {straightDeltas, true},
	Queen:  {royalDeltas, true},
	King:   {royalDeltas, false},
}

// Deltas returns the movement deltas of a piece type.
func (p PieceType) Deltas() []Delta {
	return movement[p].deltas
}

// Slides reports whether the piece type walks its deltas as rays.
func (p PieceType) Slides() bool {
	return movement[p].slides
}

// DiagonalDeltas returns the four diagonal directions.
func DiagonalDeltas() []Delta { return diagonalDeltas }

// StraightDeltas returns the four orthogonal directions.
func StraightDeltas() []Delta { return straightDeltas }

// PromotionPieces lists the piece types a pawn may promote to, in fan-out order.
var PromotionPieces = []PieceType{Queen, Rook, Bishop, Knight}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	FileBase = 'a'
)
