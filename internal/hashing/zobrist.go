package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// zobristSeed fixes the key tables so keys are stable across runs.
const zobristSeed = 0xC4E55

// zobristKeys holds one key per (colour, piece type, square) plus side to
// move, castling rights set and en passant file.
type zobristKeys struct {
	piece    [2][chess.King + 1][chess.BoardSize * chess.BoardSize]uint64
	black    uint64
	castling [16]uint64
	epFile   [chess.BoardSize]uint64
}

var keys = newZobristKeys(zobristSeed)

func newZobristKeys(seed int64) *zobristKeys {
	rnd := rand.New(rand.NewSource(seed))
	k := &zobristKeys{}
	for c := range k.piece {
		for pt := chess.Pawn; pt <= chess.King; pt++ {
			for sq := range k.piece[c][pt] {
				k.piece[c][pt][sq] = rnd.Uint64()
			}
		}
	}
	k.black = rnd.Uint64()
	for i := range k.castling {
		k.castling[i] = rnd.Uint64()
	}
	for i := range k.epFile {
		k.epFile[i] = rnd.Uint64()
	}
	return k
}

// GenerateZobristHash computes the Zobrist key of a position. Two positions
// with the same placement, side to move, castling rights and en passant file
// share a key.
func GenerateZobristHash(board *chess.Board, state *chess.GameState) uint64 {
	hash := PlacementHash(board)
	if state == nil {
		return hash
	}
	if state.ToMove == chess.Black {
		hash ^= keys.black
	}
	hash ^= keys.castling[state.Castling&0x0F]
	if state.EnPassant != nil && state.EnPassant.Valid() {
		hash ^= keys.epFile[state.EnPassant.File]
	}
	return hash
}

// PlacementHash computes the key of the piece placement alone.
func PlacementHash(board *chess.Board) uint64 {
	var hash uint64
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			p := board.Squares[rank][file]
			if p == nil || p.Type < chess.Pawn || p.Type > chess.King {
				continue
			}
			hash ^= keys.piece[p.Colour][p.Type][rank*chess.BoardSize+file]
		}
	}
	return hash
}
