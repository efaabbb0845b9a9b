package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// castleRookSquares returns the rook's origin and destination for a castling
// king move.
func castleRookSquares(move chess.Move) (chess.Square, chess.Square) {
	rank := move.From.Rank
	if move.IsKingside() {
		return chess.Sq(rank, chess.KingsideRookFile), chess.Sq(rank, chess.KingsideRookTo)
	}
	return chess.Sq(rank, chess.QueensideRookFile), chess.Sq(rank, chess.QueensideRookTo)
}

// updateCastlingRights removes the rights invalidated by a move. Moving the
// king drops both of its rights; a rook leaving or being captured on its
// corner drops the matching one.
func updateCastlingRights(state *chess.GameState, mover *chess.Piece, move chess.Move, captured *chess.Piece) {
	if mover.Type == chess.King {
		state.Castling = state.Castling.RemoveColour(mover.Colour)
	}
	if mover.Type == chess.Rook {
		removeCornerRight(state, mover.Colour, move.From)
	}
	if captured != nil && captured.Type == chess.Rook {
		removeCornerRight(state, captured.Colour, move.To)
	}
}

// removeCornerRight drops the right tied to a rook corner of the colour.
func removeCornerRight(state *chess.GameState, colour chess.Colour, sq chess.Square) {
	if sq.Rank != colour.BackRank() {
		return
	}
	switch sq.File {
	case chess.KingsideRookFile:
		state.Castling = state.Castling.Remove(chess.KingsideRight(colour))
	case chess.QueensideRookFile:
		state.Castling = state.Castling.Remove(chess.QueensideRight(colour))
	}
}

// castlingMoves generates the castling moves available to the king on from.
// The king must stand on its home square with the right intact, the squares
// between king and rook empty, and none of the squares the king starts on,
// crosses or lands on attacked.
func castlingMoves(board *chess.Board, state *chess.GameState, from chess.Square) []chess.Move {
	colour := state.ToMove
	home := chess.Sq(colour.BackRank(), chess.KingFile)
	if from != home {
		return nil
	}
	enemy := colour.Opposite()
	rank := home.Rank

	var moves []chess.Move

	if state.Castling.Has(chess.KingsideRight(colour)) &&
		hasOwnRook(board, chess.Sq(rank, chess.KingsideRookFile), colour) &&
		emptyFiles(board, rank, chess.KingsideRookTo, chess.KingsideKingTo) &&
		!anyAttacked(board, rank, enemy, chess.KingFile, chess.KingsideRookTo, chess.KingsideKingTo) {
		moves = append(moves, chess.NewSpecialMove(from, chess.Sq(rank, chess.KingsideKingTo), chess.Castle))
	}

	if state.Castling.Has(chess.QueensideRight(colour)) &&
		hasOwnRook(board, chess.Sq(rank, chess.QueensideRookFile), colour) &&
		emptyFiles(board, rank, 1, chess.QueensideKingTo, chess.QueensideRookTo) &&
		!anyAttacked(board, rank, enemy, chess.KingFile, chess.QueensideRookTo, chess.QueensideKingTo) {
		moves = append(moves, chess.NewSpecialMove(from, chess.Sq(rank, chess.QueensideKingTo), chess.Castle))
	}

	return moves
}

func hasOwnRook(board *chess.Board, sq chess.Square, colour chess.Colour) bool {
	p := board.Get(sq)
	return p != nil && p.Type == chess.Rook && p.Colour == colour
}

func emptyFiles(board *chess.Board, rank int, files ...int) bool {
	for _, f := range files {
		if !board.IsEmpty(chess.Sq(rank, f)) {
			return false
		}
	}
	return true
}

func anyAttacked(board *chess.Board, rank int, by chess.Colour, files ...int) bool {
	for _, f := range files {
		if SquareAttackedBy(board, chess.Sq(rank, f), by, nil) {
			return true
		}
	}
	return false
}
