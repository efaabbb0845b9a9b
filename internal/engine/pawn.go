package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnMoves generates pseudo-legal moves for the pawn on from: single and
// double pushes, diagonal captures, en passant and promotion fan-out.
func pawnMoves(board *chess.Board, state *chess.GameState, from chess.Square, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	dir := colour.PawnDirection()

	one := from.Offset(dir, 0)
	if one.Valid() && board.IsEmpty(one) {
		moves = appendPawnMove(moves, from, one, colour)
		if from.Rank == colour.PawnStartRank() {
			two := from.Offset(2*dir, 0)
			if board.IsEmpty(two) {
				moves = append(moves, chess.NewSpecialMove(from, two, chess.DoublePawnPush))
			}
		}
	}

	for _, df := range []int{-1, 1} {
		to := from.Offset(dir, df)
		if !to.Valid() {
			continue
		}
		if target := board.Get(to); target != nil && target.Colour != colour {
			moves = appendPawnMove(moves, from, to, colour)
		}
	}

	if ep, ok := enPassantCapture(board, state, from, colour); ok {
		moves = append(moves, ep)
	}

	return moves
}

// appendPawnMove adds a pawn move, expanding it into one move per promotion
// piece when it reaches the last rank.
func appendPawnMove(moves []chess.Move, from, to chess.Square, colour chess.Colour) []chess.Move {
	if to.Rank != colour.PromotionRank() {
		return append(moves, chess.NewMove(from, to))
	}
	for _, pt := range chess.PromotionPieces {
		moves = append(moves, chess.Move{From: from, To: to, Promotion: pt})
	}
	return moves
}

// enPassantCapture returns the en passant capture for the pawn on from, if
// the target square is diagonally ahead of it and an enemy pawn stands
// beside it on the target's file.
func enPassantCapture(board *chess.Board, state *chess.GameState, from chess.Square, colour chess.Colour) (chess.Move, bool) {
	ep := state.EnPassant
	if ep == nil || !ep.Valid() {
		return chess.Move{}, false
	}
	if ep.Rank != from.Rank+colour.PawnDirection() || abs(ep.File-from.File) != 1 {
		return chess.Move{}, false
	}
	victim := board.Get(chess.Sq(from.Rank, ep.File))
	if victim == nil || victim.Type != chess.Pawn || victim.Colour == colour {
		return chess.Move{}, false
	}
	return chess.NewSpecialMove(from, *ep, chess.EnPassant), true
}
