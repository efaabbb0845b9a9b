package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// PseudoLegalMoves returns the moves of the side to move that obey piece
// movement, ignoring whether they leave the own king attacked. With a non-nil
// from only that square's piece is considered.
func PseudoLegalMoves(board *chess.Board, state *chess.GameState, from *chess.Square) []chess.Move {
	colour := state.ToMove
	var moves []chess.Move
	for _, sq := range board.Occupied(colour) {
		if from != nil && sq != *from {
			continue
		}
		moves = append(moves, pseudoLegalMovesFrom(board, state, sq)...)
	}
	return moves
}

// pseudoLegalMovesFrom dispatches on the type of the piece on sq.
func pseudoLegalMovesFrom(board *chess.Board, state *chess.GameState, sq chess.Square) []chess.Move {
	piece := board.Get(sq)
	switch piece.Type {
	case chess.Pawn:
		return pawnMoves(board, state, sq, piece.Colour)
	case chess.King:
		return append(pieceMoves(board, sq, piece), castlingMoves(board, state, sq)...)
	default:
		return pieceMoves(board, sq, piece)
	}
}

// LegalMoves returns the moves of the side to move that do not leave its own
// king attacked. With a non-nil from only moves starting there are returned;
// a square not holding a piece of the side to move yields none.
func LegalMoves(board *chess.Board, state *chess.GameState, from *chess.Square) []chess.Move {
	pseudo := PseudoLegalMoves(board, state, from)
	legal := make([]chess.Move, 0, len(pseudo))
	for _, m := range pseudo {
		if leavesKingSafe(board, state, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(board *chess.Board, state *chess.GameState) bool {
	for _, m := range PseudoLegalMoves(board, state, nil) {
		if leavesKingSafe(board, state, m) {
			return true
		}
	}
	return false
}

// IsLegal reports whether the move is among the legal moves of the position.
func IsLegal(board *chess.Board, state *chess.GameState, move chess.Move) bool {
	from := move.From
	for _, m := range LegalMoves(board, state, &from) {
		if m == move {
			return true
		}
	}
	return false
}

// leavesKingSafe plays the move on an independent copy of the position and
// reports whether the mover's king is unattacked afterwards. A side with no
// king on the board has no legal moves.
func leavesKingSafe(board *chess.Board, state *chess.GameState, move chess.Move) bool {
	colour := state.ToMove
	b := board.DeepCopy()
	s := state.Copy()
	if _, err := ApplyMove(b, s, move); err != nil {
		return false
	}
	king, ok := b.FindKing(colour)
	if !ok {
		return false
	}
	return !SquareAttackedBy(b, king, colour.Opposite(), nil)
}
