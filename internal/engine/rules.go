package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// GameStatus is the status of a position for the side to move.
type GameStatus int

const (
	Playing GameStatus = iota
	Check
	Checkmate
	Stalemate
)

// String returns the lowercase name of the status.
func (s GameStatus) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "playing"
	}
}

// IsOver reports whether no further moves can be made.
func (s GameStatus) IsOver() bool {
	return s == Checkmate || s == Stalemate
}

// GetGameStatus derives the status of the side to move: checkmate when in
// check without a legal move, stalemate when not in check without one, check
// when in check with one, and playing otherwise.
func GetGameStatus(board *chess.Board, state *chess.GameState) GameStatus {
	inCheck := IsSideToMoveInCheck(board, state)
	hasMoves := HasLegalMoves(board, state)

	switch {
	case inCheck && !hasMoves:
		return Checkmate
	case !hasMoves:
		return Stalemate
	case inCheck:
		return Check
	default:
		return Playing
	}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board, state *chess.GameState) bool {
	return GetGameStatus(board, state) == Checkmate
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board, state *chess.GameState) bool {
	return GetGameStatus(board, state) == Stalemate
}
