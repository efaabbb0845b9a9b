package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree to the given depth.
// The position is walked in place with ApplyMove and UndoMove and is left
// unchanged on return. A failure to apply or undo a generated move means the
// generator and the engine disagree, and panics.
func Perft(board *chess.Board, state *chess.GameState, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(board, state, nil)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += perftChild(board, state, m, depth-1)
	}
	return nodes
}

// Divide returns, for each legal root move in UCI form, the perft count of
// the position after it.
func Divide(board *chess.Board, state *chess.GameState, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range LegalMoves(board, state, nil) {
		result[m.String()] = perftChild(board, state, m, depth-1)
	}
	return result
}

func perftChild(board *chess.Board, state *chess.GameState, move chess.Move, depth int) uint64 {
	undo, err := ApplyMove(board, state, move)
	if err != nil {
		panic(err)
	}
	nodes := Perft(board, state, depth)
	if err := UndoMove(board, state, move, undo); err != nil {
		panic(err)
	}
	return nodes
}
