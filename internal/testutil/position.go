package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Well-known positions used across tests.
const (
	KiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	ScholarsMate = "r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4"
	StalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
	QueenCheck   = "4k3/8/8/4q3/8/8/8/4K3 w - - 0 1"
)

// MustPosition parses a FEN string.
// It calls t.Fatal if the FEN is rejected.
func MustPosition(t testing.TB, fen string) (*chess.Board, *chess.GameState) {
	t.Helper()
	board, state, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("failed to parse FEN %q: %v", fen, err)
	}
	return board, state
}

// MustPlay applies UCI moves to the position, resolving each against the
// legal moves. It calls t.Fatal on the first move that is not legal.
func MustPlay(t testing.TB, board *chess.Board, state *chess.GameState, moves ...string) {
	t.Helper()
	for _, text := range moves {
		move := MustFindMove(t, board, state, text)
		if _, err := engine.ApplyMove(board, state, move); err != nil {
			t.Fatalf("ApplyMove(%s) failed: %v", text, err)
		}
	}
}

// MustFindMove returns the legal move matching the UCI text.
func MustFindMove(t testing.TB, board *chess.Board, state *chess.GameState, text string) chess.Move {
	t.Helper()
	parsed, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("failed to parse move %q: %v", text, err)
	}
	for _, m := range engine.LegalMoves(board, state, &parsed.From) {
		if m.To == parsed.To && m.Promotion == parsed.Promotion {
			return m
		}
	}
	t.Fatalf("move %s is not legal in %s", text, engine.ToFEN(board, state))
	return chess.Move{}
}

// MoveStrings returns the UCI text of each move, in order.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}
