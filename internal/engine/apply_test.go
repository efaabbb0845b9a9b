package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// findMove resolves UCI text against the legal moves of the position.
func findMove(t testing.TB, board *chess.Board, state *chess.GameState, text string) chess.Move {
	t.Helper()
	parsed, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("ParseMove(%q) error: %v", text, err)
	}
	for _, m := range LegalMoves(board, state, &parsed.From) {
		if m.To == parsed.To && m.Promotion == parsed.Promotion {
			return m
		}
	}
	t.Fatalf("move %s is not legal in %s", text, ToFEN(board, state))
	return chess.Move{}
}

// play applies a sequence of UCI moves.
func play(t testing.TB, board *chess.Board, state *chess.GameState, moves ...string) {
	t.Helper()
	for _, text := range moves {
		if _, err := ApplyMove(board, state, findMove(t, board, state, text)); err != nil {
			t.Fatalf("ApplyMove(%s) error: %v", text, err)
		}
	}
}

func TestApplyMove(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		moves   []string
		wantFEN string
	}{
		{
			name:    "double pawn push sets en passant",
			fen:     InitialFEN,
			moves:   []string{"e2e4"},
			wantFEN: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name:    "black reply bumps fullmove",
			fen:     InitialFEN,
			moves:   []string{"e2e4", "c7c5"},
			wantFEN: "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
		},
		{
			name:    "piece move advances halfmove clock and clears en passant",
			fen:     InitialFEN,
			moves:   []string{"e2e4", "c7c5", "g1f3"},
			wantFEN: "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2",
		},
		{
			name:    "capture resets halfmove clock",
			fen:     "4k3/8/8/3p4/8/8/8/3RK3 w - - 7 30",
			moves:   []string{"d1d5"},
			wantFEN: "4k3/8/8/3R4/8/8/8/4K3 b - - 0 30",
		},
		{
			name:    "en passant removes the passed pawn",
			fen:     "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
			moves:   []string{"e5f6"},
			wantFEN: "rnbqkbnr/ppp1p1pp/5P2/3p4/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 3",
		},
		{
			name:    "black en passant",
			fen:     "4k3/8/8/8/3Pp3/8/8/4K3 b - d3 0 1",
			moves:   []string{"e4d3"},
			wantFEN: "4k3/8/8/8/8/3p4/8/4K3 w - - 0 2",
		},
		{
			name:    "white kingside castle",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 3 10",
			moves:   []string{"e1g1"},
			wantFEN: "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 4 10",
		},
		{
			name:    "white queenside castle",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves:   []string{"e1c1"},
			wantFEN: "r3k2r/8/8/8/8/8/8/2KR3R b kq - 1 1",
		},
		{
			name:    "black kingside castle",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			moves:   []string{"e8g8"},
			wantFEN: "r4rk1/8/8/8/8/8/8/R3K2R w KQ - 1 2",
		},
		{
			name:    "black queenside castle",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			moves:   []string{"e8c8"},
			wantFEN: "2kr3r/8/8/8/8/8/8/R3K2R w KQ - 1 2",
		},
		{
			name:    "rook leaving its corner drops one right",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves:   []string{"a1a4"},
			wantFEN: "r3k2r/8/8/8/R7/8/8/4K2R b Kkq - 1 1",
		},
		{
			name:    "king move drops both rights",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves:   []string{"e1f1"},
			wantFEN: "r3k2r/8/8/8/8/8/8/R4K1R b kq - 1 1",
		},
		{
			name:    "capturing a rook on its corner drops the victim's right",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves:   []string{"h1h8"},
			wantFEN: "r3k2R/8/8/8/8/8/8/R3K3 b Qq - 0 1",
		},
		{
			name:    "promotion to queen",
			fen:     "8/4P3/8/8/8/8/k7/4K3 w - - 0 1",
			moves:   []string{"e7e8q"},
			wantFEN: "4Q3/8/8/8/8/8/k7/4K3 b - - 0 1",
		},
		{
			name:    "capture promotion to knight",
			fen:     "3r4/4P3/8/8/8/8/k7/4K3 w - - 0 1",
			moves:   []string{"e7d8n"},
			wantFEN: "3N4/8/8/8/8/8/k7/4K3 b - - 0 1",
		},
		{
			name:    "black promotion",
			fen:     "4k3/8/8/8/8/8/3p4/K7 b - - 0 1",
			moves:   []string{"d2d1r"},
			wantFEN: "4k3/8/8/8/8/8/8/K2r4 w - - 0 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, state := mustPosition(t, tt.fen)
			play(t, board, state, tt.moves...)
			if got := ToFEN(board, state); got != tt.wantFEN {
				t.Errorf("ToFEN() after %v = %q, want %q", tt.moves, got, tt.wantFEN)
			}
		})
	}
}

func TestApplyMove_UndoRecord(t *testing.T) {
	board, state := mustPosition(t, "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
	move := findMove(t, board, state, "e5f6")
	if !move.IsEnPassant() {
		t.Fatalf("move %s class = %v, want en passant", move, move.Class)
	}

	undo, err := ApplyMove(board, state, move)
	if err != nil {
		t.Fatalf("ApplyMove() error: %v", err)
	}
	if undo.Captured == nil || *undo.Captured != *chess.B(chess.Pawn) {
		t.Errorf("Undo.Captured = %v, want black pawn", undo.Captured)
	}
	if want := sq("f5"); undo.CapturedSquare != want {
		t.Errorf("Undo.CapturedSquare = %v, want %v", undo.CapturedSquare, want)
	}
	if undo.PrevEnPassant == nil || *undo.PrevEnPassant != sq("f6") {
		t.Errorf("Undo.PrevEnPassant = %v, want f6", undo.PrevEnPassant)
	}
	if undo.RookFrom != nil || undo.RookTo != nil {
		t.Errorf("Undo rook squares set for a non-castling move")
	}
}

func TestApplyMove_CastleRecord(t *testing.T) {
	board, state := mustPosition(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	undo, err := ApplyMove(board, state, findMove(t, board, state, "e1c1"))
	if err != nil {
		t.Fatalf("ApplyMove() error: %v", err)
	}
	if undo.RookFrom == nil || *undo.RookFrom != sq("a1") {
		t.Errorf("Undo.RookFrom = %v, want a1", undo.RookFrom)
	}
	if undo.RookTo == nil || *undo.RookTo != sq("d1") {
		t.Errorf("Undo.RookTo = %v, want d1", undo.RookTo)
	}
	if undo.PrevCastling != chess.AllCastlingRights {
		t.Errorf("Undo.PrevCastling = %v, want KQkq", undo.PrevCastling)
	}
}

func TestApplyMove_EmptyOrigin(t *testing.T) {
	board, state := mustPosition(t, InitialFEN)
	before := ToFEN(board, state)

	_, err := ApplyMove(board, state, chess.NewMove(sq("e4"), sq("e5")))
	if !errors.Is(err, errors.ErrIllegalState) {
		t.Fatalf("ApplyMove() error = %v, want ErrIllegalState", err)
	}
	if got := ToFEN(board, state); got != before {
		t.Errorf("position changed on failed apply: %q, want %q", got, before)
	}
}

func TestUndoMove_EmptyDestination(t *testing.T) {
	board, state := mustPosition(t, InitialFEN)
	err := UndoMove(board, state, chess.NewMove(sq("e2"), sq("e4")), chess.Undo{})
	if !errors.Is(err, errors.ErrIllegalState) {
		t.Fatalf("UndoMove() error = %v, want ErrIllegalState", err)
	}
	if got := ToFEN(board, state); got != InitialFEN {
		t.Errorf("position changed on failed undo: %q", got)
	}
}

func TestUndoMove_CastleWithoutRook(t *testing.T) {
	board, state := mustPosition(t, "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1")
	move := chess.NewSpecialMove(sq("e1"), sq("g1"), chess.Castle)
	if err := UndoMove(board, state, move, chess.Undo{}); !errors.Is(err, errors.ErrIllegalState) {
		t.Fatalf("UndoMove() error = %v, want ErrIllegalState", err)
	}
}

// Every legal move, applied and undone, must restore board and state exactly.
func TestApplyUndo_RestoresPosition(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"r2q1rk1/pP1p2pp/Q4n2/bbp1p3/Np6/1B3NBn/pPPP1PPP/R3K2R b KQ - 0 1",
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			board, state := mustPosition(t, fen)
			for _, m := range LegalMoves(board, state, nil) {
				wantBoard := board.DeepCopy()
				wantState := state.Copy()

				undo, err := ApplyMove(board, state, m)
				if err != nil {
					t.Fatalf("ApplyMove(%s) error: %v", m, err)
				}
				if err := UndoMove(board, state, m, undo); err != nil {
					t.Fatalf("UndoMove(%s) error: %v", m, err)
				}

				if diff := cmp.Diff(wantBoard, board); diff != "" {
					t.Errorf("board after %s apply/undo mismatch (-want +got):\n%s", m, diff)
				}
				if diff := cmp.Diff(wantState, state); diff != "" {
					t.Errorf("state after %s apply/undo mismatch (-want +got):\n%s", m, diff)
				}
			}
		})
	}
}

func TestApplyUndo_PieceIdentity(t *testing.T) {
	board, state := mustPosition(t, "4k3/8/8/3p4/8/8/8/3RK3 w - - 0 1")
	rook := board.Get(sq("d1"))
	pawn := board.Get(sq("d5"))

	move := findMove(t, board, state, "d1d5")
	undo, err := ApplyMove(board, state, move)
	if err != nil {
		t.Fatalf("ApplyMove() error: %v", err)
	}
	if board.Get(sq("d5")) != rook {
		t.Errorf("moved piece identity not preserved")
	}
	if err := UndoMove(board, state, move, undo); err != nil {
		t.Fatalf("UndoMove() error: %v", err)
	}
	if board.Get(sq("d1")) != rook || board.Get(sq("d5")) != pawn {
		t.Errorf("piece identities not restored by undo")
	}
}
