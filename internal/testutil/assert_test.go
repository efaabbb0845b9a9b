package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// recorder captures failures instead of failing the enclosing test.
type recorder struct {
	testing.TB
	failures []string
}

func (r *recorder) Helper() {}

func (r *recorder) Error(args ...interface{}) {
	r.failures = append(r.failures, fmt.Sprint(args...))
}

func (r *recorder) Errorf(format string, args ...interface{}) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func TestAssertions(t *testing.T) {
	sentinel := errors.New("sentinel")

	tests := []struct {
		name     string
		assert   func(tb testing.TB)
		wantFail bool
	}{
		{"equal strings", func(tb testing.TB) { AssertEqual(tb, "hello", "hello") }, false},
		{"unequal ints", func(tb testing.TB) { AssertEqual(tb, 41, 42) }, true},
		{"equal slices", func(tb testing.TB) { AssertEqual(tb, []int{1, 2}, []int{1, 2}) }, false},
		{"same elements", func(tb testing.TB) { AssertSameElements(tb, []string{"b", "a"}, []string{"a", "b"}) }, false},
		{"same elements empty and nil", func(tb testing.TB) { AssertSameElements(tb, nil, []string{}) }, false},
		{"different elements", func(tb testing.TB) { AssertSameElements(tb, []string{"a"}, []string{"a", "b"}) }, true},
		{"no error", func(tb testing.TB) { AssertNoError(tb, nil) }, false},
		{"unexpected error", func(tb testing.TB) { AssertNoError(tb, sentinel) }, true},
		{"error is", func(tb testing.TB) { AssertErrorIs(tb, fmt.Errorf("wrapped: %w", sentinel), sentinel) }, false},
		{"error is nil", func(tb testing.TB) { AssertErrorIs(tb, nil, sentinel) }, true},
		{"error is other", func(tb testing.TB) { AssertErrorIs(tb, errors.New("other"), sentinel) }, true},
		{"contains", func(tb testing.TB) { AssertContains(tb, "hello world", "world") }, false},
		{"does not contain", func(tb testing.TB) { AssertContains(tb, "hello", "world") }, true},
		{"not contains", func(tb testing.TB) { AssertNotContains(tb, "hello", "world") }, false},
		{"unexpectedly contains", func(tb testing.TB) { AssertNotContains(tb, "hello world", "world") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{TB: t}
			tt.assert(r)
			if failed := len(r.failures) > 0; failed != tt.wantFail {
				t.Errorf("failed = %v, want %v (failures: %v)", failed, tt.wantFail, r.failures)
			}
		})
	}
}

func TestAssertEqual_MessagePrefix(t *testing.T) {
	r := &recorder{TB: t}
	AssertEqual(r, 1, 2, "value for %s", "x")
	if len(r.failures) != 1 {
		t.Fatalf("got %d failures, want 1", len(r.failures))
	}
	AssertContains(t, r.failures[0], "value for x: mismatch")
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"empty", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single non-string", []interface{}{42}, "42"},
		{"format string with args", []interface{}{"value is %d", 42}, "value is 42"},
		{"non-string first arg with extra", []interface{}{42, "extra"}, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMustPositionAndPlay(t *testing.T) {
	board, state := MustPosition(t, engine.InitialFEN)
	MustPlay(t, board, state, "e2e4", "e7e5", "g1f3")
	want := "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2"
	AssertEqual(t, engine.ToFEN(board, state), want)
}

func TestMustFindMove(t *testing.T) {
	board, state := MustPosition(t, "8/4P3/8/8/8/8/k7/4K3 w - - 0 1")
	move := MustFindMove(t, board, state, "e7e8n")
	AssertEqual(t, move.Promotion, chess.Knight)
}

func TestFixturePositions(t *testing.T) {
	tests := []struct {
		fen  string
		want engine.GameStatus
	}{
		{KiwipeteFEN, engine.Playing},
		{ScholarsMate, engine.Checkmate},
		{StalemateFEN, engine.Stalemate},
		{QueenCheck, engine.Check},
	}
	for _, tt := range tests {
		board, state := MustPosition(t, tt.fen)
		AssertEqual(t, engine.GetGameStatus(board, state), tt.want, "status of %s", tt.fen)
	}
}

func TestMoveStrings(t *testing.T) {
	board, state := MustPosition(t, engine.InitialFEN)
	from := chess.MustParseSquare("b1")
	got := MoveStrings(engine.LegalMoves(board, state, &from))
	AssertSameElements(t, got, []string{"b1a3", "b1c3"})
}
