// Package game is the session layer over the rules engine: one authoritative
// position, a move history with undo and redo, and position repetition
// tracking. Front ends talk to a Game rather than to the engine directly.
package game

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// Game holds a position and the moves that led to it.
type Game struct {
	board *chess.Board
	state *chess.GameState

	history []played
	redo    []chess.Move

	positions *hashing.DuplicateDetector
}

// played is one history entry: the move, its undo record and the key of the
// position it produced.
type played struct {
	move chess.Move
	undo chess.Undo
	key  uint64
}

// New creates a game at the standard starting position.
func New() *Game {
	board, state := engine.NewInitialPosition()
	return newGame(board, state)
}

// NewFromFEN creates a game at the position described by fen.
func NewFromFEN(fen string) (*Game, error) {
	board, state, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return newGame(board, state), nil
}

func newGame(board *chess.Board, state *chess.GameState) *Game {
	g := &Game{positions: hashing.NewDuplicateDetector()}
	g.reset(board, state)
	return g
}

func (g *Game) reset(board *chess.Board, state *chess.GameState) {
	g.board = board
	g.state = state
	g.history = nil
	g.redo = nil
	g.positions.Reset()
	g.positions.Add(g.key())
}

func (g *Game) key() uint64 {
	return hashing.GenerateZobristHash(g.board, g.state)
}

// LoadFEN replaces the position and clears the history. A rejected FEN
// leaves the game as it was.
func (g *Game) LoadFEN(fen string) error {
	board, state, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return err
	}
	g.reset(board, state)
	return nil
}

// FEN returns the current position as a FEN string.
func (g *Game) FEN() string {
	return engine.ToFEN(g.board, g.state)
}

// Position returns independent copies of the current board and state.
func (g *Game) Position() (*chess.Board, *chess.GameState) {
	return g.board.DeepCopy(), g.state.Copy()
}

// PieceAt returns the piece on sq. The second result is false when the
// square is empty or off the board.
func (g *Game) PieceAt(sq chess.Square) (chess.Piece, bool) {
	p := g.board.PieceAt(sq.Rank, sq.File)
	if p == nil {
		return chess.Piece{}, false
	}
	return *p, true
}

// SideToMove returns the colour to move.
func (g *Game) SideToMove() chess.Colour {
	return g.state.ToMove
}

// HalfmoveClock returns the plies since the last pawn move or capture.
// It is tracked but no draw is claimed from it.
func (g *Game) HalfmoveClock() int {
	return g.state.HalfmoveClock
}

// FullmoveNumber returns the current move number.
func (g *Game) FullmoveNumber() int {
	return g.state.FullmoveNumber
}

// LegalMoves returns every legal move of the side to move.
func (g *Game) LegalMoves() []chess.Move {
	return engine.LegalMoves(g.board, g.state, nil)
}

// LegalMovesFrom returns the legal moves starting on sq.
func (g *Game) LegalMovesFrom(sq chess.Square) []chess.Move {
	if !sq.Valid() {
		return nil
	}
	return engine.LegalMoves(g.board, g.state, &sq)
}

// Status returns the status of the side to move.
func (g *Game) Status() engine.GameStatus {
	return engine.GetGameStatus(g.board, g.state)
}

// CheckedKingSquare returns the square of the side to move's king if it is
// in check.
func (g *Game) CheckedKingSquare() (chess.Square, bool) {
	return engine.CheckedKingSquare(g.board, g.state)
}

// LastMove returns the most recently played move.
func (g *Game) LastMove() (chess.Move, bool) {
	if len(g.history) == 0 {
		return chess.Move{}, false
	}
	return g.history[len(g.history)-1].move, true
}

// History returns the moves played since the position was set up.
func (g *Game) History() []chess.Move {
	moves := make([]chess.Move, len(g.history))
	for i, p := range g.history {
		moves[i] = p.move
	}
	return moves
}

// MakeMove plays a move that must be one of the current legal moves, class
// included. Playing a move discards any redo history.
func (g *Game) MakeMove(move chess.Move) error {
	if !engine.IsLegal(g.board, g.state, move) {
		return fmt.Errorf("%s: %w", move, errors.ErrIllegalMove)
	}
	if err := g.play(move); err != nil {
		return err
	}
	g.redo = nil
	return nil
}

// MakeMoveUCI plays the legal move named by UCI text such as "e2e4" or
// "e7e8q". A pawn reaching the last rank needs the promotion letter.
func (g *Game) MakeMoveUCI(text string) error {
	move, err := g.ResolveUCI(text)
	if err != nil {
		return err
	}
	return g.MakeMove(move)
}

// ResolveUCI finds the legal move named by UCI text.
func (g *Game) ResolveUCI(text string) (chess.Move, error) {
	parsed, err := chess.ParseMove(text)
	if err != nil {
		return chess.Move{}, err
	}
	for _, m := range g.LegalMovesFrom(parsed.From) {
		if m.To == parsed.To && m.Promotion == parsed.Promotion {
			return m, nil
		}
	}
	return chess.Move{}, fmt.Errorf("%s: %w", text, errors.ErrIllegalMove)
}

func (g *Game) play(move chess.Move) error {
	undo, err := engine.ApplyMove(g.board, g.state, move)
	if err != nil {
		return err
	}
	key := g.key()
	g.positions.Add(key)
	g.history = append(g.history, played{move: move, undo: undo, key: key})
	return nil
}

// CanUndo reports whether there is a move to take back.
func (g *Game) CanUndo() bool {
	return len(g.history) > 0
}

// CanRedo reports whether there is a taken-back move to replay.
func (g *Game) CanRedo() bool {
	return len(g.redo) > 0
}

// Undo takes back the last move.
func (g *Game) Undo() error {
	if len(g.history) == 0 {
		return errors.ErrNothingToUndo
	}
	last := g.history[len(g.history)-1]
	if err := engine.UndoMove(g.board, g.state, last.move, last.undo); err != nil {
		return err
	}
	g.history = g.history[:len(g.history)-1]
	g.positions.Remove(last.key)
	g.redo = append(g.redo, last.move)
	return nil
}

// Redo replays the most recently taken-back move.
func (g *Game) Redo() error {
	if len(g.redo) == 0 {
		return errors.ErrNothingToRedo
	}
	move := g.redo[len(g.redo)-1]
	if err := g.play(move); err != nil {
		return err
	}
	g.redo = g.redo[:len(g.redo)-1]
	return nil
}

// RepetitionCount returns how many times the current position has occurred
// in this game, counting the current occurrence. Repetition draws are not
// claimed.
func (g *Game) RepetitionCount() int {
	return g.positions.Count(g.key())
}
