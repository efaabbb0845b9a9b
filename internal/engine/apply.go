package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ApplyMove plays a move on the board and updates the state in place. The
// move is trusted to be legal; only an empty origin square is rejected.
// The returned Undo restores the exact prior position via UndoMove.
func ApplyMove(board *chess.Board, state *chess.GameState, move chess.Move) (chess.Undo, error) {
	if !move.From.Valid() || !move.To.Valid() {
		return chess.Undo{}, errors.IllegalState("apply %s: square off the board", move)
	}
	piece := board.Get(move.From)
	if piece == nil {
		return chess.Undo{}, errors.IllegalState("apply %s: no piece on %s", move, move.From)
	}

	undo := chess.Undo{
		CapturedSquare:    move.To,
		PrevCastling:      state.Castling,
		PrevEnPassant:     state.EnPassant,
		PrevHalfmoveClock: state.HalfmoveClock,
	}

	// Remove whatever is captured. En passant takes the pawn beside the
	// mover, not the piece on the destination.
	if move.IsEnPassant() {
		undo.CapturedSquare = chess.Sq(move.From.Rank, move.To.File)
	}
	undo.Captured = board.Get(undo.CapturedSquare)
	board.Clear(undo.CapturedSquare)

	if move.IsCastle() {
		rookFrom, rookTo := castleRookSquares(move)
		board.Move(rookFrom, rookTo)
		undo.RookFrom, undo.RookTo = &rookFrom, &rookTo
	}

	board.Clear(move.From)
	if move.IsPromotion() {
		board.Set(move.To, chess.NewPiece(piece.Colour, move.Promotion))
	} else {
		board.Set(move.To, piece)
	}

	if piece.Type == chess.Pawn || undo.Captured != nil {
		state.HalfmoveClock = 0
	} else {
		state.HalfmoveClock++
	}

	updateCastlingRights(state, piece, move, undo.Captured)

	state.EnPassant = nil
	if move.IsDoublePawnPush() {
		ep := chess.Sq((move.From.Rank+move.To.Rank)/2, move.From.File)
		state.EnPassant = &ep
	}

	if state.ToMove == chess.Black {
		state.FullmoveNumber++
	}
	state.ToMove = state.ToMove.Opposite()

	return undo, nil
}

// UndoMove reverts a move previously played by ApplyMove using its record.
// Nothing is changed when the record does not match the board.
func UndoMove(board *chess.Board, state *chess.GameState, move chess.Move, undo chess.Undo) error {
	piece := board.Get(move.To)
	if piece == nil {
		return errors.IllegalState("undo %s: no piece on %s", move, move.To)
	}
	if move.IsCastle() {
		if undo.RookFrom == nil || undo.RookTo == nil {
			return errors.IllegalState("undo %s: record has no rook displacement", move)
		}
		if board.Get(*undo.RookTo) == nil {
			return errors.IllegalState("undo %s: no rook on %s", move, *undo.RookTo)
		}
	}

	state.ToMove = state.ToMove.Opposite()
	if state.ToMove == chess.Black {
		state.FullmoveNumber--
	}
	state.Castling = undo.PrevCastling
	state.EnPassant = undo.PrevEnPassant
	state.HalfmoveClock = undo.PrevHalfmoveClock

	board.Clear(move.To)
	if move.IsPromotion() {
		board.Set(move.From, chess.NewPiece(piece.Colour, chess.Pawn))
	} else {
		board.Set(move.From, piece)
	}

	if undo.Captured != nil {
		board.Set(undo.CapturedSquare, undo.Captured)
	}

	if move.IsCastle() {
		board.Move(*undo.RookTo, *undo.RookFrom)
	}

	return nil
}
