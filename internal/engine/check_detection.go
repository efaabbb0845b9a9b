package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
// A side without a king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	return SquareAttackedBy(board, king, colour.Opposite(), nil)
}

// IsSideToMoveInCheck returns true if the side to move is in check.
func IsSideToMoveInCheck(board *chess.Board, state *chess.GameState) bool {
	return IsInCheck(board, state.ToMove)
}

// SquareAttackedBy returns true if any piece of colour byColour attacks sq.
// The exclude square, when given, is treated as empty: it neither attacks nor
// blocks. Attack does not depend on who owns sq, and pins are ignored.
func SquareAttackedBy(board *chess.Board, sq chess.Square, byColour chess.Colour, exclude *chess.Square) bool {
	at := func(rank, file int) *chess.Piece {
		if exclude != nil && exclude.Rank == rank && exclude.File == file {
			return nil
		}
		return board.PieceAt(rank, file)
	}
	is := func(p *chess.Piece, pieceTypes ...chess.PieceType) bool {
		if p == nil || p.Colour != byColour {
			return false
		}
		for _, pt := range pieceTypes {
			if p.Type == pt {
				return true
			}
		}
		return false
	}

	// Pawns attack forward diagonally, so an attacker sits one rank behind
	// the target from its own point of view.
	pawnRank := sq.Rank - byColour.PawnDirection()
	if is(at(pawnRank, sq.File-1), chess.Pawn) || is(at(pawnRank, sq.File+1), chess.Pawn) {
		return true
	}

	for _, d := range chess.Knight.Deltas() {
		if is(at(sq.Rank+d.Rank, sq.File+d.File), chess.Knight) {
			return true
		}
	}

	for _, d := range chess.King.Deltas() {
		if is(at(sq.Rank+d.Rank, sq.File+d.File), chess.King) {
			return true
		}
	}

	// Sliding pieces: walk each ray to the first occupant.
	ray := func(d chess.Delta, sliders ...chess.PieceType) bool {
		r, f := sq.Rank+d.Rank, sq.File+d.File
		for r >= 0 && r < chess.BoardSize && f >= 0 && f < chess.BoardSize {
			if p := at(r, f); p != nil {
				return is(p, sliders...)
			}
			r += d.Rank
			f += d.File
		}
		return false
	}
	for _, d := range chess.DiagonalDeltas() {
		if ray(d, chess.Bishop, chess.Queen) {
			return true
		}
	}
	for _, d := range chess.StraightDeltas() {
		if ray(d, chess.Rook, chess.Queen) {
			return true
		}
	}

	return false
}

// CheckedKingSquare returns the square of the side to move's king when that
// king is in check.
func CheckedKingSquare(board *chess.Board, state *chess.GameState) (chess.Square, bool) {
	king, ok := board.FindKing(state.ToMove)
	if !ok {
		return chess.Square{}, false
	}
	if !SquareAttackedBy(board, king, state.ToMove.Opposite(), nil) {
		return chess.Square{}, false
	}
	return king, true
}
