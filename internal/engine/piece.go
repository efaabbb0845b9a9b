package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pieceMoves generates pseudo-legal moves for a knight, bishop, rook, queen
// or king on from. Sliding pieces walk each direction until blocked; a step
// onto an enemy piece is a capture and ends the ray.
func pieceMoves(board *chess.Board, from chess.Square, piece *chess.Piece) []chess.Move {
	var moves []chess.Move
	for _, d := range piece.Type.Deltas() {
		to := from.Offset(d.Rank, d.File)
		for to.Valid() {
			target := board.Get(to)
			if target != nil && target.Colour == piece.Colour {
				break
			}
			moves = append(moves, chess.NewMove(from, to))
			if target != nil || !piece.Type.Slides() {
				break
			}
			to = to.Offset(d.Rank, d.File)
		}
	}
	return moves
}
