// Package engine provides chess move generation, move application and game
// status derivation over a chess.Board and chess.GameState.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewPositionFromFEN parses a FEN string into a fresh board and game state.
// The halfmove and fullmove fields default to 0 and 1 when absent. Nothing
// is returned unless every field parsed.
func NewPositionFromFEN(fen string) (*chess.Board, *chess.GameState, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return nil, nil, errors.NewFormatError("fields", fen,
			fmt.Sprintf("expected at least 4 fields, got %d", len(parts)))
	}

	board := chess.NewBoard()
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, nil, err
	}

	state := &chess.GameState{FullmoveNumber: 1}

	toMove, err := parseSideToMove(parts[1])
	if err != nil {
		return nil, nil, err
	}
	state.ToMove = toMove

	state.Castling = chess.ParseCastlingRights(parts[2])

	if state.EnPassant, err = parseEnPassant(parts[3]); err != nil {
		return nil, nil, err
	}

	if err := parseClocks(state, parts); err != nil {
		return nil, nil, err
	}

	return board, state, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
// Ranks are listed from the eighth down to the first.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return errors.NewFormatError("placement", positions,
			fmt.Sprintf("expected %d ranks, got %d", chess.BoardSize, len(ranks)))
	}

	for i, token := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(token); j++ {
			c := token[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, err := chess.PieceFromFEN(c)
			if err != nil {
				return errors.NewFormatError("placement", token, fmt.Sprintf("invalid piece character %q", c))
			}
			if file >= chess.BoardSize {
				return errors.NewFormatError("placement", token,
					fmt.Sprintf("rank %d has more than %d files", rank+1, chess.BoardSize))
			}
			board.Set(chess.Sq(rank, file), &piece)
			file++
		}
		if file != chess.BoardSize {
			return errors.NewFormatError("placement", token,
				fmt.Sprintf("rank %d covers %d files, want %d", rank+1, file, chess.BoardSize))
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(field string) (chess.Colour, error) {
	switch strings.ToLower(field) {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, errors.NewFormatError("side", field, "must be w or b")
	}
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(field string) (*chess.Square, error) {
	if field == "-" {
		return nil, nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil {
		return nil, errors.NewFormatError("en passant", field, "must be - or a square")
	}
	return &sq, nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(state *chess.GameState, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return errors.NewFormatError("halfmove clock", parts[4], "must be a non-negative integer")
		}
		state.HalfmoveClock = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return errors.NewFormatError("fullmove number", parts[5], "must be a positive integer")
		}
		state.FullmoveNumber = n
	}
	return nil
}

// ToFEN converts a board and state to a FEN string.
func ToFEN(board *chess.Board, state *chess.GameState) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, state)
	sb.WriteByte(' ')
	sb.WriteString(state.Castling.String())
	sb.WriteByte(' ')
	writeEnPassant(&sb, state)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", state.HalfmoveClock, state.FullmoveNumber)

	return sb.String()
}

// ToFENPlacement returns only the piece placement field.
func ToFENPlacement(board *chess.Board) string {
	var sb strings.Builder
	writePiecePositions(&sb, board)
	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.Sq(rank, file))
			if piece == nil {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Symbol())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, state *chess.GameState) {
	if state.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, state *chess.GameState) {
	if state.EnPassant != nil {
		sb.WriteString(state.EnPassant.String())
	} else {
		sb.WriteByte('-')
	}
}

// NewInitialPosition creates a board and state for the standard starting position.
func NewInitialPosition() (*chess.Board, *chess.GameState) {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board, chess.NewGameState()
}
