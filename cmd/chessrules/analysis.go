package main

import (
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/output"
)

// analysePosition builds the report for the current position of g.
func analysePosition(g *game.Game, cfg *config.Config) (*output.Report, error) {
	board, state := g.Position()
	moves := g.LegalMoves()
	status := g.Status()

	report := &output.Report{
		FEN:       g.FEN(),
		Side:      strings.ToLower(g.SideToMove().String()),
		MoveCount: len(moves),
		Board:     board,
	}

	if cfg.Report.Status || cfg.Filter.MatchesStatus() {
		report.Status = status.String()
	}
	if cfg.Report.Check {
		if sq, ok := g.CheckedKingSquare(); ok {
			report.Check = sq.String()
		}
	}
	if cfg.Report.Moves {
		report.Moves = moveStrings(moves)
		if cfg.Output.SortMoves {
			report.SortMoves()
		}
	}
	if cfg.Report.Hash {
		report.Hash = fmt.Sprintf("%016x", hashing.GenerateZobristHash(board, state))
	}

	if cfg.Report.PerftDepth > 0 {
		perft, err := runPerft(board, state, report.FEN, cfg.Report)
		if err != nil {
			return nil, err
		}
		report.Perft = perft
	}

	return report, nil
}

// moveStrings returns the UCI text of each move, in generation order.
func moveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

// runPerft counts leaf nodes to the configured depth, dividing and verifying on request.
func runPerft(board *chess.Board, state *chess.GameState, fen string, rc *config.ReportConfig) (*output.PerftReport, error) {
	p := &output.PerftReport{Depth: rc.PerftDepth}

	var divided map[string]uint64
	if rc.Divide || rc.Verify {
		divided = engine.Divide(board, state, rc.PerftDepth)
		for _, n := range divided {
			p.Nodes += n
		}
	} else {
		p.Nodes = engine.Perft(board, state, rc.PerftDepth)
	}
	if rc.Divide {
		p.Divide = divided
	}

	if rc.Verify {
		refNodes, refDivide, err := referenceDivide(fen, rc.PerftDepth)
		if err != nil {
			return nil, err
		}
		p.Reference = &refNodes
		p.Mismatches = divideMismatches(divided, refDivide)
	}

	return p, nil
}

// referenceDivide computes a divided perft count with dragontoothmg.
func referenceDivide(fen string, depth int) (nodes uint64, divided map[string]uint64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrapf(errors.ErrInvalidFEN, "reference generator rejected %q: %v", fen, r)
		}
	}()

	board := dragontoothmg.ParseFen(fen)
	divided = make(map[string]uint64)
	for _, m := range board.GenerateLegalMoves() {
		unapply := board.Apply(m)
		n := referencePerft(&board, depth-1)
		unapply()
		divided[strings.ToLower(m.String())] = n
		nodes += n
	}
	return nodes, divided, nil
}

func referencePerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += referencePerft(b, depth-1)
		unapply()
	}
	return nodes
}

// divideMismatches returns, sorted, the root moves present in only one of
// the two divides or counted differently.
func divideMismatches(got, want map[string]uint64) []string {
	var out []string
	for move, n := range got {
		if ref, ok := want[move]; !ok || ref != n {
			out = append(out, move)
		}
	}
	for move := range want {
		if _, ok := got[move]; !ok {
			out = append(out, move)
		}
	}
	slices.Sort(out)
	return out
}

// matchesFilters reports whether the report passes the status and move count filters.
func matchesFilters(r *output.Report, f *config.FilterConfig) bool {
	if f.MatchesStatus() {
		inCheck := r.Status == engine.Check.String() || r.Status == engine.Checkmate.String()
		matched := (f.MatchCheck && inCheck) ||
			(f.MatchCheckmate && r.Status == engine.Checkmate.String()) ||
			(f.MatchStalemate && r.Status == engine.Stalemate.String())
		if !matched {
			return false
		}
	}
	if r.MoveCount < f.MinMoves {
		return false
	}
	if f.MaxMoves > 0 && r.MoveCount > f.MaxMoves {
		return false
	}
	return true
}
