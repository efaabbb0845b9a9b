// Package output provides position report formatting as text and JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// WriteNoSpace writes without adding a leading space.
func (o *OutputWriter) WriteNoSpace(s string) {
	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// writeReportText writes one report followed by a blank line.
func writeReportText(w io.Writer, r *Report, cfg *config.Config) {
	if r.Source != "" {
		fmt.Fprintf(w, "position %d (%s)\n", r.Index+1, r.Source)
	} else {
		fmt.Fprintf(w, "position %d\n", r.Index+1)
	}
	fmt.Fprintf(w, "fen: %s\n", r.FEN)
	fmt.Fprintf(w, "side: %s\n", r.Side)

	if r.Status != "" {
		if r.Check != "" {
			fmt.Fprintf(w, "status: %s (king on %s)\n", r.Status, r.Check)
		} else {
			fmt.Fprintf(w, "status: %s\n", r.Status)
		}
	}
	if r.Hash != "" {
		fmt.Fprintf(w, "hash: %s\n", r.Hash)
	}
	if r.Duplicate {
		fmt.Fprintln(w, "duplicate: yes")
	}

	if r.Moves != nil {
		outputMoves(w, r)
	}
	if r.Perft != nil {
		outputPerft(w, r.Perft)
	}
	if cfg.Output.ShowBoard && r.Board != nil {
		fmt.Fprint(w, FormatBoard(r.Board))
	}

	fmt.Fprintln(w)
}

// outputMoves writes the legal move list wrapped at 80 columns.
func outputMoves(w io.Writer, r *Report) {
	ow := NewOutputWriter(w, 80)
	ow.WriteNoSpace(fmt.Sprintf("moves (%d):", r.MoveCount))
	for _, m := range r.Moves {
		ow.Write(m)
	}
	ow.NewLine()
}

// outputPerft writes the leaf count, the verification verdict and the divide table.
func outputPerft(w io.Writer, p *PerftReport) {
	fmt.Fprintf(w, "perft %d: %d", p.Depth, p.Nodes)
	if p.Reference != nil {
		verdict := "ok"
		if !p.Verified() {
			verdict = "MISMATCH"
		}
		fmt.Fprintf(w, " (reference %d, %s)", *p.Reference, verdict)
	}
	fmt.Fprintln(w)

	for _, e := range p.SortedDivide() {
		fmt.Fprintf(w, "  %s: %d\n", e.Move, e.Nodes)
	}
	if len(p.Mismatches) > 0 {
		fmt.Fprintf(w, "mismatched moves: %s\n", strings.Join(p.Mismatches, " "))
	}
}

// FormatBoard draws the board from White's side, rank 8 first, with file
// letters underneath. Empty squares are shown as dots.
func FormatBoard(board *chess.Board) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		for file := 0; file < 8; file++ {
			sb.WriteByte(' ')
			if p := board.PieceAt(rank, file); p != nil {
				sb.WriteByte(p.Symbol())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
