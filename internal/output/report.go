package output

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Report is the analysis of one input position.
type Report struct {
	Index     int          `json:"index"`
	Source    string       `json:"source,omitempty"`
	FEN       string       `json:"fen"`
	Side      string       `json:"side"`
	Status    string       `json:"status,omitempty"`
	Check     string       `json:"check,omitempty"`
	MoveCount int          `json:"moveCount"`
	Moves     []string     `json:"moves,omitempty"`
	Hash      string       `json:"hash,omitempty"`
	Duplicate bool         `json:"duplicate,omitempty"`
	Perft     *PerftReport `json:"perft,omitempty"`

	// Board is rendered as a diagram in text output when requested.
	Board *chess.Board `json:"-"`
}

// PerftReport holds the leaf count of a position to a fixed depth.
type PerftReport struct {
	Depth  int               `json:"depth"`
	Nodes  uint64            `json:"nodes"`
	Divide map[string]uint64 `json:"divide,omitempty"`

	// Reference is the count from an independent move generator, when verified.
	Reference *uint64 `json:"reference,omitempty"`
	// Mismatches lists the root moves whose divided counts disagree with the reference.
	Mismatches []string `json:"mismatches,omitempty"`
}

// Verified reports whether a reference count was taken and it agrees.
func (p *PerftReport) Verified() bool {
	return p.Reference != nil && *p.Reference == p.Nodes && len(p.Mismatches) == 0
}

// DivideEntry is one root move of a divided perft count.
type DivideEntry struct {
	Move  string
	Nodes uint64
}

// SortedDivide returns the divided counts ordered by move text.
func (p *PerftReport) SortedDivide() []DivideEntry {
	keys := make([]string, 0, len(p.Divide))
	for k := range p.Divide {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	entries := make([]DivideEntry, len(keys))
	for i, k := range keys {
		entries[i] = DivideEntry{Move: k, Nodes: p.Divide[k]}
	}
	return entries
}

// SortMoves orders the legal move list in place.
func (r *Report) SortMoves() {
	slices.Sort(r.Moves)
}
