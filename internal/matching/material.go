package matching

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// allPieceTypes lists the piece types counted by a MaterialMatcher.
var allPieceTypes = []chess.PieceType{chess.King, chess.Queen, chess.Rook, chess.Bishop, chess.Knight, chess.Pawn}

// MaterialMatcher matches positions by material balance.
type MaterialMatcher struct {
	// Pattern like "QR:qrr" means white has Q+R, black has Q+2R
	pattern     string
	exactMatch  bool
	whitePieces map[chess.PieceType]int
	blackPieces map[chess.PieceType]int
}

// NewMaterialMatcher creates a new material matcher.
// Pattern format: "QRN:qrn" (white pieces : black pieces)
// Use uppercase for white, lowercase for black
// K=King, Q=Queen, R=Rook, B=Bishop, N=Knight, P=Pawn
func NewMaterialMatcher(pattern string, exact bool) *MaterialMatcher {
	mm := &MaterialMatcher{
		pattern:     pattern,
		exactMatch:  exact,
		whitePieces: make(map[chess.PieceType]int),
		blackPieces: make(map[chess.PieceType]int),
	}
	mm.parsePattern(pattern)
	return mm
}

// parsePattern parses a material pattern like "QR:qrr"
func (mm *MaterialMatcher) parsePattern(pattern string) {
	parts := strings.Split(pattern, ":")
	if len(parts) >= 1 {
		parsePieces(parts[0], 'A', 'Z', mm.whitePieces)
	}
	if len(parts) >= 2 {
		parsePieces(parts[1], 'a', 'z', mm.blackPieces)
	}
}

// parsePieces counts the piece letters of s within [lo, hi]; anything else
// is ignored.
func parsePieces(s string, lo, hi byte, counts map[chess.PieceType]int) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < lo || c > hi {
			continue
		}
		if pt := chess.PieceTypeFromLetter(c); pt != chess.NoPieceType {
			counts[pt]++
		}
	}
}

// Match checks if a position matches the material pattern.
func (mm *MaterialMatcher) Match(board *chess.Board) bool {
	whiteCounts := make(map[chess.PieceType]int)
	blackCounts := make(map[chess.PieceType]int)

	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			p := board.PieceAt(rank, file)
			if p == nil {
				continue
			}
			if p.Colour == chess.White {
				whiteCounts[p.Type]++
			} else {
				blackCounts[p.Type]++
			}
		}
	}

	if mm.exactMatch {
		return mm.exactMaterialMatch(whiteCounts, blackCounts)
	}
	return mm.minimalMaterialMatch(whiteCounts, blackCounts)
}

// exactMaterialMatch checks for exact material match.
func (mm *MaterialMatcher) exactMaterialMatch(whiteCounts, blackCounts map[chess.PieceType]int) bool {
	for _, pt := range allPieceTypes {
		if whiteCounts[pt] != mm.whitePieces[pt] || blackCounts[pt] != mm.blackPieces[pt] {
			return false
		}
	}
	return true
}

// minimalMaterialMatch checks that at least the specified pieces exist.
func (mm *MaterialMatcher) minimalMaterialMatch(whiteCounts, blackCounts map[chess.PieceType]int) bool {
	for piece, count := range mm.whitePieces {
		if whiteCounts[piece] < count {
			return false
		}
	}
	for piece, count := range mm.blackPieces {
		if blackCounts[piece] < count {
			return false
		}
	}
	return true
}

// HasCriteria returns true if a material pattern is set.
func (mm *MaterialMatcher) HasCriteria() bool {
	return mm.pattern != ""
}

// Name implements BoardMatcher.
func (mm *MaterialMatcher) Name() string {
	if mm.exactMatch {
		return "MaterialMatcher(exact " + mm.pattern + ")"
	}
	return "MaterialMatcher(" + mm.pattern + ")"
}
