package matching

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// FENPattern represents a FEN piece placement pattern to match, rank 8
// first. See matchRank for the wildcards.
type FENPattern struct {
	Pattern       string
	Label         string // optional label for matched position
	Hash          uint64 // placement hash for exact FEN matches
	IsExact       bool   // true if this is an exact FEN (no wildcards)
	IncludeInvert bool   // also match color-inverted position
	ranks         []string
}

// PositionMatcher matches boards against exact FEN placements and wildcard patterns.
type PositionMatcher struct {
	patterns    []*FENPattern
	exactHashes map[uint64]*FENPattern
}

// NewPositionMatcher creates a new position matcher.
func NewPositionMatcher() *PositionMatcher {
	return &PositionMatcher{
		exactHashes: make(map[uint64]*FENPattern),
	}
}

// AddFEN adds an exact FEN position to match. Only the piece placement is
// compared; side to move, castling and en passant fields are ignored.
func (pm *PositionMatcher) AddFEN(fen string, label string) error {
	board, _, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return err
	}

	hash := hashing.PlacementHash(board)
	pattern := &FENPattern{
		Pattern: fen,
		Label:   label,
		Hash:    hash,
		IsExact: true,
	}

	pm.patterns = append(pm.patterns, pattern)
	pm.exactHashes[hash] = pattern

	return nil
}

// AddPattern adds a FEN pattern with wildcards.
func (pm *PositionMatcher) AddPattern(pattern string, label string, includeInvert bool) {
	p := &FENPattern{
		Pattern:       pattern,
		Label:         label,
		IsExact:       false,
		IncludeInvert: includeInvert,
	}

	// Parse into ranks
	p.ranks = strings.Split(pattern, "/")

	pm.patterns = append(pm.patterns, p)

	// If invert requested, also add inverted pattern
	if includeInvert {
		inverted := invertPattern(pattern)
		ip := &FENPattern{
			Pattern:       inverted,
			Label:         label,
			IsExact:       false,
			IncludeInvert: false,
		}
		ip.ranks = strings.Split(inverted, "/")
		pm.patterns = append(pm.patterns, ip)
	}
}

// MatchPosition returns the first pattern the board matches, or nil.
func (pm *PositionMatcher) MatchPosition(board *chess.Board) *FENPattern {
	// First check exact hash matches (fast)
	hash := hashing.PlacementHash(board)
	if pattern, ok := pm.exactHashes[hash]; ok {
		return pattern
	}

	// Then check pattern matches
	for _, pattern := range pm.patterns {
		if !pattern.IsExact && pm.matchPattern(board, pattern) {
			return pattern
		}
	}

	return nil
}

// matchPattern checks if a board matches a FEN pattern with wildcards.
func (pm *PositionMatcher) matchPattern(board *chess.Board, pattern *FENPattern) bool {
	if len(pattern.ranks) == 0 {
		return false
	}

	// Convert board to rank strings for matching
	boardRanks := boardToRanks(board)

	// Match each rank
	for i, patternRank := range pattern.ranks {
		if i >= 8 {
			break
		}
		if !matchRank(boardRanks[7-i], patternRank) {
			return false
		}
	}

	return true
}

// boardToRanks converts a board to rank strings, rank 1 first, with '_'
// for empty squares.
func boardToRanks(board *chess.Board) [8]string {
	var ranks [8]string

	for r := 0; r < chess.BoardSize; r++ {
		var sb strings.Builder
		for f := 0; f < chess.BoardSize; f++ {
			sb.WriteByte(pieceToChar(board.PieceAt(r, f)))
		}
		ranks[r] = sb.String()
	}

	return ranks
}

// pieceToChar converts a piece to its FEN character.
func pieceToChar(piece *chess.Piece) byte {
	if piece == nil {
		return '_'
	}
	return piece.Symbol()
}

// matchRank matches a board rank string against a pattern rank.
//
// Pattern characters:
//   - ? matches any square (empty or occupied)
//   - ! matches any non-empty square
//   - * matches zero or more of anything
//   - A matches any white piece
//   - a matches any black piece
//   - _ matches empty square
//   - 1-8 match that many empty squares
func matchRank(boardRank, patternRank string) bool {
	bi, pi := 0, 0
	for pi < len(patternRank) {
		c := patternRank[pi]
		pi++

		switch {
		case c == '*':
			if pi == len(patternRank) {
				return true // * at end matches rest
			}
			for ; bi <= len(boardRank); bi++ {
				if matchRank(boardRank[bi:], patternRank[pi:]) {
					return true
				}
			}
			return false

		case c >= '1' && c <= '8':
			for n := int(c - '0'); n > 0; n-- {
				if bi >= len(boardRank) || boardRank[bi] != '_' {
					return false
				}
				bi++
			}

		default:
			if bi >= len(boardRank) || !squareMatches(boardRank[bi], c) {
				return false
			}
			bi++
		}
	}

	return bi == len(boardRank)
}

// squareMatches reports whether one square, as a FEN letter or '_', fits a
// single-square pattern character.
func squareMatches(sq, c byte) bool {
	switch c {
	case '?':
		return true
	case '!':
		return sq != '_'
	case 'A':
		return sq >= 'A' && sq <= 'Z'
	case 'a':
		return sq >= 'a' && sq <= 'z'
	default:
		return sq == c
	}
}

// invertPattern swaps the colours of a pattern and mirrors it top to bottom.
func invertPattern(pattern string) string {
	swapped := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		}
		return r
	}, pattern)

	ranks := strings.Split(swapped, "/")
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}
	return strings.Join(ranks, "/")
}

// Match implements BoardMatcher.
func (pm *PositionMatcher) Match(board *chess.Board) bool {
	return pm.MatchPosition(board) != nil
}

// Name implements BoardMatcher.
func (pm *PositionMatcher) Name() string {
	return fmt.Sprintf("PositionMatcher(%d patterns)", len(pm.patterns))
}

// PatternCount returns the number of patterns.
func (pm *PositionMatcher) PatternCount() int {
	return len(pm.patterns)
}
