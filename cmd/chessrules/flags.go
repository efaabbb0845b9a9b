// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Input options
	fenString = flag.String("fen", "", "Position to analyse (default: the initial position)")
	playMoves = flag.String("play", "", "UCI moves to play before reporting, e.g. \"e2e4 e7e5\"")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	showBoard    = flag.Bool("board", false, "Include a board diagram in text output")
	unsorted     = flag.Bool("unsorted", false, "List moves in generation order")

	// Report contents
	showStatus = flag.Bool("status", true, "Report check, checkmate or stalemate")
	listMoves  = flag.Bool("moves", false, "List the legal moves")
	showHash   = flag.Bool("hash", false, "Include the Zobrist key")
	showCheck  = flag.Bool("check", false, "Include the square of a checked king")
	perftDepth = flag.Int("perft", 0, "Count leaf nodes of the move tree to this depth")
	divide     = flag.Bool("divide", false, "Break the perft count down by root move")
	verify     = flag.Bool("verify", false, "Cross-check perft counts against a reference generator")

	// Filtering options
	checkFilter     = flag.Bool("incheck", false, "Output only positions with the side to move in check")
	checkmateFilter = flag.Bool("checkmate", false, "Output only checkmated positions")
	stalemateFilter = flag.Bool("stalemate", false, "Output only stalemated positions")
	minMoves        = flag.Int("minmoves", 0, "Minimum number of legal moves")
	maxMoves        = flag.Int("maxmoves", 0, "Maximum number of legal moves (0 = no limit)")

	// Position matching
	materialMatch      = flag.String("z", "", "Material to match (at least), e.g. \"QR:qr\"")
	materialMatchExact = flag.String("y", "", "Material to match exactly, e.g. \"KR:kr\"")
	fenFilter          = flag.String("Tf", "", "FEN or placement pattern to match (wildcards ? ! * A a _)")
	invertFilter       = flag.Bool("invert", false, "Also match the -Tf pattern with colours swapped")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate positions")
	duplicateFile      = flag.String("d", "", "Output duplicates to this file")

	// Processing options
	inputFile = flag.String("f", "", "File of FEN positions, one per line ('#' starts a comment)")
	workers   = flag.Int("j", 0, "Number of parallel workers (0 = one per CPU)")
	stopAfter = flag.Int("stopafter", 0, "Stop after outputting N positions")
	logFile   = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	verbosity = flag.Int("v", 1, "Verbosity: 0 quiet, 1 summary, 2 per position")
	quiet     = flag.Bool("s", false, "Silent mode: no summary")
	help      = flag.Bool("h", false, "Show help")
	version   = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyReportFlags(cfg)
	applyFilterFlags(cfg)
	applyDuplicateFlags(cfg)

	cfg.Workers = *workers
	cfg.StopAfter = *stopAfter
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	cfg.PlayMoves = strings.Fields(*playMoves)
	cfg.OutputFilename = *outputFile
}

// applyOutputFlags configures the output format.
func applyOutputFlags(cfg *config.Config) {
	if *jsonOutput {
		cfg.Output.Format = config.JSON
	} else {
		cfg.Output.Format = config.Text
	}
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.SortMoves = !*unsorted
}

// applyReportFlags selects what each report contains.
func applyReportFlags(cfg *config.Config) {
	cfg.Report.Status = *showStatus
	cfg.Report.Moves = *listMoves
	cfg.Report.Hash = *showHash
	cfg.Report.Check = *showCheck
	cfg.Report.PerftDepth = *perftDepth
	cfg.Report.Divide = *divide
	cfg.Report.Verify = *verify
}

// applyFilterFlags configures position filter settings.
func applyFilterFlags(cfg *config.Config) {
	cfg.Filter.MatchCheck = *checkFilter
	cfg.Filter.MatchCheckmate = *checkmateFilter
	cfg.Filter.MatchStalemate = *stalemateFilter
	cfg.Filter.MinMoves = *minMoves
	cfg.Filter.MaxMoves = *maxMoves
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Suppress = *suppressDuplicates
}
