// chessrules reports the status, legal moves and perft counts of chess positions given in FEN.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/matching"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)
	setupDuplicateFile(cfg)

	items, err := collectInputs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx := newProcessingContext(cfg)
	ctx.matcher, err = loadBoardMatcher()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing FEN filter: %v\n", err)
		os.Exit(1)
	}

	stats, err := processPositions(items, ctx)

	if cfg.Verbosity > 0 {
		reportStatistics(cfg.LogFile, stats, ctx)
	}

	closeIfFile(cfg.OutputFile)
	closeIfFile(cfg.Duplicate.DuplicateFile)

	if err != nil {
		fmt.Fprintf(cfg.LogFile, "%v\n", err)
		closeIfFile(cfg.LogFile)
		os.Exit(1)
	}
	closeIfFile(cfg.LogFile)
}

// collectInputs gathers the positions from -f, -fen and the file arguments.
// With none of them the initial position is analysed.
func collectInputs() ([]worker.WorkItem, error) {
	var items []worker.WorkItem

	if *fenString != "" {
		items = append(items, worker.WorkItem{Index: 0, FEN: *fenString})
	}

	files := flag.Args()
	if *inputFile != "" {
		files = append([]string{*inputFile}, files...)
	}

	for _, filename := range files {
		read, err := readPositionFile(filename, len(items))
		if err != nil {
			return nil, err
		}
		items = append(items, read...)
	}

	if len(items) == 0 {
		items = append(items, worker.WorkItem{Index: 0, FEN: engine.InitialFEN})
	}
	return items, nil
}

// readPositionFile reads the positions of one file, "-" meaning stdin.
func readPositionFile(filename string, first int) ([]worker.WorkItem, error) {
	if filename == "-" {
		return readPositions(os.Stdin, "stdin", first)
	}

	file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close() //nolint:errcheck // read-only file

	return readPositions(file, filename, first)
}

// loadBoardMatcher combines the material and placement criteria, or returns
// nil when none are given.
func loadBoardMatcher() (matching.BoardMatcher, error) {
	matcher := matching.NewCompositeMatcher(matching.MatchAll)

	if *materialMatch != "" {
		matcher.Add(matching.NewMaterialMatcher(*materialMatch, false))
	}
	if *materialMatchExact != "" {
		matcher.Add(matching.NewMaterialMatcher(*materialMatchExact, true))
	}

	if *fenFilter != "" {
		positions := matching.NewPositionMatcher()
		if strings.Contains(*fenFilter, " ") {
			if err := positions.AddFEN(*fenFilter, ""); err != nil {
				return nil, err
			}
		} else {
			positions.AddPattern(*fenFilter, "", *invertFilter)
		}
		matcher.Add(positions)
	}

	if matcher.Len() == 0 {
		return nil, nil
	}
	return matcher, nil
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}

	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// setupDuplicateFile configures the duplicate output file.
func setupDuplicateFile(cfg *config.Config) {
	if *duplicateFile == "" {
		return
	}

	file, err := os.Create(*duplicateFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating duplicate file %s: %v\n", *duplicateFile, err)
		os.Exit(1)
	}
	cfg.Duplicate.DuplicateFile = file
}

// closeIfFile closes w when it is a file other than the standard streams.
func closeIfFile(w io.Writer) {
	file, ok := w.(*os.File)
	if !ok || file == os.Stdout || file == os.Stderr {
		return
	}
	file.Close() //nolint:errcheck,gosec // G104: cleanup on exit
}

// reportStatistics prints the final statistics to the log.
func reportStatistics(w io.Writer, stats processStats, ctx *ProcessingContext) {
	if ctx.detector != nil {
		fmt.Fprintf(w, "%d position(s) output, %d duplicate(s) out of %d.\n", stats.output, ctx.detector.DuplicateCount(), stats.total)
		fmt.Fprintf(w, "%d distinct position(s) seen.\n", ctx.detector.UniqueCount())
	} else {
		fmt.Fprintf(w, "%d position(s) output out of %d.\n", stats.output, stats.total)
	}
	if stats.failed > 0 {
		fmt.Fprintf(w, "%d position(s) failed.\n", stats.failed)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options] [fen-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Reports the status, legal moves and perft counts of chess positions.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nInput files hold one FEN per line; '#' starts a comment line and '-' reads stdin.\n")
}
