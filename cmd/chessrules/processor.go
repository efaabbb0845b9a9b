package main

import (
	"bufio"
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/matching"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// ProcessingContext holds the shared state for processing positions.
type ProcessingContext struct {
	cfg      *config.Config
	detector *hashing.DuplicateDetector // Only touched by the consumer
	matcher  matching.BoardMatcher      // Nil when no position criteria are given

	// stop halts the producer once StopAfter positions are output
	stop func()
}

// newProcessingContext creates a context, with a duplicate detector when
// duplicates are suppressed or collected.
func newProcessingContext(cfg *config.Config) *ProcessingContext {
	ctx := &ProcessingContext{cfg: cfg}
	if cfg.Duplicate.Suppress || cfg.Duplicate.DuplicateFile != nil {
		ctx.detector = hashing.NewDuplicateDetector()
	}
	return ctx
}

// processStats counts what happened to the positions of one run.
type processStats struct {
	total  int
	output int
	failed int
}

// readPositions reads one FEN per line. Blank lines and lines starting with
// '#' are skipped; indices continue from first.
func readPositions(r io.Reader, name string, first int) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		items = append(items, worker.WorkItem{
			Index: first + len(items),
			FEN:   text,
			File:  name,
			Line:  line,
		})
	}
	if err := scanner.Err(); err != nil {
		return items, errors.Wrapf(err, "reading %s", name)
	}
	return items, nil
}

// processPositions analyses every item and writes the reports in input order.
func processPositions(items []worker.WorkItem, ctx *ProcessingContext) (processStats, error) {
	numWorkers := ctx.cfg.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	// Use parallel processing for multiple workers and enough positions
	var results <-chan worker.ProcessResult
	if numWorkers > 1 && len(items) > 2 {
		results = processParallel(items, ctx, numWorkers)
	} else {
		results = processSequential(items, ctx)
	}
	return consumeResults(results, ctx)
}

// processSequential analyses the items one after another on a single goroutine.
func processSequential(items []worker.WorkItem, ctx *ProcessingContext) <-chan worker.ProcessResult {
	results := make(chan worker.ProcessResult)
	var stopped int32
	ctx.stop = func() { atomic.StoreInt32(&stopped, 1) }

	go func() {
		defer close(results)
		for _, item := range items {
			if atomic.LoadInt32(&stopped) != 0 {
				return
			}
			results <- processPosition(item, ctx)
		}
	}()
	return results
}

// processParallel analyses the items on a worker pool.
//
// Workers only build reports; results are re-sequenced by index and consumed
// by a single goroutine, so duplicate detection and writing happen in input
// order and the writers need no synchronization.
func processParallel(items []worker.WorkItem, ctx *ProcessingContext, numWorkers int) <-chan worker.ProcessResult {
	processFunc := func(item worker.WorkItem) worker.ProcessResult {
		return processPosition(item, ctx)
	}

	bufferSize := len(items)
	if bufferSize > 100 {
		bufferSize = 100
	}
	pool := worker.NewPool(numWorkers, bufferSize, processFunc)
	ctx.stop = pool.Stop
	if ctx.cfg.Verbosity > 1 {
		fmt.Fprintf(ctx.cfg.LogFile, "processing %d positions on %d workers\n", len(items), pool.NumWorkers())
	}
	pool.Start()

	go func() {
		for _, item := range items {
			if pool.IsStopped() {
				break
			}
			pool.Submit(item)
		}
		pool.Close()
	}()

	return worker.Ordered(pool.Results())
}

// consumeResults handles duplicates and writes each matching report. Once
// StopAfter reports are written the producer is stopped and the remaining
// results are drained unread.
func consumeResults(results <-chan worker.ProcessResult, ctx *ProcessingContext) (processStats, error) {
	cfg := ctx.cfg
	var stats processStats
	var errs *multierror.Error

	w := output.NewWriter(cfg.OutputFile, cfg)
	var dupWriter output.ReportWriter
	if cfg.Duplicate.DuplicateFile != nil {
		dupWriter = output.NewWriter(cfg.Duplicate.DuplicateFile, cfg)
	}

	stopped := false
	for result := range results {
		if stopped {
			continue
		}
		stats.total++

		if result.Error != nil {
			stats.failed++
			errs = multierror.Append(errs, result.Error)
			if cfg.Verbosity > 1 {
				fmt.Fprintf(cfg.LogFile, "%v\n", result.Error)
			}
			continue
		}

		if !result.Matched {
			continue
		}

		if ctx.detector != nil && ctx.detector.Add(result.Key) > 1 {
			result.Report.Duplicate = true
			if dupWriter != nil {
				if err := dupWriter.WriteReport(result.Report); err != nil {
					errs = multierror.Append(errs, err)
				}
			}
			if cfg.Duplicate.Suppress {
				continue
			}
		}

		if err := w.WriteReport(result.Report); err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		stats.output++

		if cfg.Verbosity > 1 {
			fmt.Fprintf(cfg.LogFile, "position %d: %s\n", result.Index+1, result.Report.Status)
		}

		if cfg.StopAfter > 0 && stats.output >= cfg.StopAfter {
			stopped = true
			if ctx.stop != nil {
				ctx.stop()
			}
		}
	}

	if err := w.Close(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if dupWriter != nil {
		if err := dupWriter.Close(); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	return stats, errs.ErrorOrNil()
}

// processPosition loads one position, plays the configured moves and
// analyses the result. This does all the CPU-intensive work that can be
// safely parallelized.
func processPosition(item worker.WorkItem, ctx *ProcessingContext) worker.ProcessResult {
	cfg := ctx.cfg
	result := worker.ProcessResult{Index: item.Index}

	g, err := game.NewFromFEN(item.FEN)
	if err != nil {
		result.Error = positionError(item, "", err)
		return result
	}

	for _, text := range cfg.PlayMoves {
		if err := g.MakeMoveUCI(text); err != nil {
			result.Error = positionError(item, text, err)
			return result
		}
	}

	report, err := analysePosition(g, cfg)
	if err != nil {
		result.Error = positionError(item, "", err)
		return result
	}
	report.Index = item.Index
	report.Source = sourceName(item)

	result.Report = report
	result.Key = hashing.GenerateZobristHash(g.Position())
	result.Matched = matchesFilters(report, cfg.Filter) &&
		(ctx.matcher == nil || ctx.matcher.Match(report.Board))
	return result
}

// positionError attaches the item's origin to err.
func positionError(item worker.WorkItem, move string, err error) error {
	return &errors.PositionError{
		Err:      err,
		Index:    item.Index + 1,
		FEN:      item.FEN,
		MoveText: move,
		File:     item.File,
		Line:     item.Line,
	}
}

// sourceName returns "file:line" for items read from a file.
func sourceName(item worker.WorkItem) string {
	if item.File == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", item.File, item.Line)
}
