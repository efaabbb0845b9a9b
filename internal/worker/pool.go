// Package worker provides a worker pool for parallel position processing.
package worker

import (
	"sync"
	"sync/atomic"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/output"
)

// WorkItem represents a position to be processed.
type WorkItem struct {
	Index int    // Original index for tracking
	FEN   string // Position to analyse
	File  string // Input file name, empty for -fen
	Line  int    // 1-based line in File
}

// ProcessResult represents the result of processing a position.
type ProcessResult struct {
	Index   int
	Report  *output.Report // Nil when Error is set
	Key     uint64         // Zobrist key of the reported position
	Matched bool           // Whether the report passed the status filters
	Error   error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a pool of workers for parallel position processing.
type Pool struct {
	numWorkers  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// NewPool creates a new worker pool with the specified number of workers and buffer size.
func NewPool(numWorkers, bufferSize int, processFunc ProcessFunc) *Pool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &Pool{
		numWorkers:  numWorkers,
		workChan:    make(chan WorkItem, bufferSize),
		resultChan:  make(chan ProcessResult, bufferSize),
		processFunc: processFunc,
	}
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items. Items already queued
// are drained without being processed, so their results never arrive.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
// Results arrive in completion order; see Ordered.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// Ordered re-sequences results by Index, starting at zero. Results that
// arrive early are held until every lower index has been emitted. The
// returned channel is closed once in is closed and drained; any held results
// left behind a missing index are then emitted in index order.
func Ordered(in <-chan ProcessResult) <-chan ProcessResult {
	out := make(chan ProcessResult)
	go func() {
		defer close(out)
		pending := make(map[int]ProcessResult)
		next := 0
		for r := range in {
			pending[r.Index] = r
			for {
				held, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				out <- held
				next++
			}
		}
		rest := make([]int, 0, len(pending))
		for i := range pending {
			rest = append(rest, i)
		}
		slices.Sort(rest)
		for _, i := range rest {
			out <- pending[i]
		}
	}()
	return out
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
