// Package worker provides a worker pool for batch message processing. Each
// work item is one input line of a batch encode or decode run; results
// carry the original index so the caller can restore input order. Every
// invocation of the process function owns its working state exclusively,
// which the PGN codec requires: a rules-engine instance is never shared
// across concurrent calls.
package worker

import (
	"sync"
	"sync/atomic"
)

// WorkItem is one message or carrier text to be processed.
type WorkItem struct {
	Text  string
	Index int // Original input position for reordering
}

// ProcessResult is the outcome of processing one item.
type ProcessResult struct {
	Output string
	Index  int
	Err    error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a pool of workers for parallel batch processing.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// NewPool creates a new worker pool with the specified number of workers
// and channel buffer size.
func NewPool(numWorkers, bufferSize int, processFunc ProcessFunc) *Pool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &Pool{
		numWorkers:  numWorkers,
		bufferSize:  bufferSize,
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

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
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
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// Process runs every line through a pool and returns the results in input
// order. It owns the pool lifecycle; the caller only provides the lines
// and the process function.
func Process(lines []string, numWorkers int, fn ProcessFunc) []ProcessResult {
	bufferSize := len(lines)
	if bufferSize > 100 {
		bufferSize = 100
	}
	pool := NewPool(numWorkers, bufferSize, fn)
	pool.Start()

	go func() {
		for i, line := range lines {
			pool.Submit(WorkItem{Text: line, Index: i})
		}
		pool.Close()
	}()

	ordered := make([]ProcessResult, len(lines))
	for result := range pool.Results() {
		ordered[result.Index] = result
	}
	return ordered
}
