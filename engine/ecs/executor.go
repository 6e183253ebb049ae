package ecs

import (
	"fmt"
	"sync"
)

var ErrNoWorkers = fmt.Errorf("attempting to create worker pool with less than 1 worker")

// Executor is the bounded worker pool shared by concurrent schedules.
type Executor struct {
	numWorkers int
	jobQueue   chan func()
	wg         sync.WaitGroup

	mu      sync.RWMutex
	stopped bool
}

func NewExecutor(numWorkers int) (*Executor, error) {
	if numWorkers <= 0 {
		return nil, ErrNoWorkers
	}

	ex := &Executor{
		numWorkers: numWorkers,
		jobQueue:   make(chan func()),
	}

	ex.start()

	return ex, nil
}

func (ex *Executor) start() {
	for i := 0; i < ex.numWorkers; i++ {
		ex.wg.Add(1)
		go func() {
			defer ex.wg.Done()
			for job := range ex.jobQueue {
				job()
			}
		}()
	}
}

func (ex *Executor) Workers() int {
	return ex.numWorkers
}

// Submit hands job to an idle worker. When every worker is busy, including
// when a job submits from inside the pool, or the pool has been shut down,
// the job runs inline on the caller.
func (ex *Executor) Submit(job func()) {
	ex.mu.RLock()
	if ex.stopped {
		ex.mu.RUnlock()
		job()
		return
	}
	select {
	case ex.jobQueue <- job:
		ex.mu.RUnlock()
	default:
		ex.mu.RUnlock()
		job()
	}
}

// Shutdown stops the workers once running jobs have finished.
func (ex *Executor) Shutdown() error {
	ex.mu.Lock()
	if ex.stopped {
		ex.mu.Unlock()
		return ErrExecutorStopped
	}
	ex.stopped = true
	close(ex.jobQueue)
	ex.mu.Unlock()

	ex.wg.Wait()
	return nil
}
