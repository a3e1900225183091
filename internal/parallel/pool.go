// Package parallel runs independent frame jobs on a fixed set of goroutines.
//
// Each edge pipeline is strictly sequential, one step at a time, but
// separate frames share no state, so a batch of frames can be spread over
// workers with one pipeline per job.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines for frame jobs.
//
// Each worker has its own queue and steals from the others when its queue
// is empty, which balances batches whose frames differ in size.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	// workers is the number of worker goroutines.
	workers int

	// queues holds per-worker job queues.
	queues []chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

// worker is the main loop for each worker goroutine.
func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]

	for {
		select {
		case <-p.done:
			p.drain(own)
			return
		case job := <-own:
			job()
		default:
			if job := p.steal(id); job != nil {
				job()
				continue
			}
			select {
			case <-p.done:
				p.drain(own)
				return
			case job := <-own:
				job()
			}
		}
	}
}

// drain runs every job left in queue.
func (p *WorkerPool) drain(queue chan func()) {
	for {
		select {
		case job := <-queue:
			job()
		default:
			return
		}
	}
}

// steal takes one job from another worker's queue, or returns nil.
func (p *WorkerPool) steal(self int) func() {
	for i := range p.workers {
		if i == self {
			continue
		}
		select {
		case job := <-p.queues[i]:
			return job
		default:
		}
	}
	return nil
}

// Run calls fn(i) for every i in [0, n) across the workers and waits for
// all calls to return. On a closed pool Run does nothing.
func (p *WorkerPool) Run(n int, fn func(i int)) {
	if n <= 0 || fn == nil || !p.running.Load() {
		return
	}

	var pending sync.WaitGroup
	pending.Add(n)

	for i := range n {
		job := func() {
			defer pending.Done()
			fn(i)
		}
		select {
		case p.queues[i%p.workers] <- job:
		case <-p.done:
			pending.Done()
		}
	}

	pending.Wait()
}

// Close stops accepting work, waits for queued jobs and stops the workers.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool is accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
