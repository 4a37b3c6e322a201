// Package parallel runs independent jobs on a fixed set of workers.
// A pool with one worker runs every job inline on the caller's goroutine.
package parallel

import (
	"runtime"
	"sync"
)

type (
	// WorkerFunc schedules a job. It blocks while every worker is busy and
	// the backlog is full.
	WorkerFunc func(func())
	// WaitFunc blocks until every scheduled job has finished. done=true also
	// stops the workers, after which Do must not be called.
	WaitFunc func(done bool)
	// CancelFunc stops the workers once queued jobs drain.
	CancelFunc func()
)

// Pool bundles the scheduling functions of one worker set.
type Pool struct {
	wg      sync.WaitGroup // workers
	jobs    sync.WaitGroup // scheduled, unfinished jobs
	workers int
	Do      WorkerFunc
	Wait    WaitFunc
	Cancel  CancelFunc
}

// Start launches numWorkers workers; numWorkers < 1 means GOMAXPROCS.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		workers: numWorkers,
		Do: func(f func()) {
			f()
		},
		Wait:   func(bool) {},
		Cancel: func() {},
	}

	if numWorkers > 1 {
		workChan := make(chan func(), numWorkers)

		pool.wg.Add(numWorkers)
		for i := 0; i < numWorkers; i++ {
			go func() {
				defer pool.wg.Done()
				for f := range workChan {
					f()
					pool.jobs.Done()
				}
			}()
		}

		pool.Do = func(f func()) {
			pool.jobs.Add(1)
			workChan <- f
		}

		pool.Wait = func(done bool) {
			pool.jobs.Wait()
			if done {
				pool.Cancel()
				pool.wg.Wait()
			}
		}
		pool.Cancel = sync.OnceFunc(func() { close(workChan) })
	}

	return pool
}

// Workers returns the number of workers the pool was started with.
func (p *Pool) Workers() int { return p.workers }
