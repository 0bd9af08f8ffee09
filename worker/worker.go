package worker

import (
	"runtime"
	"sync"

	"github.com/getsentry/sentry-go"
)

var workerQueue = make(chan func(), runtime.NumCPU())

func init() {
	for i := 0; i < runtime.NumCPU(); i++ {
		go worker()
	}
}

func worker() {
	for f := range workerQueue {
		run(f)
	}
}

// run executes f, reporting a panic to sentry instead of taking down the worker.
func run(f func()) {
	defer sentry.Recover()
	f()
}

// Submit queues f to run on the worker pool. To be used by a function that may be CPU intensive.
func Submit(f func()) {
	workerQueue <- f
}

// Run calls fn(i) for every i in [0, n) on the worker pool and waits for all calls to return. Run must not
// be called from a function that is itself running on the pool.
func Run(n int, fn func(i int)) {
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		Submit(func() {
			defer wg.Done()
			fn(i)
		})
	}
	wg.Wait()
}
