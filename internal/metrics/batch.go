package metrics

import (
	"context"
	"runtime"
	"sync"

	"github.com/veridex-labs/veridex/internal/utils/logger"
)

// BatchJob is one independent evaluation: a named score set.
type BatchJob struct {
	Name   string
	Scores ScoreSet
}

// BatchResult carries the outcome for the job at the same index.
type BatchResult struct {
	Name   string
	Result *Result
	Err    error
}

type batchOptions struct {
	workers int
}

type BatchOption func(*batchOptions)

// WithWorkers caps the evaluation worker pool. Values below 1 fall
// back to the default of GOMAXPROCS.
func WithWorkers(n int) BatchOption {
	return func(o *batchOptions) {
		o.workers = n
	}
}

// EvaluateBatch runs Evaluate over independent jobs on a fixed worker
// pool. Every evaluation is a pure function of its job, so the jobs
// need no synchronization beyond the pool itself. Results line up with
// jobs by index and each carries its own error. Cancelling the context
// stops feeding the pool; jobs never started report the context error.
func EvaluateBatch(ctx context.Context, jobs []BatchJob, priors []float64, normalize bool, opts ...BatchOption) []BatchResult {
	o := batchOptions{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	if o.workers > len(jobs) {
		o.workers = len(jobs)
	}

	logger.Sugar().Debugw("evaluating batch", "jobs", len(jobs), "workers", o.workers)

	results := make([]BatchResult, len(jobs))
	idx := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < o.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idx {
				job := jobs[i]
				res, err := Evaluate(job.Scores.Target, job.Scores.NonTarget, priors, normalize)
				results[i] = BatchResult{Name: job.Name, Result: res, Err: err}
			}
		}()
	}

feed:
	for i := range jobs {
		select {
		case <-ctx.Done():
			break feed
		case idx <- i:
		}
	}
	close(idx)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		for i := range results {
			if results[i].Result == nil && results[i].Err == nil {
				results[i] = BatchResult{Name: jobs[i].Name, Err: err}
			}
		}
	}
	return results
}
