package workers

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// Workers runs a fixed set of workers, at most limit at a time.
type Workers struct {
	workers []Worker
	limit   int
}

// New returns a batch over workers. A limit below one runs them one by one.
func New(limit int, workers ...Worker) *Workers {
	if limit < 1 {
		limit = 1
	}
	return &Workers{workers: workers, limit: limit}
}

// Run starts every worker and waits for all of them. The returned slice
// holds each worker's error at the worker's index; the joined error is nil
// when all succeeded. One failing worker does not stop the others. Workers
// that reach their turn after ctx is cancelled are not run and get
// ctx.Err().
func (w *Workers) Run(ctx context.Context) ([]error, error) {
	errs := make([]error, len(w.workers))

	var g errgroup.Group
	g.SetLimit(w.limit)
	for i, worker := range w.workers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			errs[i] = worker.Run(ctx)
			return nil
		})
	}
	_ = g.Wait()

	return errs, errors.Join(errs...)
}
