package workers

import (
	"context"
	"errors"
	"sync"

	"github.com/peerfold/peerfold/internal/logger"
)

// Workers runs a set of background workers concurrently and waits for all
// of them to stop.
type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

func NewWorkers(log *logger.Logger, workers ...Worker) *Workers {
	return &Workers{
		workers: workers,
		logger:  log,
	}
}

// Run starts every worker in its own goroutine and blocks until all have
// returned. A context cancellation is the normal shutdown path and is not
// reported as a failure.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup

	for _, worker := range w.workers {
		wg.Add(1)
		go func(worker Worker) {
			defer wg.Done()

			if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				w.logger.Err(err).Msg("background worker stopped with error")
			}
		}(worker)
	}

	wg.Wait()
}
