package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-sales-keeper/internal/config"
	"github.com/MKhiriev/go-sales-keeper/internal/gate"
	"github.com/MKhiriev/go-sales-keeper/internal/logger"
	"github.com/MKhiriev/go-sales-keeper/internal/store"
)

type Workers struct {
	workers []Worker

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWorkers registers the server's background workers.
func NewWorkers(storages *store.Storages, g *gate.Gate, cfg config.Workers, log *logger.Logger) *Workers {
	return &Workers{workers: []Worker{
		NewLegacyEncryptionWorker(storages.CustomerRepository, storages.PaymentMethodRepository, g, cfg, log),
	}}
}

// Start launches every worker in its own goroutine. A previous run is
// stopped first. Workers exit when ctx is cancelled or Stop is called.
func (w *Workers) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.mu.Unlock()

	for _, worker := range w.workers {
		w.wg.Add(1)
		go func(worker Worker) {
			defer w.wg.Done()
			worker.Run(runCtx)
		}(worker)
	}
}

// Stop cancels the running workers and blocks until all of them returned.
// Safe to call when nothing runs.
func (w *Workers) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
