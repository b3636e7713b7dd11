package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/nft-creator/internal/config"
	"github.com/MKhiriev/nft-creator/internal/logger"
	"github.com/MKhiriev/nft-creator/internal/store"
)

type Workers struct {
	workers []Worker

	wg sync.WaitGroup
}

// NewWorkers creates the server's background workers. recorder may be nil.
func NewWorkers(storages *store.Storages, recorder FilesCollectedRecorder, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.JanitorInterval > 0 && storages != nil && storages.UploadStorage != nil {
		w.workers = append(w.workers, NewJanitor(storages.UploadStorage, recorder, cfg, logger))
	} else {
		logger.Info().Msg("upload janitor is disabled")
	}

	return w
}

// Run starts every worker in its own goroutine and returns immediately.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Go(func() {
			worker.Run(ctx)
		})
	}
}

// Wait blocks until every worker started by Run has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}
