// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/nft-creator/internal/config"
	"github.com/MKhiriev/nft-creator/internal/logger"
	"github.com/MKhiriev/nft-creator/internal/store"
)

// Janitor removes upload files that outlived their request, for example
// after the process was killed mid-mint. Requests remove their own files, so
// on a healthy server a sweep finds nothing.
type Janitor struct {
	storage  store.UploadStorage
	recorder FilesCollectedRecorder

	interval time.Duration
	ttl      time.Duration

	logger *logger.Logger
}

func NewJanitor(storage store.UploadStorage, recorder FilesCollectedRecorder, cfg config.Workers, logger *logger.Logger) *Janitor {
	return &Janitor{
		storage:  storage,
		recorder: recorder,
		interval: cfg.JanitorInterval,
		ttl:      cfg.FileTTL,
		logger:   logger,
	}
}

// Run sweeps once immediately and then on every tick until ctx is done.
func (j *Janitor) Run(ctx context.Context) {
	j.logger.Info().
		Str("dir", j.storage.Dir()).
		Dur("interval", j.interval).
		Dur("ttl", j.ttl).
		Msg("upload janitor started")

	j.sweep(ctx)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("upload janitor stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *Janitor) sweep(ctx context.Context) int {
	removed, err := j.storage.RemoveStale(ctx, j.ttl)
	if err != nil && !errors.Is(err, context.Canceled) {
		j.logger.Err(err).Msg("error removing stale uploads")
	}

	if removed > 0 {
		j.logger.Info().Int("removed", removed).Msg("stale uploads removed")
	}
	if j.recorder != nil {
		j.recorder.RecordFilesCollected(removed)
	}

	return removed
}
