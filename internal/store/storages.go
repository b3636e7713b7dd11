package store

import (
	"fmt"

	"github.com/MKhiriev/nft-creator/internal/config"
	"github.com/MKhiriev/nft-creator/internal/logger"
)

// Storages aggregates the server's local storages.
type Storages struct {
	UploadStorage UploadStorage
}

// NewStorages creates every storage configured in cfg.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	uploads, err := NewUploadStorage(cfg.Files, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating upload storage: %w", err)
	}

	return &Storages{UploadStorage: uploads}, nil
}
