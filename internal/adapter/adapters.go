package adapter

import (
	"fmt"

	"github.com/MKhiriev/nft-creator/internal/config"
	"github.com/MKhiriev/nft-creator/internal/logger"
)

// Adapters aggregates the outbound integrations of the server.
type Adapters struct {
	StorageAdapter StorageAdapter
	RelayAdapter   RelayAdapter
}

// NewAdapters creates the storage and relay adapters.
func NewAdapters(adapterCfg config.Adapter, mintCfg config.Mint, logger *logger.Logger) (*Adapters, error) {
	logger.Info().Msg("creating new adapters...")

	storage, err := NewStorageAdapter(adapterCfg, mintCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating storage adapter: %w", err)
	}

	return &Adapters{
		StorageAdapter: storage,
		RelayAdapter:   NewRelayAdapter(adapterCfg, mintCfg, logger),
	}, nil
}
