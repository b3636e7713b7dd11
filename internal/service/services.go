package service

import (
	"fmt"

	"github.com/MKhiriev/nft-creator/internal/adapter"
	"github.com/MKhiriev/nft-creator/internal/config"
	"github.com/MKhiriev/nft-creator/internal/logger"
)

type Services struct {
	MintService    MintService
	AppInfoService AppInfoService
}

// NewServices assembles the server services. The mint service is decorated
// with metrics (outermost) and logging.
func NewServices(adapters *adapter.Adapters, recorder MintRecorder, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	var mint MintService = NewMintService(adapters.StorageAdapter, adapters.RelayAdapter, cfg.Mint, logger)
	mint = NewMintLoggingService().Wrap(mint)
	if recorder != nil {
		mint = NewMintMetricsService(recorder).Wrap(mint)
	}

	return &Services{
		MintService:    mint,
		AppInfoService: appInfo,
	}, nil
}
