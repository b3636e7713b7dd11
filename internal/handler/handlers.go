package handler

import (
	"github.com/MKhiriev/nft-creator/internal/config"
	"github.com/MKhiriev/nft-creator/internal/handler/http"
	"github.com/MKhiriev/nft-creator/internal/logger"
	"github.com/MKhiriev/nft-creator/internal/metrics"
	"github.com/MKhiriev/nft-creator/internal/service"
	"github.com/MKhiriev/nft-creator/internal/store"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, storages *store.Storages, metrics *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}
	if storages == nil || storages.UploadStorage == nil {
		return nil, errNoUploadStorage
	}

	return &Handlers{
		HTTP: http.NewHandler(services, storages, metrics, cfg, logger),
	}, nil
}
