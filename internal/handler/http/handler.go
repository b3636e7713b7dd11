package http

import (
	"github.com/MKhiriev/nft-creator/internal/config"
	"github.com/MKhiriev/nft-creator/internal/logger"
	"github.com/MKhiriev/nft-creator/internal/metrics"
	"github.com/MKhiriev/nft-creator/internal/service"
	"github.com/MKhiriev/nft-creator/internal/store"
)

type Handler struct {
	services *service.Services
	uploads  store.UploadStorage
	metrics  *metrics.Metrics

	maxUploadSize  int64
	allowedOrigins []string

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. metrics may be nil, in which case
// neither request instrumentation nor /metrics is mounted.
func NewHandler(services *service.Services, storages *store.Storages, metrics *metrics.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	h := &Handler{
		services:       services,
		metrics:        metrics,
		maxUploadSize:  cfg.MaxUploadSize,
		allowedOrigins: cfg.AllowedOrigins,
		logger:         logger,
	}
	if storages != nil {
		h.uploads = storages.UploadStorage
	}

	return h
}
