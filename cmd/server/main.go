package main

import (
	"fmt"

	"github.com/MKhiriev/nft-creator/internal/adapter"
	"github.com/MKhiriev/nft-creator/internal/config"
	"github.com/MKhiriev/nft-creator/internal/handler"
	"github.com/MKhiriev/nft-creator/internal/logger"
	"github.com/MKhiriev/nft-creator/internal/metrics"
	"github.com/MKhiriev/nft-creator/internal/server"
	"github.com/MKhiriev/nft-creator/internal/service"
	"github.com/MKhiriev/nft-creator/internal/store"
	"github.com/MKhiriev/nft-creator/internal/workers"
	"github.com/MKhiriev/nft-creator/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("nft-creator-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("nft-creator-server", cfg.App.LogLevel)

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	// unset mint parameters fail each request, not startup
	if err = cfg.Mint.Validate(); err != nil {
		log.Warn().Err(err).Msg("mint is not configured, every mint request will fail")
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	adapters, err := adapter.NewAdapters(cfg.Adapter, cfg.Mint, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating adapters")
	}

	m := metrics.New()

	services, err := service.NewServices(adapters, m, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, storages, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	bgWorkers := workers.NewWorkers(storages, m, cfg.Workers, log)

	srv, err := server.NewServer(handlers, bgWorkers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
