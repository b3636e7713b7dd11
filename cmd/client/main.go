package main

import (
	"fmt"

	"github.com/MKhiriev/nft-creator/internal/adapter"
	"github.com/MKhiriev/nft-creator/internal/client"
	"github.com/MKhiriev/nft-creator/internal/compositor"
	"github.com/MKhiriev/nft-creator/internal/config"
	"github.com/MKhiriev/nft-creator/internal/logger"
	"github.com/MKhiriev/nft-creator/internal/service"
	"github.com/MKhiriev/nft-creator/internal/tui"
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

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("nft-creator-client", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("nft-creator-client", cfg.App.LogLevel)

	mintAPI, err := adapter.NewHTTPMintAPIAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create mint api adapter")
	}

	imageCompositor, err := compositor.NewCompositor(cfg.Client, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create compositor")
	}

	services := service.NewClientServices(imageCompositor, mintAPI)

	ui, err := tui.New(services, buildInfo, cfg.Client.WalletAddress, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
