package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/nft-creator/internal/logger"
	"github.com/MKhiriev/nft-creator/internal/service"
)

// UI is the interactive front-end driven by App.
type UI interface {
	Run(ctx context.Context) error
}

var _ Client = (*App)(nil)

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errIncompleteApp
	}

	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run shows the UI until the user quits or the process is signalled.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.logger.Info().Msg("client started")

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	if a.services.MintService.InFlight() {
		a.logger.Warn().Msg("client closed while a mint was in flight")
	}
	a.logger.Info().Msg("client stopped")

	return nil
}
