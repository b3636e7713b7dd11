// Package tui implements the terminal front-end of the nft-creator client.
//
// A single bubbletea program lets the user enter a wallet address, pick a
// background and a shape, name the token and mint it through the server.
package tui

import (
	"context"

	"github.com/MKhiriev/nft-creator/internal/logger"
	"github.com/MKhiriev/nft-creator/internal/service"
	"github.com/MKhiriev/nft-creator/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	address   string
	logger    *logger.Logger
}

// New creates the UI. address pre-fills the wallet field.
func New(services *service.ClientServices, buildInfo models.AppBuildInfo, address string, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.MintService == nil {
		return nil, ErrNoMintService
	}
	if len(services.MintService.Backgrounds()) == 0 || len(services.MintService.Shapes()) == 0 {
		return nil, ErrNoAssets
	}

	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		address:   address,
		logger:    logger,
	}, nil
}

// Run shows the mint screen and blocks until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	model := newMintModel(ctx, t.services.MintService, t.buildInfo, t.address, t.logger)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
