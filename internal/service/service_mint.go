// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/nft-creator/internal/adapter"
	"github.com/MKhiriev/nft-creator/internal/config"
	"github.com/MKhiriev/nft-creator/internal/logger"
	"github.com/MKhiriev/nft-creator/models"
)

type mintService struct {
	storage adapter.StorageAdapter
	relay   adapter.RelayAdapter

	cfg config.Mint

	logger *logger.Logger
}

// NewMintService builds the mint orchestrator. cfg is checked on every call,
// so an incomplete configuration fails requests instead of startup.
func NewMintService(storage adapter.StorageAdapter, relay adapter.RelayAdapter, cfg config.Mint, logger *logger.Logger) MintService {
	if cfg.Description == "" {
		cfg.Description = config.DefaultMintDescription
	}

	return &mintService{
		storage: storage,
		relay:   relay,
		cfg:     cfg,
		logger:  logger,
	}
}

func (s *mintService) Mint(ctx context.Context, req models.MintRequest) (models.MintResult, error) {
	if req.Image == nil || strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Address) == "" {
		return models.MintResult{}, ErrMissingRequiredFields
	}

	if err := s.cfg.Validate(); err != nil {
		return models.MintResult{}, fmt.Errorf("%w: %w", ErrMintNotConfigured, err)
	}

	data, err := req.Image.Bytes()
	if err != nil {
		return models.MintResult{}, fmt.Errorf("%w: %w", ErrReadingImage, err)
	}

	uri, err := s.storage.Upload(ctx, data)
	if err != nil {
		return models.MintResult{}, fmt.Errorf("%w: %w", ErrStorageUpload, err)
	}

	payload := models.MintToPayload{
		Receiver: req.Address,
		Metadata: models.NFTMetadata{
			Name:        req.Name,
			Description: s.cfg.Description,
			Image:       uri,
		},
	}

	result, err := s.relay.MintTo(ctx, payload)
	if err != nil {
		// the image stays pinned; there is nothing to roll back
		return models.MintResult{}, fmt.Errorf("%w: %w", ErrRelayMint, err)
	}

	return result, nil
}
