// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/nft-creator/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=MintServiceWrapper

// MintService orchestrates a single mint: image upload to content-addressed
// storage followed by a relay mint-to call.
type MintService interface {
	// Mint validates req and the mint configuration, uploads the image and
	// asks the relay to mint it to req.Address. Calls are strictly
	// sequential and never retried.
	//
	// Errors wrap one of [ErrMissingRequiredFields], [ErrMintNotConfigured],
	// [ErrReadingImage], [ErrStorageUpload] or [ErrRelayMint].
	Mint(ctx context.Context, req models.MintRequest) (models.MintResult, error)
}

// AppInfoService reports static information about the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// MintServiceWrapper defines middleware composition for MintService.
// Implementations wrap an existing MintService to add behavior such as
// logging or metrics.
type MintServiceWrapper interface {
	Wrap(MintService) MintService // returns a decorated MintService applying additional behavior
}
