// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer clients for the external services
// nft-creator talks to.
//
// The server side uses [StorageAdapter] to pin images on IPFS and
// [RelayAdapter] to ask the transaction relay to mint a token. The terminal
// client uses [MintAPIAdapter] to submit composited images to the server.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrBadGateway] for 502).
package adapter

import (
	"context"

	"github.com/MKhiriev/nft-creator/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// StorageAdapter uploads files to content-addressed storage.
type StorageAdapter interface {
	// Upload pins data and returns its content-addressed URI
	// (e.g. "ipfs://<hash>/0").
	Upload(ctx context.Context, data []byte) (string, error)
}

// RelayAdapter talks to the transaction relay that holds the backend wallet.
type RelayAdapter interface {
	// MintTo queues an ERC-721 mint of payload.Metadata to payload.Receiver.
	// The relay's response body is returned untouched in [models.MintResult.Raw].
	MintTo(ctx context.Context, payload models.MintToPayload) (models.MintResult, error)
}

// MintAPIAdapter is the terminal client's view of the nft-creator server.
type MintAPIAdapter interface {
	// Mint posts a composited image with its name and recipient address to
	// the mint endpoint. Non-2xx answers are returned as errors carrying the
	// server's message.
	Mint(ctx context.Context, submission models.MintSubmission) (models.MintResult, error)

	// Version returns the server's application version.
	Version(ctx context.Context) (string, error)
}
