// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"fmt"

	"github.com/MKhiriev/nft-creator/internal/config"
	"github.com/MKhiriev/nft-creator/internal/logger"
	"github.com/MKhiriev/nft-creator/internal/utils"
	"github.com/MKhiriev/nft-creator/models"
	"github.com/goccy/go-json"
)

const (
	storageUploadPath = "/ipfs/upload"
	secretKeyHeader   = "x-secret-key"

	// storageFileName is the name of the single file inside the pinned
	// directory, which makes the resulting URI ipfs://<hash>/0.
	storageFileName = "0"
)

type ipfsStorageAdapter struct {
	client *utils.HTTPClient

	secretKey string

	logger *logger.Logger
}

// NewStorageAdapter constructs a [StorageAdapter] for the thirdweb IPFS
// upload API at adapterCfg.StorageURL, authenticated with mintCfg.SecretKey.
//
// Returns an error if the storage URL is empty or cannot be parsed.
func NewStorageAdapter(adapterCfg config.Adapter, mintCfg config.Mint, logger *logger.Logger) (StorageAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.StorageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid storage url: %w", err)
	}

	return &ipfsStorageAdapter{
		client:    utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		secretKey: mintCfg.SecretKey,
		logger:    logger,
	}, nil
}

// Upload implements [StorageAdapter]. The file is wrapped in a directory so
// the URI points at the file inside it.
func (s *ipfsStorageAdapter) Upload(ctx context.Context, data []byte) (string, error) {
	pinOptions, err := json.Marshal(models.StoragePinOptions{WrapWithDirectory: true})
	if err != nil {
		return "", fmt.Errorf("encode pin options: %w", err)
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader(secretKeyHeader, s.secretKey).
		SetFileReader("file", storageFileName, bytes.NewReader(data)).
		SetFormData(map[string]string{"pinataOptions": string(pinOptions)}).
		Post(storageUploadPath)
	if err != nil {
		return "", fmt.Errorf("storage upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("storage upload: %w", err)
	}

	var uploaded models.StorageUploadResponse
	if err = json.Unmarshal(resp.Body(), &uploaded); err != nil {
		return "", fmt.Errorf("%w: decode storage upload response: %w", ErrUnexpectedResponse, err)
	}
	if uploaded.IpfsHash == "" {
		return "", fmt.Errorf("%w: storage upload response has no IpfsHash", ErrUnexpectedResponse)
	}

	uri := "ipfs://" + uploaded.IpfsHash + "/" + storageFileName

	logger.FromContext(ctx).Debug().
		Str("uri", uri).
		Int("size", len(data)).
		Msg("image pinned to ipfs")

	return uri, nil
}
