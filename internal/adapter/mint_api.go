// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/nft-creator/internal/config"
	"github.com/MKhiriev/nft-creator/internal/logger"
	"github.com/MKhiriev/nft-creator/internal/utils"
	"github.com/MKhiriev/nft-creator/models"
	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

const (
	mintPath    = "/api/mintNFT"
	versionPath = "/api/version/"

	defaultImageFileName = "nft.png"
)

type httpMintAPIAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPMintAPIAdapter constructs an HTTP implementation of [MintAPIAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPMintAPIAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (MintAPIAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpMintAPIAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

// Mint implements [MintAPIAdapter]. It sends a multipart/form-data request
// with the "image", "name" and "address" fields.
func (h *httpMintAPIAdapter) Mint(ctx context.Context, submission models.MintSubmission) (models.MintResult, error) {
	fileName := submission.FileName
	if fileName == "" {
		fileName = defaultImageFileName
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetFileReader("image", fileName, bytes.NewReader(submission.Image)).
		SetMultipartFormData(map[string]string{
			"name":    submission.Name,
			"address": submission.Address,
		}).
		Post(mintPath)
	if err != nil {
		return models.MintResult{}, fmt.Errorf("mint request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MintResult{}, err
	}

	raw := resp.Body()
	if !gjson.ValidBytes(raw) {
		return models.MintResult{}, fmt.Errorf("%w: mint response is not JSON", ErrUnexpectedResponse)
	}

	h.logger.Info().Str("name", submission.Name).Msg("mint submitted")

	return models.MintResult{
		Raw:     json.RawMessage(raw),
		QueueID: gjson.GetBytes(raw, queueIDPath).String(),
	}, nil
}

// Version implements [MintAPIAdapter].
func (h *httpMintAPIAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
