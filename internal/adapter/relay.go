// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MKhiriev/nft-creator/internal/config"
	"github.com/MKhiriev/nft-creator/internal/logger"
	"github.com/MKhiriev/nft-creator/internal/utils"
	"github.com/MKhiriev/nft-creator/models"
	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

const (
	backendWalletHeader = "x-backend-wallet-address"
	queueIDPath         = "result.queueId"
)

type engineRelayAdapter struct {
	client *utils.HTTPClient

	cfg config.Mint

	logger *logger.Logger
}

// NewRelayAdapter constructs a [RelayAdapter] for thirdweb Engine.
//
// The engine URL is resolved on every call rather than here, so the server
// can start with an incomplete mint configuration and report it per request.
func NewRelayAdapter(adapterCfg config.Adapter, mintCfg config.Mint, logger *logger.Logger) RelayAdapter {
	if mintCfg.Chain == "" {
		mintCfg.Chain = config.DefaultMintChain
	}

	return &engineRelayAdapter{
		client: utils.NewHTTPClient("", adapterCfg.RequestTimeout),
		cfg:    mintCfg,
		logger: logger,
	}
}

// MintTo implements [RelayAdapter]. It calls
// POST {engine}/contract/{chain}/{contract}/erc721/mint-to on behalf of the
// configured backend wallet.
func (e *engineRelayAdapter) MintTo(ctx context.Context, payload models.MintToPayload) (models.MintResult, error) {
	mintURL, err := e.mintToURL()
	if err != nil {
		return models.MintResult{}, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return models.MintResult{}, fmt.Errorf("encode mint-to payload: %w", err)
	}

	resp, err := e.client.R().
		SetContext(ctx).
		SetAuthToken(e.cfg.AccessToken).
		SetHeader(backendWalletHeader, e.cfg.BackendWallet).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(mintURL)
	if err != nil {
		return models.MintResult{}, fmt.Errorf("mint-to request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MintResult{}, fmt.Errorf("mint-to: %w", err)
	}

	raw := resp.Body()
	if !gjson.ValidBytes(raw) {
		return models.MintResult{}, fmt.Errorf("%w: mint-to response is not JSON", ErrUnexpectedResponse)
	}

	result := models.MintResult{
		Raw:     json.RawMessage(raw),
		QueueID: gjson.GetBytes(raw, queueIDPath).String(),
	}

	logger.FromContext(ctx).Debug().
		Str("queue_id", result.QueueID).
		Str("receiver", payload.Receiver).
		Msg("mint queued by relay")

	return result, nil
}

func (e *engineRelayAdapter) mintToURL() (string, error) {
	baseURL, err := normalizeBaseURL(e.cfg.EngineURL)
	if err != nil {
		return "", fmt.Errorf("invalid engine url: %w", err)
	}

	return fmt.Sprintf("%s/contract/%s/%s/erc721/mint-to",
		baseURL,
		url.PathEscape(e.cfg.Chain),
		url.PathEscape(e.cfg.ContractAddress),
	), nil
}
