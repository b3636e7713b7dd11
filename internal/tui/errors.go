// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/nft-creator/internal/adapter"
	"github.com/MKhiriev/nft-creator/internal/service"
)

var (
	ErrNoMintService = errors.New("client mint service is not configured")
	ErrNoAssets      = errors.New("no background or shape assets found")
)

// humanizeError turns a mint error into a line suitable for the status area.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrMintInFlight):
		return "A mint is already in progress"
	case errors.Is(err, service.ErrMissingRequiredFields):
		return "Fill in the wallet address and the name first"
	case errors.Is(err, adapter.ErrBadRequest):
		return "The server rejected the request: " + err.Error()
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the server is unavailable"
	}

	return err.Error()
}
