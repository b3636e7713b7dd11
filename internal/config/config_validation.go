// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants the server needs at startup.
//
// Mint parameters are deliberately not checked here; see [Mint.Validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}

	if cfg.Server.MaxUploadSize <= 0 {
		return fmt.Errorf("%w: max upload size must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Workers.JanitorInterval < 0 || cfg.Workers.FileTTL < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Client.AssetsDir == "" || cfg.Client.CanvasSize <= 0 {
		return ErrInvalidClientConfigs
	}

	return nil
}

// Validate reports whether every parameter required to mint a token is set.
//
// The returned error wraps [ErrMissingConfiguration] and names the missing
// environment variables.
func (m Mint) Validate() error {
	var missing []string

	for _, field := range []struct {
		name  string
		value string
	}{
		{"TW_ENGINE_URL", m.EngineURL},
		{"TW_ACCESS_TOKEN", m.AccessToken},
		{"TW_BACKEND_WALLET", m.BackendWallet},
		{"TW_CONTRACT_ADDRESS", m.ContractAddress},
		{"TW_SECRET_KEY", m.SecretKey},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingConfiguration, strings.Join(missing, ", "))
	}

	return nil
}
