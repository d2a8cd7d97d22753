// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] can be used to
// start the server.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key, issuer and duration are required", ErrInvalidAppConfigs)
	}

	if cfg.App.MigrationWindow <= 0 {
		return fmt.Errorf("%w: migration window must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Adapter.Identity.URL != "" && cfg.Adapter.Identity.PublicKey == "" {
		return fmt.Errorf("%w: identity provider public key is required when its URL is set", ErrInvalidAdapterConfigs)
	}

	if cfg.Adapter.Statistics.URL == "" || cfg.Adapter.Statistics.Country == "" {
		return fmt.Errorf("%w: statistics URL and country are required", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.StatisticsRefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
