// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DSN == "" || strings.Contains(cfg.Storage.DSN, ":memory:") ||
		cfg.Storage.Namespace == "" || cfg.Storage.MaxEntries < 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 ||
		cfg.Adapter.LivenessTimeout <= 0 || !strings.HasPrefix(cfg.Adapter.LivenessPath, "/") {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.LinkPollInterval <= 0 || cfg.Workers.CleanupInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.APIToken == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
