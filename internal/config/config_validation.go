// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; the client view applies its own checks in
// [ClientConfig.validate] after defaults are filled in.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	// A token without a reachable server address cannot sync anything.
	// The reverse is fine: BaseURL with no token just means the account
	// has not been linked yet.
	if cfg.App.Token != "" && cfg.Adapter.BaseURL == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval == 0 || cfg.Workers.IdleTimeout == 0 || cfg.Workers.HeartbeatInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
