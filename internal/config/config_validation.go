// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The identifier secret rule is deliberately NOT checked here: whether the
// insecure fallback applies is resolved via [App.ResolveCaseIDSecret] at
// startup so that the caller can log the fallback warning.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Notifier.RetryCount < 0 {
		return ErrInvalidNotifierConfigs
	}

	return nil
}
