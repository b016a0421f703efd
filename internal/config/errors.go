// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingCaseIDSecret indicates that no identifier encryption secret
	// was configured and the insecure built-in fallback was not explicitly
	// allowed.
	ErrMissingCaseIDSecret = errors.New("case id secret is not configured")

	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, a missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidNotifierConfigs indicates invalid webhook notifier settings
	// (for example, a negative retry count).
	ErrInvalidNotifierConfigs = errors.New("invalid notifier configuration")
)
