// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package service

import (
	"context"

	"github.com/wisling/case-portal/internal/config"
	"github.com/wisling/case-portal/internal/logger"
)

// appInfoService is the concrete implementation of [AppInfoService].
type appInfoService struct {
	version string
	logger  *logger.Logger
}

// NewAppInfoService constructs an [AppInfoService] reporting the version
// from cfg.
func NewAppInfoService(cfg config.App, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		version: cfg.Version,
		logger:  logger,
	}
}

// Version implements [AppInfoService].
func (a *appInfoService) Version(_ context.Context) string {
	return a.version
}
