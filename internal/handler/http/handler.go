// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package http

import (
	"github.com/wisling/case-portal/internal/crypto"
	"github.com/wisling/case-portal/internal/logger"
	"github.com/wisling/case-portal/internal/service"
)

type Handler struct {
	services *service.Services
	codec    crypto.IdentifierCodec

	logger *logger.Logger
}

func NewHandler(services *service.Services, codec crypto.IdentifierCodec, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		codec:    codec,
		logger:   logger,
	}
}
