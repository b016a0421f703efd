// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package service

import (
	"github.com/wisling/case-portal/internal/config"
	"github.com/wisling/case-portal/internal/crypto"
	"github.com/wisling/case-portal/internal/logger"
	"github.com/wisling/case-portal/internal/store"
)

// Services aggregates every application service the transport layer depends
// on.
type Services struct {
	AccessService  AccessService
	PortalService  PortalService
	CaseService    CaseService
	AppInfoService AppInfoService
}

// NewServices wires all services to the given storages, identifier codec,
// and event publisher.
func NewServices(storages *store.Storages, codec crypto.IdentifierCodec, events EventPublisher, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	hasher := crypto.NewPasswordHasher()

	return &Services{
		AccessService:  NewAccessService(storages.PasswordSessionStore, logger),
		PortalService:  NewPortalService(storages.CompanyRepository, storages.PasswordSessionStore, hasher, logger),
		CaseService:    NewCaseService(storages.CaseRepository, storages.CompanyRepository, codec, events, logger),
		AppInfoService: NewAppInfoService(cfg.App, logger),
	}
}
