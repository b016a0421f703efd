// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package main

import (
	"context"
	"fmt"

	"github.com/wisling/case-portal/internal/adapter"
	"github.com/wisling/case-portal/internal/config"
	"github.com/wisling/case-portal/internal/crypto"
	myHTTP "github.com/wisling/case-portal/internal/handler/http"
	"github.com/wisling/case-portal/internal/logger"
	"github.com/wisling/case-portal/internal/server"
	"github.com/wisling/case-portal/internal/service"
	"github.com/wisling/case-portal/internal/store"
	"github.com/wisling/case-portal/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("case-portal-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	secret, usedFallback, err := cfg.App.ResolveCaseIDSecret()
	if err != nil {
		log.Fatal().Err(err).Msg("no usable case identifier secret")
	}
	if usedFallback {
		log.Warn().Msg("running with the built-in case identifier secret; links are not confidential")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	codec := crypto.NewIdentifierCodec(secret)

	notifier := adapter.NewWebhookNotifier(cfg.Notifier, log)
	dispatcher := workers.NewEventDispatcher(notifier, cfg.Workers.EventQueueSize, log)
	backgroundWorkers := workers.NewWorkers(dispatcher)

	services := service.NewServices(storages, codec, dispatcher, cfg, log)

	handler := myHTTP.NewHandler(services, codec, log)

	srv, err := server.NewServer(handler, backgroundWorkers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
