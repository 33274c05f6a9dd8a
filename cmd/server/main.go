// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitrii Kuznetsov

package main

import (
	"context"
	"fmt"

	"github.com/dkuznetsov/legacy-keeper/internal/blob"
	"github.com/dkuznetsov/legacy-keeper/internal/config"
	"github.com/dkuznetsov/legacy-keeper/internal/credstore"
	httphandler "github.com/dkuznetsov/legacy-keeper/internal/handler/http"
	"github.com/dkuznetsov/legacy-keeper/internal/llm"
	"github.com/dkuznetsov/legacy-keeper/internal/logger"
	"github.com/dkuznetsov/legacy-keeper/internal/server"
	"github.com/dkuznetsov/legacy-keeper/internal/service"
	"github.com/dkuznetsov/legacy-keeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("legacy-keeper-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	credentials, err := credstore.Load(cfg.Credentials, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading credential store")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	blobs, err := blob.New(cfg.Storage.Blob, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating blob storage")
	}

	generator := llm.New(cfg.LLM, log)

	services := service.NewServices(storages, credentials, blobs, generator, *cfg, log)

	handler := httphandler.NewHandler(services, credentials.CookieName(), credentials.Expiry(), log)

	srv, err := server.NewServer(handler, cfg.Server, log)
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
