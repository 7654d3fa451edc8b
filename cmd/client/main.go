package main

import (
	"fmt"

	"github.com/peerfold/peerfold/internal/client"
	"github.com/peerfold/peerfold/internal/config"
	"github.com/peerfold/peerfold/internal/coordinator"
	"github.com/peerfold/peerfold/internal/engine"
	"github.com/peerfold/peerfold/internal/logger"
	"github.com/peerfold/peerfold/internal/store"
	"github.com/peerfold/peerfold/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("peerfold-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	syncEngine := engine.NewLocalEngine(cfg.Engine, log)
	clipboard := engine.NewClipboardMonitor(syncEngine, cfg.Engine.ClipboardPollInterval, log)

	coord := coordinator.New(storages.Session, syncEngine, log, cfg.Workers.NotificationBuffer)

	ui := tui.New(coord, log)

	var app client.Client
	app, err = client.NewApp(coord, ui, syncEngine, storages, clipboard, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
