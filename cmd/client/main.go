// Command client is the Health Panda terminal client: an interactive UI when
// started without arguments, or a one-shot command such as "status".
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/health-panda/internal/adapter"
	"github.com/MKhiriev/health-panda/internal/client"
	"github.com/MKhiriev/health-panda/internal/config"
	"github.com/MKhiriev/health-panda/internal/crypto"
	"github.com/MKhiriev/health-panda/internal/logger"
	"github.com/MKhiriev/health-panda/internal/service"
	"github.com/MKhiriev/health-panda/internal/store"
	"github.com/MKhiriev/health-panda/internal/tui"
	"github.com/MKhiriev/health-panda/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	bootLog := logger.NewLogger("health-panda-client", os.Stderr)
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("health-panda-client", cfg.App.LogFile)

	sealer, err := crypto.NewSealer(cfg.App.StorageKey)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("create sealer")
	}

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, sealer, log)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("create local storage")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, storages.Credentials, log)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("create server adapter")
	}

	var nutrition adapter.NutritionAdapter
	if cfg.Nutrition.Enabled() {
		nutrition, err = adapter.NewNutritionAdapter(cfg.Nutrition, cfg.Adapter.RequestTimeout, log)
		if err != nil {
			bootLog.Fatal().Err(err).Msg("create nutrition adapter")
		}
	}

	services := service.NewClientServices(serverAdapter, nutrition, storages.Credentials, cfg.App.DemoMode, log)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg, buildInfo, log)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("init client app error")
	}

	runErr := app.Run()
	if err = storages.Close(); err != nil {
		log.Err(err).Msg("close local storage")
	}
	if runErr != nil {
		log.Err(runErr).Msg("client run error")
		fmt.Fprintln(os.Stderr, "error:", runErr)
		os.Exit(1)
	}
}
