package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ledger/internal/adapter"
	"github.com/MKhiriev/go-ledger/internal/client"
	"github.com/MKhiriev/go-ledger/internal/config"
	"github.com/MKhiriev/go-ledger/internal/logger"
	"github.com/MKhiriev/go-ledger/internal/service"
	"github.com/MKhiriev/go-ledger/internal/session"
	"github.com/MKhiriev/go-ledger/internal/tui"
	"github.com/MKhiriev/go-ledger/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewClientLogger("ledger-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	sess := session.New()

	ledgerAdapter, err := adapter.NewHTTPLedgerAdapter(cfg.Adapter, sess.Credentials(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("create ledger adapter")
	}

	services := service.NewClientServices(ledgerAdapter, sess, log)
	ui := tui.New(services.Controller, buildInfo, log)

	app, err := client.NewApp(ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
