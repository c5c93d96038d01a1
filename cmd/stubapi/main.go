package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-port-ops/internal/config"
	"github.com/MKhiriev/go-port-ops/internal/handler"
	"github.com/MKhiriev/go-port-ops/internal/logger"
	"github.com/MKhiriev/go-port-ops/internal/server"
	"github.com/MKhiriev/go-port-ops/internal/stubapi"
	"github.com/MKhiriev/go-port-ops/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("port-stub-api")

	fs := pflag.NewFlagSet("stubapi", pflag.ExitOnError)
	config.RegisterStubFlags(fs)
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.GetStubConfig(fs)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("issuer", cfg.App.TokenIssuer).Msg("received configs")

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	var opts []stubapi.Option
	if cfg.Postgres.DSN != "" {
		db, err := stubapi.NewConnectPostgres(context.Background(), cfg.Postgres, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error connecting account database")
		}
		defer db.Close()
		opts = append(opts, stubapi.WithPostgres(db))
	}
	backend := stubapi.NewBackend(cfg.App, log, opts...)

	handlers, err := handler.NewHandlers(backend, buildInfo, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
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
