package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-secure-data/internal/adapter"
	"github.com/MKhiriev/go-secure-data/internal/client"
	"github.com/MKhiriev/go-secure-data/internal/config"
	"github.com/MKhiriev/go-secure-data/internal/logger"
	"github.com/MKhiriev/go-secure-data/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := logger.NewClientLogger("secure-data-client", cfg.LogLevel)
	log.Debug().
		Stringer("build", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)).
		Msg("starting client")

	gateway, err := adapter.NewHTTPGatewayClient(cfg.Address, cfg.Timeout, cfg.HashKey, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create gateway client")
	}
	gateway.SetToken(cfg.Token)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(gateway, os.Stdout, cfg.Parallelism, log)
	if err = app.Run(ctx, args); err != nil {
		log.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}
