package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-sales-keeper/internal/adapter"
	"github.com/MKhiriev/go-sales-keeper/internal/client"
	"github.com/MKhiriev/go-sales-keeper/internal/config"
	"github.com/MKhiriev/go-sales-keeper/internal/logger"
	"github.com/MKhiriev/go-sales-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	log := logger.NewClientLogger("go-sales-client")

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return 2
	}

	leveled, err := log.WithLevel(cfg.LogLevel)
	if err != nil {
		log.Error().Err(err).Msg("invalid log level")
		return 2
	}
	log = leveled

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Debug().Stringer("build", info).Msg("go-sales-client")

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("create server adapter")
		return 2
	}
	serverAdapter.SetToken(cfg.Token)

	app, err := client.NewApp(serverAdapter, os.Stdin, os.Stdout, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err = app.Run(ctx, args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if adapter.IsAuthError(err) {
			fmt.Fprintln(os.Stderr, "log in again and export the printed token as CLIENT_TOKEN")
		}
		if errors.Is(err, client.ErrNoCommand) || errors.Is(err, client.ErrUnknownCommand) {
			return 2
		}
		return 1
	}
	return 0
}
