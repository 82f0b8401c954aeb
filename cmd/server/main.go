package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sales-keeper/internal/config"
	"github.com/MKhiriev/go-sales-keeper/internal/crypto"
	"github.com/MKhiriev/go-sales-keeper/internal/gate"
	myHTTP "github.com/MKhiriev/go-sales-keeper/internal/handler/http"
	"github.com/MKhiriev/go-sales-keeper/internal/logger"
	"github.com/MKhiriev/go-sales-keeper/internal/server"
	"github.com/MKhiriev/go-sales-keeper/internal/service"
	"github.com/MKhiriev/go-sales-keeper/internal/store"
	"github.com/MKhiriev/go-sales-keeper/internal/workers"
	"github.com/MKhiriev/go-sales-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Printf("go-sales-server %s\n", buildInfo)

	log := logger.NewLogger("go-sales-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.WithLevel(cfg.App.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = leveled

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.Version
	}

	secret, insecure := cfg.Encryption.Secret()
	if insecure {
		log.Error().Msg("ENCRYPTION_KEY is not set: using the well-known default key, stored sensitive data is NOT protected")
	}

	cipher, err := crypto.NewFieldCipher(secret, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating field cipher")
	}
	encryptionGate := gate.New(cipher, log)

	ctx := context.Background()
	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	services, err := service.NewServices(storages, encryptionGate, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	backgroundWorkers := workers.NewWorkers(storages, encryptionGate, cfg.Workers, log)
	backgroundWorkers.Start(ctx)

	srv, err := server.NewServer(myHTTP.NewHandler(services, log), cfg.Server, log, backgroundWorkers)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
