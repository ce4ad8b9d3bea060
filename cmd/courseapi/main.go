package main

import (
	"context"
	"fmt"

	"github.com/opencampus/platform/internal/adapter"
	"github.com/opencampus/platform/internal/authz"
	"github.com/opencampus/platform/internal/config"
	myHTTP "github.com/opencampus/platform/internal/handler/http"
	"github.com/opencampus/platform/internal/logger"
	"github.com/opencampus/platform/internal/server"
	"github.com/opencampus/platform/internal/service"
	"github.com/opencampus/platform/internal/store"
	"github.com/opencampus/platform/internal/trust"
	"github.com/opencampus/platform/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("course-api")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	ctx := context.Background()

	storages := store.NewStorages()
	secrets := trust.SecretSource(trust.StaticSecretSource(cfg.Trust.PeerSecrets))

	// With a database configured, users and peer credentials live in
	// PostgreSQL; otherwise peer secrets come from static configuration.
	if cfg.Storage.DB.DSN != "" {
		db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error connecting to database")
		}

		if err := migrations.Migrate(db.DB); err != nil {
			log.Fatal().Err(err).Msg("error running migrations")
		}

		storages.UserRepository = store.NewUserRepository(db, log)
		storages.ServiceRegistry = store.NewServiceRegistry(db, log)
		secrets = store.NewRegistrySecretSource(storages.ServiceRegistry)
	}

	auth, err := trust.NewAuthClient(cfg.Trust, secrets, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating auth client")
	}

	authorizer, err := authz.NewAuthorizer(log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating authorizer")
	}

	payments, err := adapter.NewPaymentHTTPAdapter(cfg.Adapter, auth, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating payment adapter")
	}

	services := service.NewServices(storages, *cfg, payments, log)

	handler := myHTTP.NewHandler(services, auth, authorizer, cfg.App.IsDevelopment(), log)

	srv, err := server.NewServer(handler.CourseRoutes(), cfg.Server, log)
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
