package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/pamorimsa/project1-cs50w/internal/config"
	"github.com/pamorimsa/project1-cs50w/internal/goodreads"
	"github.com/pamorimsa/project1-cs50w/internal/handler"
	"github.com/pamorimsa/project1-cs50w/internal/logger"
	"github.com/pamorimsa/project1-cs50w/internal/server"
	"github.com/pamorimsa/project1-cs50w/internal/service"
	"github.com/pamorimsa/project1-cs50w/internal/store"
	"github.com/pamorimsa/project1-cs50w/internal/web"
	"github.com/pamorimsa/project1-cs50w/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("bookshelf-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	if cfg.Session.SignKey == "" {
		cfg.Session.SignKey = ephemeralSignKey()
		log.Warn().Msg("no session sign key configured, generated an ephemeral one; sessions will not survive restarts")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	renderer, err := web.NewRenderer(log)
	if err != nil {
		log.Fatal().Err(err).Msg("error building template cache")
	}

	storages := store.NewStorages(db, log)
	ratings := goodreads.NewClient(cfg.Ratings, log)
	services := service.NewServices(storages, ratings, cfg.Session, log)
	handlers := handler.NewHandlers(services, renderer, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func ephemeralSignKey() string {
	key := make([]byte, 32)
	_, _ = rand.Read(key)
	return hex.EncodeToString(key)
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
