package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/MKhiriev/go-diary-keeper/internal/config"
	"github.com/MKhiriev/go-diary-keeper/internal/handler"
	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/server"
	"github.com/MKhiriev/go-diary-keeper/internal/service"
	"github.com/MKhiriev/go-diary-keeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("go-diary-server")

	args := os.Args[1:]
	if len(args) > 0 && args[0] == "token" {
		if err := printToken(args[1:]); err != nil {
			log.Fatal().Err(err).Msg("token command failed")
		}
		return
	}

	cfg, err := config.GetServerConfig(args)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if buildVersion != "" {
		cfg.App.Version = buildVersion
	}

	printBuildInfo()

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// printToken signs a bearer token for the user ID in args[0] and prints it.
// The remaining args are parsed as server config.
func printToken(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: server token <user-id> [flags]")
	}

	userID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || userID <= 0 {
		return fmt.Errorf("invalid user id %q", args[0])
	}

	cfg, err := config.GetServerConfig(args[1:])
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	auth, err := service.NewAuthService(cfg.App, logger.Nop())
	if err != nil {
		return err
	}

	token, err := auth.CreateToken(context.Background(), userID)
	if err != nil {
		return err
	}

	fmt.Println(token.String())
	return nil
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
