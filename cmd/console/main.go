package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/ersoy/studentms/internal/bootstrap"
	"github.com/ersoy/studentms/internal/console"
	"github.com/ersoy/studentms/internal/pkg/logger"
)

func main() {
	// Load .env file if present; real environment variables take precedence
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Msg("Failed to load .env file")
	}

	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	dbPool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to setup database")
		os.Exit(1)
	}
	if dbPool != nil {
		defer dbPool.Close()
	}

	deps, err := bootstrap.BuildDependencies(cfg, dbPool, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to setup dependencies")
		os.Exit(1)
	}

	menu := console.NewMenu(deps.StudentService, os.Stdin, os.Stdout)
	menu.Run(context.Background())
}
