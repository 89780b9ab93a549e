package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"orderflow/cmd"
	"orderflow/internal/adapters/out/postgres/journalrepo"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := cmd.NewLogger(os.Stderr, config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var gormDB *gorm.DB
	if config.JournalDSN != "" {
		gormDB, err = journalrepo.Open(ctx, config.JournalDSN)
		if err != nil {
			log.Fatalf("Error connecting to journal database: %v", err)
		}
	}

	app, err := cmd.NewCompositionRoot(config, logger, gormDB, os.Stdout)
	if err != nil {
		log.Fatalf("Error wiring application: %v", err)
	}

	if err = app.Run(ctx); err != nil {
		log.Fatalf("Application stopped with error: %v", err)
	}
}
