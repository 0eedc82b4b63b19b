package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scriptlens/scriptlens/internal/enrich"
	"github.com/scriptlens/scriptlens/internal/util"
	"github.com/scriptlens/scriptlens/pkg/logger"
	"github.com/scriptlens/scriptlens/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// logger
	debug := util.GetEnvBool("DEBUG", false)
	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Prefix: "worker",
		Debug:  debug,
	})
	logger.Init(consoleLogger)

	// Init pgx client
	pgConn, err := pgxpool.New(ctx, util.GetEnv("DATABASE_URL"))
	if err != nil {
		logger.Fatal("Unable to connect to database", "err", err)
	}
	defer pgConn.Close()

	metadataClient := enrich.NewMetadataClient(enrich.NewMetadataClientParams{
		BaseURL: util.GetEnv("METADATA_API_URL"),
		APIKey:  util.GetEnv("METADATA_API_KEY"),
	})

	pollInterval := time.Duration(util.GetEnvNumeric("ENRICH_POLL_SECONDS", 30)) * time.Second
	logger.Info("Polling for unenriched scripts", "interval", pollInterval)

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		enriched, err := enrich.RunPass(ctx, pgConn, metadataClient)
		if errors.Is(err, context.Canceled) {
			break
		}
		if err != nil {
			logger.Error("Enrichment pass failed", "err", err)
		} else if enriched > 0 {
			logger.Info("Enrichment pass finished", "enriched", enriched)
		}

		select {
		case <-ctx.Done():
			logger.Info("Shutdown signal received, exiting...")
			return
		case <-ticker.C:
		}
	}

	logger.Info("Shutdown signal received, exiting...")
}
