// Package main provides the cleaner command that splits the zipped campaign
// extracts into client, campaign and economics tables.
package main

import (
	"fmt"
	"os"

	"campaignetl/internal/config"
	"campaignetl/internal/logger"
	"campaignetl/internal/pipeline"
	"campaignetl/internal/report"
)

func main() {
	log := logger.NewLogger(config.DefaultLogLevel)

	cfg, err := config.LoadOrDefault(config.DefaultPath)
	if err != nil {
		log.Error("Failed to load configuration", "path", config.DefaultPath, "error", err)
		os.Exit(1)
	}

	log.SetLevel(cfg.Logging.Level)
	log.Info("Starting campaign cleaner", "config", cfg.String())

	res, err := pipeline.Run(cfg, log)
	if err != nil {
		log.Error("Run failed", "error", err)
		os.Exit(1)
	}

	fmt.Print(report.Summary(res))
}
