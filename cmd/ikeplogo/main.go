// Package main is the entry point for the IKEP logo demo.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ikep/ikep-logo/internal/config"
	"github.com/ikep/ikep-logo/internal/demo"
	"github.com/ikep/ikep-logo/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== IKEP Logo ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// Create and run the demo
	d, err := demo.New(cfg)
	if err != nil {
		logger.Error("failed to create demo", zap.Error(err))
		os.Exit(1)
	}
	defer d.Close()

	if err := d.Run(); err != nil {
		logger.Error("demo error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("demo closed normally")
}
