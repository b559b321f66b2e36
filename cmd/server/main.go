package main

import (
	"context"
	"os"

	"github.com/maasproduction/studio-api/internal/config"
	"github.com/maasproduction/studio-api/internal/logging"
	"github.com/maasproduction/studio-api/internal/server"
)

func main() {
	if os.Getenv("ENV") != "production" {
		os.Setenv("ENV", "development")
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logConfig := &logging.LogConfig{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}

	if err := logging.InitLogger(logConfig); err != nil {
		panic(err)
	}
	logger := logging.GetGlobalLogger()
	defer logger.Close()

	logger.Info("Starting server in %s mode", cfg.Environment)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := server.NewServer(cfg)
	if err := srv.Init(ctx); err != nil {
		logger.Error("Failed to initialize server: %v", err)
		os.Exit(1)
	}
	defer srv.Shutdown(context.Background())

	if err := srv.Start(); err != nil {
		logger.Error("Failed to start server: %v", err)
		os.Exit(1)
	}
}
