package main

import (
	"SimpleChatbot/internal/config"
	"SimpleChatbot/pkg/log"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn(log.Fields{"error": err.Error()}, "Error loading .env file")
	}

	logger := log.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(log.Fields{"error": err.Error()}, "Invalid configuration")
	}

	log.Debug(log.Fields{
		"keyword_strategy": cfg.KeywordStrategy,
		"history_backend":  cfg.HistoryBackend,
	}, "Configuration loaded")

	if cfg.UsesDefaultSecret() {
		logger.Warn("SESSION_SECRET is not set, using the built-in default")
	}

	fiberApp := config.NewFiber(logger, cfg.Debug)

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithConfig(cfg),
		config.WithValidator(config.NewValidator()),
		config.WithUtils(),
		config.WithMiddleware(),
		config.WithGenerator(),
		config.WithHistoryRepository(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	log.Info(log.Fields{"addr": cfg.Addr()}, "Server listening")

	<-sigChan
	logger.Info("Shutting down server...")

	if err := server.Shutdown(10 * time.Second); err != nil {
		log.Error(log.Fields{"error": err.Error()}, "Error during shutdown")
	}
}
