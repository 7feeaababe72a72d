package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/wfunc/chaoscards/config"
	"github.com/wfunc/chaoscards/deck"
	"github.com/wfunc/chaoscards/logger"
	"github.com/wfunc/chaoscards/server"
)

func main() {
	// Initialize logger
	logger.Init()
	defer logger.Log.Sync()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Log.Fatalf("Failed to load configuration: %v", err)
	}

	// Load card decks (falls back to the built-in sets)
	src := deck.LoadSource(cfg.Decks.PromptPath, cfg.Decks.ResponsePath)
	logger.Log.Infof("Decks loaded: %d prompts, %d responses", len(src.Prompts), len(src.Responses))

	// Initialize Game Server
	gameServer := server.NewGameServer(cfg, src)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		logger.Log.Info("Shutting down")
		gameServer.Shutdown()
		os.Exit(0)
	}()

	// Start Server
	logger.Log.Infof("Starting game server on %s", cfg.Server.HTTPAddress)
	if err := gameServer.Start(); err != nil {
		logger.Log.Fatalf("Failed to start server: %v", err)
	}
}
