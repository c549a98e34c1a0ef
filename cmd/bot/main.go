// Package main runs the Discord bot that plays simulated games on request.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/KirkDiggler/landlord/internal/config"
	"github.com/KirkDiggler/landlord/internal/handlers/discord"
	"github.com/KirkDiggler/landlord/internal/simulator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.DiscordToken == "" {
		logger.Fatal("DISCORD_TOKEN environment variable is required")
	}

	deps, err := simulator.Build(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("failed to build simulator", zap.Error(err))
	}
	defer deps.Close()

	runner, err := simulator.NewRunner(&simulator.Config{
		GameService: deps.GameService,
		Players:     cfg.Players,
		Logger:      logger.Named("runner"),
	})
	if err != nil {
		logger.Fatal("failed to create runner", zap.Error(err))
	}

	bot, err := discord.New(&discord.Config{
		Token:         cfg.DiscordToken,
		ApplicationID: cfg.ApplicationID,
		GuildID:       cfg.GuildID,
		Simulator:     runner,
		Reporter:      deps.Reporter,
		Repository:    deps.Repository,
		Logger:        logger.Named("discord"),
	})
	if err != nil {
		logger.Fatal("failed to create Discord bot", zap.Error(err))
	}

	if err := bot.Start(); err != nil {
		logger.Fatal("failed to start Discord bot", zap.Error(err))
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		logger.Error("error stopping bot", zap.Error(err))
	}

	logger.Info("bot has been shut down")
}
