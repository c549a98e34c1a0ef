// Package main runs batches of simulated games and prints the reports as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/KirkDiggler/landlord/internal/board"
	"github.com/KirkDiggler/landlord/internal/config"
	"github.com/KirkDiggler/landlord/internal/services/report"
	"github.com/KirkDiggler/landlord/internal/simulator"
)

func main() {
	var analyze bool
	var games int

	flag.BoolVar(&analyze, "analyze", false, "print rent-to-cost ratios for the standard board and exit")
	flag.IntVar(&games, "games", 0, "number of games to play (0 = LANDLORD_GAMES)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if games > 0 {
		cfg.Games = games
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if analyze {
		if err := printAnalysis(); err != nil {
			logger.Fatal("board analysis failed", zap.Error(err))
		}
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	deps, err := simulator.Build(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to build simulator", zap.Error(err))
	}
	defer deps.Close()

	runner, err := simulator.NewRunner(&simulator.Config{
		GameService: deps.GameService,
		Players:     cfg.Players,
		Logger:      logger,
	})
	if err != nil {
		logger.Fatal("failed to create runner", zap.Error(err))
	}

	output, err := runner.Run(ctx, &simulator.RunInput{Games: cfg.Games})
	if err != nil {
		logger.Fatal("simulation failed", zap.Error(err))
	}

	if err := printJSON(output); err != nil {
		logger.Fatal("failed to write output", zap.Error(err))
	}
}

func printAnalysis() error {
	squares, err := board.Standard()
	if err != nil {
		return err
	}

	analysis, err := report.New().AnalyzeBoard(&report.AnalyzeBoardInput{Squares: squares})
	if err != nil {
		return err
	}

	return printJSON(analysis)
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
