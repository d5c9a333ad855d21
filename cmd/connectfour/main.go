package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/Taniish2545/ConnectFour/internal/config"
	"github.com/Taniish2545/ConnectFour/internal/console"
	"github.com/Taniish2545/ConnectFour/internal/logger"
	"github.com/Taniish2545/ConnectFour/internal/telemetry"
)

func main() {
	os.Exit(run())
}

// run owns every deferred cleanup so they finish before the process exits.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logOut, closeLog, err := logger.Destination(cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to open log destination: %v", err)
	}
	defer closeLog()
	logger.Init(logOut, cfg.SlogLevel())

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(ctx, telemetry.Options{
		ServiceName: cfg.ServiceName,
		Endpoint:    cfg.OTLPEndpoint,
	})
	if err != nil {
		slog.Error("failed to initialize telemetry", "error", err)
		return 1
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			slog.Error("Error shutting down telemetry", "error", err)
		}
	}()

	seed := cfg.RandomSeed()
	slog.InfoContext(ctx, "Starting Connect Four", "bot.difficulty", cfg.BotDifficulty, "bot.delay", cfg.BotDelay, "random.seed", seed)

	app := console.NewApp(console.NewLineReader(os.Stdin), os.Stdout, rand.New(rand.NewPCG(seed, seed)), console.Options{
		BotDifficulty: cfg.BotDifficulty,
		BotDelay:      cfg.BotDelay,
	})
	if err := app.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			slog.Info("Interrupted, exiting")
			return 0
		}
		slog.Error("Game ended with error", "error", err)
		return 1
	}
	return 0
}
