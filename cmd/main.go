package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/selivandex/crypto-sentiment/internal/adapters/config"
	"github.com/selivandex/crypto-sentiment/internal/adapters/ingest"
	"github.com/selivandex/crypto-sentiment/internal/aggregate"
	"github.com/selivandex/crypto-sentiment/internal/export"
	"github.com/selivandex/crypto-sentiment/internal/pipeline"
	"github.com/selivandex/crypto-sentiment/internal/sentiment"
	"github.com/selivandex/crypto-sentiment/pkg/logger"
	"github.com/selivandex/crypto-sentiment/pkg/worker"
)

func main() {
	// Setup signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("sentiment pipeline starting",
		zap.String("input", cfg.Pipeline.InputPath),
		zap.String("output", cfg.Pipeline.OutputPath),
		zap.Int("workers", cfg.Pipeline.Workers),
	)

	scorer, err := sentiment.NewScorer(sentiment.NewVaderClassifier())
	if err != nil {
		return fmt.Errorf("failed to initialize scorer: %w", err)
	}

	runner := pipeline.NewRunner(
		ingest.NewReader(),
		pipeline.NewFilter(cfg.Pipeline.Language),
		scorer,
		aggregate.NewAggregator(cfg.Pipeline.ZeroFill),
		export.WriteSeriesFile,
		worker.NewPool(cfg.Pipeline.Workers),
		cfg.Pipeline.TrendPeriod,
	)

	if _, err := runner.Run(ctx, cfg.Pipeline.InputPath, cfg.Pipeline.OutputPath); err != nil {
		return err
	}

	return nil
}
