package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dexQuery/internal/config"
	"dexQuery/internal/crawler"
	"dexQuery/internal/dex"
	"dexQuery/internal/storage"
	"dexQuery/internal/storage/kafka"
	"dexQuery/internal/storage/postgres"
)

func runSnapshot(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadSnapshot(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.Out == "" {
		return fmt.Errorf("output path is required")
	}

	var startKey []byte
	if cfg.PageKey != "" {
		startKey, err = hexutil.Decode(cfg.PageKey)
		if err != nil {
			return fmt.Errorf("parse page key: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	chainClient, err := newChainClient(cfg.GRPC, cfg.TLS, cfg.RequestTimeout, cfg.MaxRetries, cfg.RetryBackoff, logger)
	if err != nil {
		return fmt.Errorf("connect grpc: %w", err)
	}
	defer chainClient.Close()

	target := crawler.Target{Kind: cfg.Kind, PairID: cfg.PairID, TokenIn: cfg.TokenIn}
	fetch, err := crawler.NewFetcher(dex.NewQuerier(chainClient), target)
	if err != nil {
		return err
	}

	sinks := storage.Multi{storage.NewJsonlStorage(cfg.Out)}
	var cursors crawler.CursorStore = crawler.NewCheckpointStore(cfg.Checkpoint, cfg.CheckpointEnabled)

	if cfg.PGDSN != "" {
		store, err := postgres.NewStore(ctx, cfg.PGDSN)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer store.Close()
		if err := store.EnsureSchema(ctx); err != nil {
			return err
		}
		sinks = append(sinks, store)
		if cfg.CheckpointEnabled {
			cursors = store
		}
	}

	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
		if err != nil {
			return err
		}
		defer producer.Close()
		sinks = append(sinks, producer)
	}

	runner := crawler.NewRunner(crawler.RunConfig{
		Name:      target.Name(),
		PageLimit: cfg.PageLimit,
		MaxPages:  cfg.MaxPages,
		StartKey:  startKey,
	}, fetch, sinks, cursors, logger)

	logger.Info("snapshot start",
		zap.String("grpc", cfg.GRPC),
		zap.String("kind", cfg.Kind),
		zap.String("pair_id", cfg.PairID),
		zap.String("token_in", cfg.TokenIn),
		zap.Uint64("page_limit", cfg.PageLimit),
		zap.Uint64("max_pages", cfg.MaxPages),
		zap.String("out", cfg.Out),
		zap.Bool("postgres", cfg.PGDSN != ""),
		zap.Strings("kafka_brokers", cfg.KafkaBrokers),
		zap.Bool("checkpoint_enabled", cfg.CheckpointEnabled),
	)

	return runner.Run(ctx)
}
