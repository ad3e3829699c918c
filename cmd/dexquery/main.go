package main

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dexQuery/internal/chain"
	"dexQuery/internal/dex"
)

func main() {
	root := &cobra.Command{
		Use:          "dexquery",
		Short:        "Neutron dex and marketmap query client",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	queryCmd := &cobra.Command{
		Use:   "query",
		Short: "Run one query and print the normalized response",
		RunE:  runQuery,
	}

	addTransportFlags(queryCmd)
	queryCmd.Flags().String("kind", "", "query kind ("+strings.Join(dex.KindNames(), ", ")+")")
	queryCmd.Flags().String("request", "{}", "request body as JSON")
	queryCmd.Flags().String("expiration", "", "expiration for estimate_place_limit_order (unix seconds or RFC3339)")
	queryCmd.Flags().String("out", "", "output path, stdout when empty")

	root.AddCommand(queryCmd)

	decodeCmd := &cobra.Command{
		Use:   "decode",
		Short: "Normalize recorded wire responses offline",
		RunE:  runDecode,
	}

	decodeCmd.Flags().String("in", "", "input recorded responses JSONL")
	decodeCmd.Flags().String("out", "./data/normalized.jsonl", "output normalized responses JSONL")
	decodeCmd.Flags().String("errors", "./data/decode_errors.jsonl", "decode errors JSONL")
	decodeCmd.Flags().String("kind", "", "kind for lines that carry neither kind nor route")
	decodeCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(decodeCmd)

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Crawl every page of a list query into storage",
		RunE:  runSnapshot,
	}

	addTransportFlags(snapshotCmd)
	snapshotCmd.Flags().String("kind", "all_limit_order_tranche", "list kind to crawl")
	snapshotCmd.Flags().String("pair-id", "", "pair id for pair-scoped kinds (e.g. uatom<>untrn)")
	snapshotCmd.Flags().String("token-in", "", "token in for pair-scoped kinds")
	snapshotCmd.Flags().Uint64("page-limit", 100, "records per page")
	snapshotCmd.Flags().Uint64("max-pages", 0, "stop after this many pages, 0 means all")
	snapshotCmd.Flags().String("page-key", "", "start from this hex page key instead of the checkpoint")
	snapshotCmd.Flags().String("out", "./data/snapshot.jsonl", "output JSONL path")
	snapshotCmd.Flags().String("checkpoint", "./data/snapshot_checkpoint.json", "checkpoint file path")
	snapshotCmd.Flags().Bool("checkpoint-enabled", true, "enable checkpointing")
	snapshotCmd.Flags().String("pg-dsn", "", "Postgres DSN, enables the Postgres sink and cursor store")
	snapshotCmd.Flags().StringSlice("kafka-brokers", nil, "Kafka brokers (comma-separated), enables the Kafka sink")
	snapshotCmd.Flags().String("kafka-topic", "dex-snapshots", "Kafka topic")

	root.AddCommand(snapshotCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func addTransportFlags(cmd *cobra.Command) {
	cmd.Flags().String("grpc", "localhost:9090", "node gRPC endpoint")
	cmd.Flags().Bool("tls", false, "use TLS for the gRPC connection")
	cmd.Flags().Duration("request-timeout", 10*time.Second, "per-attempt request timeout")
	cmd.Flags().Int("max-retries", 5, "maximum retry attempts")
	cmd.Flags().Duration("retry-backoff", 500*time.Millisecond, "initial retry backoff")
	cmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
}

func newChainClient(target string, tls bool, timeout time.Duration, maxRetries int, backoff time.Duration, logger *zap.Logger) (*chain.Client, error) {
	return chain.NewClient(target, chain.Options{
		TLS:            tls,
		RequestTimeout: timeout,
		MaxRetries:     maxRetries,
		RetryBackoff:   backoff,
		Logger:         logger,
	})
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
