package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dexQuery/internal/config"
	"dexQuery/internal/dex"
)

func runQuery(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.Kind == "" {
		return fmt.Errorf("query kind is required")
	}
	if _, ok := dex.LookupKind(cfg.Kind); !ok {
		return fmt.Errorf("unknown query kind: %s", cfg.Kind)
	}

	request, err := buildRequest(cfg.Kind, cfg.Request, cfg.Expiration)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	chainClient, err := newChainClient(cfg.GRPC, cfg.TLS, cfg.RequestTimeout, cfg.MaxRetries, cfg.RetryBackoff, logger)
	if err != nil {
		return fmt.Errorf("connect grpc: %w", err)
	}
	defer chainClient.Close()

	logger.Debug("query start", zap.String("grpc", cfg.GRPC), zap.String("kind", cfg.Kind))

	resp, err := dex.NewQuerier(chainClient).Run(ctx, cfg.Kind, request)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal response: %w", err)
	}
	out = append(out, '\n')

	if cfg.Out == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(cfg.Out, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Info("query complete", zap.String("kind", cfg.Kind), zap.String("out", cfg.Out))
	return nil
}

// buildRequest applies the --expiration convenience flag to the JSON request body.
func buildRequest(kind, body, expiration string) (json.RawMessage, error) {
	if expiration == "" {
		return json.RawMessage(body), nil
	}
	if kind != "estimate_place_limit_order" {
		return nil, fmt.Errorf("expiration only applies to estimate_place_limit_order")
	}
	seconds, err := config.ParseTimestamp(expiration)
	if err != nil {
		return nil, fmt.Errorf("parse expiration: %w", err)
	}

	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal([]byte(body), &fields); err != nil {
		return nil, fmt.Errorf("parse request: %w", err)
	}
	encoded, err := json.Marshal(seconds)
	if err != nil {
		return nil, err
	}
	fields["expiration_time"] = encoded
	return json.Marshal(fields)
}
