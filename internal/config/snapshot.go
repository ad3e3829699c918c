package config

import (
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// SnapshotConfig holds configuration for the snapshot command.
type SnapshotConfig struct {
	GRPC              string
	TLS               bool
	Kind              string
	PairID            string
	TokenIn           string
	PageLimit         uint64
	MaxPages          uint64
	PageKey           string
	Out               string
	Checkpoint        string
	CheckpointEnabled bool
	PGDSN             string
	KafkaBrokers      []string
	KafkaTopic        string
	RequestTimeout    time.Duration
	MaxRetries        int
	RetryBackoff      time.Duration
	LogLevel          string
}

// LoadSnapshot merges config file, environment variables, and flags into SnapshotConfig.
func LoadSnapshot(cfgFile string, flags *pflag.FlagSet) (SnapshotConfig, error) {
	v := viper.New()
	setTransportDefaults(v)
	v.SetDefault("kind", "all_limit_order_tranche")
	v.SetDefault("page-limit", uint64(100))
	v.SetDefault("out", "./data/snapshot.jsonl")
	v.SetDefault("checkpoint", "./data/snapshot_checkpoint.json")
	v.SetDefault("checkpoint-enabled", true)
	v.SetDefault("kafka-topic", "dex-snapshots")

	if err := readConfig(v, cfgFile, flags); err != nil {
		return SnapshotConfig{}, err
	}

	cfg := SnapshotConfig{
		GRPC:              v.GetString("grpc"),
		TLS:               v.GetBool("tls"),
		Kind:              v.GetString("kind"),
		PairID:            v.GetString("pair-id"),
		TokenIn:           v.GetString("token-in"),
		PageLimit:         v.GetUint64("page-limit"),
		MaxPages:          v.GetUint64("max-pages"),
		PageKey:           v.GetString("page-key"),
		Out:               v.GetString("out"),
		Checkpoint:        v.GetString("checkpoint"),
		CheckpointEnabled: v.GetBool("checkpoint-enabled"),
		PGDSN:             v.GetString("pg-dsn"),
		KafkaBrokers:      getStringSlice(v, "kafka-brokers"),
		KafkaTopic:        v.GetString("kafka-topic"),
		RequestTimeout:    v.GetDuration("request-timeout"),
		MaxRetries:        v.GetInt("max-retries"),
		RetryBackoff:      v.GetDuration("retry-backoff"),
		LogLevel:          v.GetString("log-level"),
	}

	return cfg, nil
}
