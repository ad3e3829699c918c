package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "dexquery.yaml")
	if err := os.WriteFile(cfgPath, []byte("grpc: node.example:9090\nkind: params\nmax-retries: 2\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("DEXQUERY_MAX_RETRIES", "7")

	flags := pflag.NewFlagSet("query", pflag.ContinueOnError)
	flags.String("kind", "", "")
	if err := flags.Parse([]string{"--kind", "pool_by_id"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := Load(cfgPath, flags)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GRPC != "node.example:9090" {
		t.Fatalf("expected grpc from file, got %q", cfg.GRPC)
	}
	if cfg.Kind != "pool_by_id" {
		t.Fatalf("expected kind from flag, got %q", cfg.Kind)
	}
	if cfg.MaxRetries != 7 {
		t.Fatalf("expected max retries from env, got %d", cfg.MaxRetries)
	}
	if cfg.RequestTimeout != 10*time.Second || cfg.Request != "{}" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadSnapshotBrokers(t *testing.T) {
	t.Setenv("DEXQUERY_KAFKA_BROKERS", " kafka-1:9092, ,kafka-2:9092 ")

	cfg, err := LoadSnapshot("", nil)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	want := []string{"kafka-1:9092", "kafka-2:9092"}
	if !reflect.DeepEqual(cfg.KafkaBrokers, want) {
		t.Fatalf("expected %v, got %v", want, cfg.KafkaBrokers)
	}
	if cfg.Kind != "all_limit_order_tranche" || cfg.PageLimit != 100 || !cfg.CheckpointEnabled {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadDecodeMissingConfigFile(t *testing.T) {
	if _, err := LoadDecode(filepath.Join(t.TempDir(), "missing.yaml"), nil); err == nil {
		t.Fatalf("expected error for explicit missing config file")
	}
}

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		input string
		want  int64
	}{
		{"", 0},
		{"1700000000", 1700000000},
		{"-5", -5},
		{"2023-06-01T12:00:00Z", 1685620800},
	}
	for _, tc := range cases {
		got, err := ParseTimestamp(tc.input)
		if err != nil {
			t.Fatalf("ParseTimestamp(%q): %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("ParseTimestamp(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
	if _, err := ParseTimestamp("yesterday"); err == nil {
		t.Fatalf("expected error")
	}
}
