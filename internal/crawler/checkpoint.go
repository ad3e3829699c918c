package crawler

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// CursorStore persists the page cursor of a named crawl.
type CursorStore interface {
	LoadCursor(ctx context.Context, name string) (nextKey []byte, page uint64, ok bool, err error)
	SaveCursor(ctx context.Context, name string, nextKey []byte, page uint64) error
}

// Checkpoint tracks the next page to fetch.
type Checkpoint struct {
	Name      string        `json:"name"`
	NextKey   hexutil.Bytes `json:"next_key"`
	Page      uint64        `json:"page"`
	UpdatedAt string        `json:"updated_at"`
}

// CheckpointStore persists checkpoints to disk.
type CheckpointStore struct {
	path    string
	enabled bool
}

func NewCheckpointStore(path string, enabled bool) *CheckpointStore {
	return &CheckpointStore{path: path, enabled: enabled}
}

func (c *CheckpointStore) Load() (Checkpoint, bool, error) {
	if !c.enabled {
		return Checkpoint{}, false, nil
	}

	stat, err := os.Stat(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Checkpoint{}, false, nil
		}
		return Checkpoint{}, false, fmt.Errorf("stat checkpoint: %w", err)
	}
	if stat.IsDir() {
		return Checkpoint{}, false, fmt.Errorf("checkpoint path is a directory")
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return Checkpoint{}, false, fmt.Errorf("read checkpoint: %w", err)
	}

	var cp Checkpoint
	if err := json.Unmarshal(data, &cp); err != nil {
		return Checkpoint{}, false, fmt.Errorf("parse checkpoint: %w", err)
	}

	return cp, true, nil
}

func (c *CheckpointStore) Save(cp Checkpoint) error {
	if !c.enabled {
		return nil
	}

	dir := filepath.Dir(c.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create checkpoint dir: %w", err)
		}
	}

	cp.UpdatedAt = time.Now().UTC().Format(time.RFC3339Nano)
	data, err := json.Marshal(cp)
	if err != nil {
		return fmt.Errorf("marshal checkpoint: %w", err)
	}

	tmpPath := c.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write checkpoint tmp: %w", err)
	}
	if err := os.Rename(tmpPath, c.path); err != nil {
		return fmt.Errorf("rename checkpoint: %w", err)
	}

	return nil
}

// LoadCursor returns the saved cursor when the checkpoint belongs to name.
func (c *CheckpointStore) LoadCursor(_ context.Context, name string) ([]byte, uint64, bool, error) {
	cp, ok, err := c.Load()
	if err != nil || !ok || cp.Name != name {
		return nil, 0, false, err
	}
	return cp.NextKey, cp.Page, true, nil
}

func (c *CheckpointStore) SaveCursor(_ context.Context, name string, nextKey []byte, page uint64) error {
	return c.Save(Checkpoint{Name: name, NextKey: nextKey, Page: page})
}
