package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"dexQuery/internal/model"
)

func TestJsonlStorageAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "snapshot.jsonl")
	store := NewJsonlStorage(path)
	ctx := context.Background()

	first := []model.SnapshotRecord{{Kind: "all_pool_metadata", Page: 1, PoolMetadata: &model.PoolMetadata{ID: 1}}}
	second := []model.SnapshotRecord{{Kind: "all_pool_metadata", Page: 2, PoolMetadata: &model.PoolMetadata{ID: 2}}}
	if err := store.PutRecords(ctx, first); err != nil {
		t.Fatalf("PutRecords: %v", err)
	}
	if err := store.PutRecords(ctx, nil); err != nil {
		t.Fatalf("PutRecords empty: %v", err)
	}
	if err := store.PutRecords(ctx, second); err != nil {
		t.Fatalf("PutRecords: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer file.Close()

	var ids []uint64
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var record model.SnapshotRecord
		if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
			t.Fatalf("decode line: %v", err)
		}
		ids = append(ids, record.PoolMetadata.ID)
	}
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Fatalf("unexpected ids %v", ids)
	}
}

type recordingSink struct {
	batches int
	err     error
}

func (r *recordingSink) PutRecords(context.Context, []model.SnapshotRecord) error {
	r.batches++
	return r.err
}

func TestMultiStopsAtFirstFailure(t *testing.T) {
	boom := errors.New("boom")
	a, b, c := &recordingSink{}, &recordingSink{err: boom}, &recordingSink{}
	err := Multi{a, b, c}.PutRecords(context.Background(), []model.SnapshotRecord{{Kind: "x"}})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if a.batches != 1 || b.batches != 1 || c.batches != 0 {
		t.Fatalf("unexpected calls %d %d %d", a.batches, b.batches, c.batches)
	}
}
