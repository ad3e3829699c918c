package crawler

import (
	"context"
	"fmt"
	"path/filepath"
	"reflect"
	"testing"

	"dexQuery/internal/dex"
	"dexQuery/internal/model"
)

type memorySink struct {
	records []model.SnapshotRecord
}

func (m *memorySink) PutRecords(_ context.Context, records []model.SnapshotRecord) error {
	m.records = append(m.records, records...)
	return nil
}

// pagedFetcher serves ids in pages keyed by the first id of each page.
func pagedFetcher(ids []uint64, calls *[][]byte) Fetcher {
	return func(_ context.Context, page *model.PageRequest) ([]model.SnapshotRecord, *model.PageResponse, error) {
		*calls = append(*calls, page.Key)
		start := 0
		if len(page.Key) > 0 {
			start = int(page.Key[0])
		}
		end := start + int(page.Limit)
		if end > len(ids) {
			end = len(ids)
		}
		var records []model.SnapshotRecord
		for _, id := range ids[start:end] {
			records = append(records, model.SnapshotRecord{Kind: KindPoolMetadata, PoolMetadata: &model.PoolMetadata{ID: id}})
		}
		resp := &model.PageResponse{}
		if end < len(ids) {
			resp.NextKey = []byte{byte(end)}
		}
		return records, resp, nil
	}
}

func recordIDs(records []model.SnapshotRecord) []uint64 {
	var ids []uint64
	for _, r := range records {
		ids = append(ids, r.PoolMetadata.ID)
	}
	return ids
}

func TestRunnerWalksAllPages(t *testing.T) {
	var calls [][]byte
	sink := &memorySink{}
	cursors := NewCheckpointStore(filepath.Join(t.TempDir(), "cp.json"), true)
	runner := NewRunner(RunConfig{Name: "pools", PageLimit: 2}, pagedFetcher([]uint64{1, 2, 3, 4, 5}, &calls), sink, cursors, nil)

	if err := runner.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := recordIDs(sink.records); !reflect.DeepEqual(got, []uint64{1, 2, 3, 4, 5}) {
		t.Fatalf("unexpected ids %v", got)
	}
	if len(calls) != 3 {
		t.Fatalf("expected 3 fetches, got %d", len(calls))
	}
	if sink.records[4].Page != 3 || sink.records[0].CapturedAt == "" {
		t.Fatalf("records not stamped: %+v", sink.records[4])
	}

	key, _, ok, err := cursors.LoadCursor(context.Background(), "pools")
	if err != nil || !ok {
		t.Fatalf("expected saved cursor: %v %v", ok, err)
	}
	if len(key) != 0 {
		t.Fatalf("completed crawl should clear cursor, got %x", key)
	}
}

func TestRunnerResumesFromCheckpoint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cp.json")
	cursors := NewCheckpointStore(path, true)
	ids := []uint64{10, 11, 12, 13, 14}

	var calls [][]byte
	first := &memorySink{}
	if err := NewRunner(RunConfig{Name: "pools", PageLimit: 2, MaxPages: 1}, pagedFetcher(ids, &calls), first, cursors, nil).Run(context.Background()); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if got := recordIDs(first.records); !reflect.DeepEqual(got, []uint64{10, 11}) {
		t.Fatalf("unexpected first run ids %v", got)
	}

	cp, ok, err := cursors.Load()
	if err != nil || !ok {
		t.Fatalf("load checkpoint: %v %v", ok, err)
	}
	if cp.NextKey.String() != "0x02" || cp.Page != 1 {
		t.Fatalf("unexpected checkpoint %+v", cp)
	}

	second := &memorySink{}
	if err := NewRunner(RunConfig{Name: "pools", PageLimit: 2}, pagedFetcher(ids, &calls), second, cursors, nil).Run(context.Background()); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if got := recordIDs(second.records); !reflect.DeepEqual(got, []uint64{12, 13, 14}) {
		t.Fatalf("unexpected resumed ids %v", got)
	}
	if second.records[0].Page != 2 {
		t.Fatalf("expected page numbering to continue, got %d", second.records[0].Page)
	}
}

func TestRunnerIgnoresOtherCrawlCheckpoint(t *testing.T) {
	cursors := NewCheckpointStore(filepath.Join(t.TempDir(), "cp.json"), true)
	if err := cursors.SaveCursor(context.Background(), "other", []byte{0x04}, 2); err != nil {
		t.Fatalf("SaveCursor: %v", err)
	}

	var calls [][]byte
	sink := &memorySink{}
	if err := NewRunner(RunConfig{Name: "pools", PageLimit: 10}, pagedFetcher([]uint64{1, 2}, &calls), sink, cursors, nil).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(calls[0]) != 0 {
		t.Fatalf("expected crawl to start from the first page, got key %x", calls[0])
	}
}

func TestRunnerRejectsStuckCursor(t *testing.T) {
	stuck := func(context.Context, *model.PageRequest) ([]model.SnapshotRecord, *model.PageResponse, error) {
		return nil, &model.PageResponse{NextKey: []byte{0x01}}, nil
	}
	runner := NewRunner(RunConfig{Name: "x", PageLimit: 1, StartKey: []byte{0x01}}, stuck, &memorySink{}, nil, nil)
	if err := runner.Run(context.Background()); err == nil {
		t.Fatalf("expected error for repeating cursor")
	}
}

type pagedDispatcher struct {
	pages []string
	calls int
}

func (p *pagedDispatcher) Query(context.Context, string, []byte) ([]byte, error) {
	if p.calls >= len(p.pages) {
		return nil, fmt.Errorf("unexpected call %d", p.calls)
	}
	page := p.pages[p.calls]
	p.calls++
	return []byte(page), nil
}

func TestFetcherTickLiquidity(t *testing.T) {
	dispatcher := &pagedDispatcher{pages: []string{
		`{"tick_liquidity":[{"pool_reserves":{"key":{"trade_pair_id":{"maker_denom":"a","taker_denom":"b"},"tick_index_taker_to_maker":"1","fee":"5"},"reserves_maker_denom":"10"}}],"pagination":{"next_key":"AQ=="}}`,
		`{"tick_liquidity":[{"limit_order_tranche":{"key":{"trade_pair_id":{"maker_denom":"a","taker_denom":"b"},"tick_index_taker_to_maker":"2","tranche_key":"t"},"expiration_time":"0001-01-01T00:00:00Z"}}],"pagination":{}}`,
	}}
	fetch, err := NewFetcher(dex.NewQuerier(dispatcher), Target{Kind: KindTickLiquidity, PairID: "a<>b", TokenIn: "a"})
	if err != nil {
		t.Fatalf("NewFetcher: %v", err)
	}

	sink := &memorySink{}
	if err := NewRunner(RunConfig{Name: "liq", PageLimit: 1}, fetch, sink, nil, nil).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(sink.records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(sink.records))
	}
	if got := sink.records[0].Key(); got != "reserves/a/b/1/5" {
		t.Fatalf("unexpected key %s", got)
	}
	if got := sink.records[1].Key(); got != "tranche/a/b/2/t" {
		t.Fatalf("unexpected key %s", got)
	}
}

func TestNewFetcherValidatesTarget(t *testing.T) {
	q := dex.NewQuerier(&pagedDispatcher{})
	if _, err := NewFetcher(q, Target{Kind: KindLimitOrderTranches}); err == nil {
		t.Fatalf("expected error without pair")
	}
	if _, err := NewFetcher(q, Target{Kind: "params"}); err == nil {
		t.Fatalf("expected error for non-list kind")
	}
	if name := (Target{Kind: KindTickLiquidity, PairID: "a<>b", TokenIn: "a"}).Name(); name != "all_tick_liquidity/a<>b/a" {
		t.Fatalf("unexpected name %s", name)
	}
}
