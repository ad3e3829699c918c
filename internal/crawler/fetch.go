package crawler

import (
	"context"
	"fmt"

	"dexQuery/internal/dex"
	"dexQuery/internal/model"
)

// Fetcher returns the records on one page and the pagination of the response.
type Fetcher func(ctx context.Context, page *model.PageRequest) ([]model.SnapshotRecord, *model.PageResponse, error)

// Kinds that can be crawled page by page.
const (
	KindLimitOrderTranches         = "all_limit_order_tranche"
	KindInactiveLimitOrderTranches = "all_inactive_limit_order_tranche"
	KindPoolMetadata               = "all_pool_metadata"
	KindTickLiquidity              = "all_tick_liquidity"
)

// Target selects what a crawl walks.
type Target struct {
	Kind    string
	PairID  string
	TokenIn string
}

// Name identifies the crawl in cursor storage.
func (t Target) Name() string {
	if t.PairID == "" && t.TokenIn == "" {
		return t.Kind
	}
	return fmt.Sprintf("%s/%s/%s", t.Kind, t.PairID, t.TokenIn)
}

// NewFetcher builds the page fetcher for target.
func NewFetcher(q *dex.Querier, target Target) (Fetcher, error) {
	switch target.Kind {
	case KindLimitOrderTranches:
		if err := target.requirePair(); err != nil {
			return nil, err
		}
		return func(ctx context.Context, page *model.PageRequest) ([]model.SnapshotRecord, *model.PageResponse, error) {
			resp, err := q.AllLimitOrderTranche(ctx, model.AllLimitOrderTrancheRequest{PairID: target.PairID, TokenIn: target.TokenIn, Pagination: page})
			if err != nil {
				return nil, nil, err
			}
			return trancheRecords(target.Kind, resp.LimitOrderTranche), resp.Pagination, nil
		}, nil
	case KindInactiveLimitOrderTranches:
		return func(ctx context.Context, page *model.PageRequest) ([]model.SnapshotRecord, *model.PageResponse, error) {
			resp, err := q.AllInactiveLimitOrderTranche(ctx, model.AllInactiveLimitOrderTrancheRequest{Pagination: page})
			if err != nil {
				return nil, nil, err
			}
			return trancheRecords(target.Kind, resp.InactiveLimitOrderTranche), resp.Pagination, nil
		}, nil
	case KindPoolMetadata:
		return func(ctx context.Context, page *model.PageRequest) ([]model.SnapshotRecord, *model.PageResponse, error) {
			resp, err := q.AllPoolMetadata(ctx, model.AllPoolMetadataRequest{Pagination: page})
			if err != nil {
				return nil, nil, err
			}
			records := make([]model.SnapshotRecord, len(resp.PoolMetadata))
			for i := range resp.PoolMetadata {
				records[i] = model.SnapshotRecord{Kind: target.Kind, PoolMetadata: &resp.PoolMetadata[i]}
			}
			return records, resp.Pagination, nil
		}, nil
	case KindTickLiquidity:
		if err := target.requirePair(); err != nil {
			return nil, err
		}
		return func(ctx context.Context, page *model.PageRequest) ([]model.SnapshotRecord, *model.PageResponse, error) {
			resp, err := q.AllTickLiquidity(ctx, model.AllTickLiquidityRequest{PairID: target.PairID, TokenIn: target.TokenIn, Pagination: page})
			if err != nil {
				return nil, nil, err
			}
			records := make([]model.SnapshotRecord, len(resp.TickLiquidity))
			for i := range resp.TickLiquidity {
				records[i] = model.SnapshotRecord{Kind: target.Kind, Liquidity: &resp.TickLiquidity[i]}
			}
			return records, resp.Pagination, nil
		}, nil
	default:
		return nil, fmt.Errorf("kind %s cannot be crawled", target.Kind)
	}
}

func (t Target) requirePair() error {
	if t.PairID == "" || t.TokenIn == "" {
		return fmt.Errorf("kind %s requires pair id and token in", t.Kind)
	}
	return nil
}

func trancheRecords(kind string, tranches []model.LimitOrderTranche) []model.SnapshotRecord {
	records := make([]model.SnapshotRecord, len(tranches))
	for i := range tranches {
		records[i] = model.SnapshotRecord{Kind: kind, LimitOrderTranche: &tranches[i]}
	}
	return records
}
