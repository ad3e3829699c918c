package model

import "fmt"

// SnapshotRecord is one normalized element captured by a paginated crawl.
// Exactly one payload field is set, matching Kind.
type SnapshotRecord struct {
	Kind              string             `json:"kind"`
	Page              uint64             `json:"page"`
	CapturedAt        string             `json:"captured_at"`
	LimitOrderTranche *LimitOrderTranche `json:"limit_order_tranche,omitempty"`
	PoolMetadata      *PoolMetadata      `json:"pool_metadata,omitempty"`
	Liquidity         *Liquidity         `json:"liquidity,omitempty"`
}

// Key returns a stable identity for the record payload.
func (r SnapshotRecord) Key() string {
	switch {
	case r.LimitOrderTranche != nil:
		return trancheKey(r.LimitOrderTranche.Key)
	case r.PoolMetadata != nil:
		return fmt.Sprintf("pool/%d", r.PoolMetadata.ID)
	case r.Liquidity != nil && r.Liquidity.PoolReserves != nil:
		k := r.Liquidity.PoolReserves.Key
		fee := uint64(0)
		if k.Fee != nil {
			fee = *k.Fee
		}
		return fmt.Sprintf("reserves/%s/%s/%d/%d", k.TradePairID.MakerDenom, k.TradePairID.TakerDenom, k.TickIndexTakerToMaker, fee)
	case r.Liquidity != nil && r.Liquidity.LimitOrderTranche != nil:
		return trancheKey(r.Liquidity.LimitOrderTranche.Key)
	default:
		return r.Kind
	}
}

func trancheKey(k LimitOrderTrancheKey) string {
	return fmt.Sprintf("tranche/%s/%s/%d/%s", k.TradePairID.MakerDenom, k.TradePairID.TakerDenom, k.TickIndexTakerToMaker, k.TrancheKey)
}
