package dex

import (
	"fmt"

	"dexQuery/internal/model"
	"dexQuery/internal/wire"
)

// NormalizeLiquidity converts one tick liquidity element. Exactly one payload must be set.
func NormalizeLiquidity(l wire.TickLiquidity) (model.Liquidity, error) {
	populated := 0
	if l.PoolReserves != nil {
		populated++
	}
	if l.LimitOrderTranche != nil {
		populated++
	}
	if populated != 1 {
		return model.Liquidity{}, &MalformedLiquidityError{Populated: populated}
	}

	if l.PoolReserves != nil {
		reserves := normalizePoolReserves(*l.PoolReserves)
		return model.Liquidity{PoolReserves: &reserves}, nil
	}
	tranche, err := normalizeTranche(*l.LimitOrderTranche)
	if err != nil {
		return model.Liquidity{}, fmt.Errorf("limit_order_tranche: %w", err)
	}
	return model.Liquidity{LimitOrderTranche: &tranche}, nil
}

func normalizeLiquidityList(in []wire.TickLiquidity) ([]model.Liquidity, error) {
	if in == nil {
		return nil, nil
	}
	out := make([]model.Liquidity, len(in))
	for i, l := range in {
		normalized, err := NormalizeLiquidity(l)
		if err != nil {
			return nil, fmt.Errorf("tick_liquidity[%d]: %w", i, err)
		}
		out[i] = normalized
	}
	return out, nil
}
