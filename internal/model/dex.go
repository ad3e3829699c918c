package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TradePairID identifies a directed trading pair. (A,B) and (B,A) are different pairs.
type TradePairID struct {
	MakerDenom string `json:"maker_denom"`
	TakerDenom string `json:"taker_denom"`
}

// PairID is the canonical pair identity used by deposits and pools.
type PairID struct {
	Token0 string `json:"token0"`
	Token1 string `json:"token1"`
}

func (p PairID) String() string {
	return p.Token0 + "<>" + p.Token1
}

// Coin is a denom and an integer amount.
type Coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

// Params are the dex module parameters.
type Params struct {
	FeeTiers           []uint64 `json:"fee_tiers"`
	MaxTrueTakerSpread string   `json:"max_true_taker_spread"`
}

// LimitOrderTrancheKey identifies one tranche within a trade pair and tick.
type LimitOrderTrancheKey struct {
	TradePairID           TradePairID `json:"trade_pair_id"`
	TickIndexTakerToMaker int64       `json:"tick_index_taker_to_maker"`
	TrancheKey            string      `json:"tranche_key"`
}

// LimitOrderTranche is a batch of limit order liquidity at one tick.
// ExpirationTime is nil for tranches that never expire and 0 for JIT tranches.
type LimitOrderTranche struct {
	Key                LimitOrderTrancheKey `json:"key"`
	ReservesMakerDenom string               `json:"reserves_maker_denom"`
	ReservesTakerDenom string               `json:"reserves_taker_denom"`
	TotalMakerDenom    string               `json:"total_maker_denom"`
	TotalTakerDenom    string               `json:"total_taker_denom"`
	ExpirationTime     *int64               `json:"expiration_time"`
	// PriceTakerToMaker is a decimal with 26 digits of precision, kept verbatim.
	PriceTakerToMaker string `json:"price_taker_to_maker"`
}

// TrancheAmounts holds the parsed numeric columns of a tranche.
type TrancheAmounts struct {
	ReservesMakerDenom decimal.Decimal
	ReservesTakerDenom decimal.Decimal
	TotalMakerDenom    decimal.Decimal
	TotalTakerDenom    decimal.Decimal
	PriceTakerToMaker  decimal.Decimal
}

// Amounts parses the reserves, totals and price. The first malformed field is
// reported by name.
func (t LimitOrderTranche) Amounts() (TrancheAmounts, error) {
	var (
		out TrancheAmounts
		err error
	)
	fields := []struct {
		name  string
		value string
		dst   *decimal.Decimal
	}{
		{"reserves_maker_denom", t.ReservesMakerDenom, &out.ReservesMakerDenom},
		{"reserves_taker_denom", t.ReservesTakerDenom, &out.ReservesTakerDenom},
		{"total_maker_denom", t.TotalMakerDenom, &out.TotalMakerDenom},
		{"total_taker_denom", t.TotalTakerDenom, &out.TotalTakerDenom},
		{"price_taker_to_maker", t.PriceTakerToMaker, &out.PriceTakerToMaker},
	}
	for _, f := range fields {
		if *f.dst, err = parseDecimal(f.name, f.value); err != nil {
			return TrancheAmounts{}, err
		}
	}
	return out, nil
}

// LimitOrderTrancheUser is one user's share of a tranche.
type LimitOrderTrancheUser struct {
	TradePairID           TradePairID    `json:"trade_pair_id"`
	TickIndexTakerToMaker int64          `json:"tick_index_taker_to_maker"`
	TrancheKey            string         `json:"tranche_key"`
	Address               string         `json:"address"`
	SharesOwned           string         `json:"shares_owned"`
	SharesWithdrawn       string         `json:"shares_withdrawn"`
	SharesCancelled       string         `json:"shares_cancelled"`
	OrderType             LimitOrderType `json:"order_type"`
}

// PoolReservesKey identifies one side of a pool at a tick and fee.
type PoolReservesKey struct {
	TradePairID           TradePairID `json:"trade_pair_id"`
	TickIndexTakerToMaker int64       `json:"tick_index_taker_to_maker"`
	Fee                   *uint64     `json:"fee"`
}

// PoolReserves holds one side of a pool. Both prices have 26 digits of precision.
type PoolReserves struct {
	Key                       PoolReservesKey `json:"key"`
	ReservesMakerDenom        string          `json:"reserves_maker_denom"`
	PriceTakerToMaker         string          `json:"price_taker_to_maker"`
	PriceOppositeTakerToMaker string          `json:"price_opposite_taker_to_maker"`
}

// Pool aggregates the two reserves records at adjacent ticks.
type Pool struct {
	ID         uint64        `json:"id"`
	LowerTick0 *PoolReserves `json:"lower_tick0"`
	UpperTick1 *PoolReserves `json:"upper_tick1"`
}

// PoolMetadata describes a pool by id.
type PoolMetadata struct {
	ID     uint64 `json:"id"`
	Tick   int64  `json:"tick"`
	Fee    uint64 `json:"fee"`
	PairID PairID `json:"pair_id"`
}

// DepositRecord is a user's liquidity deposit.
type DepositRecord struct {
	PairID          PairID `json:"pair_id"`
	SharesOwned     string `json:"shares_owned"`
	CenterTickIndex int64  `json:"center_tick_index"`
	LowerTickIndex  int64  `json:"lower_tick_index"`
	UpperTickIndex  int64  `json:"upper_tick_index"`
	Fee             *int64 `json:"fee"`
}

// LiquidityKind discriminates tick liquidity elements.
type LiquidityKind string

const (
	LiquidityPoolReserves      LiquidityKind = "pool_reserves"
	LiquidityLimitOrderTranche LiquidityKind = "limit_order_tranche"
)

// Liquidity is one tick liquidity element. Exactly one field is set.
type Liquidity struct {
	PoolReserves      *PoolReserves      `json:"pool_reserves,omitempty"`
	LimitOrderTranche *LimitOrderTranche `json:"limit_order_tranche,omitempty"`
}

// Kind returns which payload the element carries, or "" when none is set.
func (l Liquidity) Kind() LiquidityKind {
	switch {
	case l.PoolReserves != nil:
		return LiquidityPoolReserves
	case l.LimitOrderTranche != nil:
		return LiquidityLimitOrderTranche
	default:
		return ""
	}
}

func parseDecimal(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse %s %q: %w", field, value, err)
	}
	return d, nil
}
