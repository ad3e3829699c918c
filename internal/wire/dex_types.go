package wire

type TradePairID struct {
	MakerDenom string `json:"maker_denom"`
	TakerDenom string `json:"taker_denom"`
}

type PairID struct {
	Token0 string `json:"token0"`
	Token1 string `json:"token1"`
}

type Coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

type Params struct {
	FeeTiers           []Uint64 `json:"fee_tiers"`
	MaxTrueTakerSpread string   `json:"max_true_taker_spread"`
}

type LimitOrderTrancheKey struct {
	TradePairID           TradePairID `json:"trade_pair_id"`
	TickIndexTakerToMaker Int64       `json:"tick_index_taker_to_maker"`
	TrancheKey            string      `json:"tranche_key"`
}

// LimitOrderTranche carries expiration_time as an RFC 3339 string. The chain renders
// "never" as the zero time 0001-01-01T00:00:00Z or omits the field.
type LimitOrderTranche struct {
	Key                LimitOrderTrancheKey `json:"key"`
	ReservesMakerDenom string               `json:"reserves_maker_denom"`
	ReservesTakerDenom string               `json:"reserves_taker_denom"`
	TotalMakerDenom    string               `json:"total_maker_denom"`
	TotalTakerDenom    string               `json:"total_taker_denom"`
	ExpirationTime     *string              `json:"expiration_time"`
	PriceTakerToMaker  string               `json:"price_taker_to_maker"`
}

type LimitOrderTrancheUser struct {
	TradePairID           TradePairID `json:"trade_pair_id"`
	TickIndexTakerToMaker Int64       `json:"tick_index_taker_to_maker"`
	TrancheKey            string      `json:"tranche_key"`
	Address               string      `json:"address"`
	SharesOwned           string      `json:"shares_owned"`
	SharesWithdrawn       string      `json:"shares_withdrawn"`
	SharesCancelled       string      `json:"shares_cancelled"`
	OrderType             EnumValue   `json:"order_type"`
}

type PoolReservesKey struct {
	TradePairID           TradePairID `json:"trade_pair_id"`
	TickIndexTakerToMaker Int64       `json:"tick_index_taker_to_maker"`
	Fee                   *Uint64     `json:"fee"`
}

type PoolReserves struct {
	Key                       PoolReservesKey `json:"key"`
	ReservesMakerDenom        string          `json:"reserves_maker_denom"`
	PriceTakerToMaker         string          `json:"price_taker_to_maker"`
	PriceOppositeTakerToMaker string          `json:"price_opposite_taker_to_maker"`
}

type Pool struct {
	ID         Uint64        `json:"id"`
	LowerTick0 *PoolReserves `json:"lower_tick0"`
	UpperTick1 *PoolReserves `json:"upper_tick1"`
}

type PoolMetadata struct {
	ID     Uint64 `json:"id"`
	Tick   Int64  `json:"tick"`
	Fee    Uint64 `json:"fee"`
	PairID PairID `json:"pair_id"`
}

type DepositRecord struct {
	PairID          PairID `json:"pair_id"`
	SharesOwned     string `json:"shares_owned"`
	CenterTickIndex Int64  `json:"center_tick_index"`
	LowerTickIndex  Int64  `json:"lower_tick_index"`
	UpperTickIndex  Int64  `json:"upper_tick_index"`
	Fee             *Int64 `json:"fee"`
}

// TickLiquidity is the oneof wrapper. Well-formed elements set exactly one field.
type TickLiquidity struct {
	PoolReserves      *PoolReserves      `json:"pool_reserves"`
	LimitOrderTranche *LimitOrderTranche `json:"limit_order_tranche"`
}
