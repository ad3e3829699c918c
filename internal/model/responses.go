package model

type ParamsResponse struct {
	Params Params `json:"params"`
}

type LimitOrderTrancheUserResponse struct {
	LimitOrderTrancheUser *LimitOrderTrancheUser `json:"limit_order_tranche_user"`
	WithdrawableShares    *string                `json:"withdrawable_shares,omitempty"`
}

type LimitOrderTrancheUserAllResponse struct {
	LimitOrderTrancheUser []LimitOrderTrancheUser `json:"limit_order_tranche_user"`
	Pagination            *PageResponse           `json:"pagination"`
}

type AllUserLimitOrdersResponse struct {
	LimitOrders []LimitOrderTrancheUser `json:"limit_orders"`
	Pagination  *PageResponse           `json:"pagination"`
}

type GetLimitOrderTrancheResponse struct {
	LimitOrderTranche *LimitOrderTranche `json:"limit_order_tranche"`
}

type AllLimitOrderTrancheResponse struct {
	LimitOrderTranche []LimitOrderTranche `json:"limit_order_tranche"`
	Pagination        *PageResponse       `json:"pagination"`
}

type AllUserDepositsResponse struct {
	Deposits   []DepositRecord `json:"deposits"`
	Pagination *PageResponse   `json:"pagination"`
}

type AllTickLiquidityResponse struct {
	TickLiquidity []Liquidity   `json:"tick_liquidity"`
	Pagination    *PageResponse `json:"pagination"`
}

type GetInactiveLimitOrderTrancheResponse struct {
	InactiveLimitOrderTranche LimitOrderTranche `json:"inactive_limit_order_tranche"`
}

type AllInactiveLimitOrderTrancheResponse struct {
	InactiveLimitOrderTranche []LimitOrderTranche `json:"inactive_limit_order_tranche"`
	Pagination                *PageResponse       `json:"pagination"`
}

type AllPoolReservesResponse struct {
	PoolReserves []PoolReserves `json:"pool_reserves"`
	Pagination   *PageResponse  `json:"pagination"`
}

type GetPoolReservesResponse struct {
	PoolReserves PoolReserves `json:"pool_reserves"`
}

type EstimateMultiHopSwapResponse struct {
	CoinOut Coin `json:"coin_out"`
}

// EstimatePlaceLimitOrderResponse splits the estimated order into its taker and maker
// parts: TotalInCoin = SwapInCoin + maker portion.
type EstimatePlaceLimitOrderResponse struct {
	TotalInCoin Coin `json:"total_in_coin"`
	SwapInCoin  Coin `json:"swap_in_coin"`
	SwapOutCoin Coin `json:"swap_out_coin"`
}

// PoolResponse answers both the by-tick and the by-id pool queries.
type PoolResponse struct {
	Pool Pool `json:"pool"`
}

type GetPoolMetadataResponse struct {
	PoolMetadata PoolMetadata `json:"pool_metadata"`
}

type AllPoolMetadataResponse struct {
	PoolMetadata []PoolMetadata `json:"pool_metadata"`
	Pagination   *PageResponse  `json:"pagination"`
}
