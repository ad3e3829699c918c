package model

// ParamsRequest queries the dex module parameters.
type ParamsRequest struct{}

type LimitOrderTrancheUserRequest struct {
	Address                string `json:"address"`
	TrancheKey             string `json:"tranche_key"`
	CalcWithdrawableShares bool   `json:"calc_withdrawable_shares"`
}

type LimitOrderTrancheUserAllRequest struct {
	Pagination *PageRequest `json:"pagination"`
}

type AllUserLimitOrdersRequest struct {
	Address    string       `json:"address"`
	Pagination *PageRequest `json:"pagination"`
}

type GetLimitOrderTrancheRequest struct {
	PairID     string `json:"pair_id"`
	TickIndex  int64  `json:"tick_index"`
	TokenIn    string `json:"token_in"`
	TrancheKey string `json:"tranche_key"`
}

type AllLimitOrderTrancheRequest struct {
	PairID     string       `json:"pair_id"`
	TokenIn    string       `json:"token_in"`
	Pagination *PageRequest `json:"pagination"`
}

type AllUserDepositsRequest struct {
	Address    string       `json:"address"`
	Pagination *PageRequest `json:"pagination"`
}

type AllTickLiquidityRequest struct {
	PairID     string       `json:"pair_id"`
	TokenIn    string       `json:"token_in"`
	Pagination *PageRequest `json:"pagination"`
}

type GetInactiveLimitOrderTrancheRequest struct {
	PairID     string `json:"pair_id"`
	TokenIn    string `json:"token_in"`
	TickIndex  int64  `json:"tick_index"`
	TrancheKey string `json:"tranche_key"`
}

type AllInactiveLimitOrderTrancheRequest struct {
	Pagination *PageRequest `json:"pagination"`
}

type AllPoolReservesRequest struct {
	PairID     string       `json:"pair_id"`
	TokenIn    string       `json:"token_in"`
	Pagination *PageRequest `json:"pagination"`
}

type GetPoolReservesRequest struct {
	PairID    string `json:"pair_id"`
	TokenIn   string `json:"token_in"`
	TickIndex int64  `json:"tick_index"`
	Fee       uint64 `json:"fee"`
}

// EstimateMultiHopSwapRequest estimates a swap across one or more routes. Each route is
// an ordered list of denoms.
type EstimateMultiHopSwapRequest struct {
	Creator        string     `json:"creator"`
	Receiver       string     `json:"receiver"`
	Routes         [][]string `json:"routes"`
	AmountIn       string     `json:"amount_in"`
	ExitLimitPrice string     `json:"exit_limit_price"`
	PickBestRoute  bool       `json:"pick_best_route"`
}

// EstimatePlaceLimitOrderRequest estimates placing a limit order. ExpirationTime is a
// unix timestamp in seconds.
type EstimatePlaceLimitOrderRequest struct {
	Creator          string         `json:"creator"`
	Receiver         string         `json:"receiver"`
	TokenIn          string         `json:"token_in"`
	TokenOut         string         `json:"token_out"`
	TickIndexInToOut int64          `json:"tick_index_in_to_out"`
	AmountIn         string         `json:"amount_in"`
	OrderType        LimitOrderType `json:"order_type"`
	ExpirationTime   *int64         `json:"expiration_time"`
	MaxAmountOut     *string        `json:"max_amount_out"`
}

type PoolRequest struct {
	PairID    string `json:"pair_id"`
	TickIndex int64  `json:"tick_index"`
	Fee       uint64 `json:"fee"`
}

type PoolByIDRequest struct {
	PoolID uint64 `json:"pool_id"`
}

type GetPoolMetadataRequest struct {
	ID uint64 `json:"id"`
}

type AllPoolMetadataRequest struct {
	Pagination *PageRequest `json:"pagination"`
}
