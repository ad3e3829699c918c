package dex

import (
	"dexQuery/internal/model"
	"dexQuery/internal/wire"
)

// The translate functions below are total: every caller request has a wire form.

func TranslateParams(model.ParamsRequest) *wire.ParamsRequest {
	return &wire.ParamsRequest{}
}

func TranslateLimitOrderTrancheUser(r model.LimitOrderTrancheUserRequest) *wire.LimitOrderTrancheUserRequest {
	return &wire.LimitOrderTrancheUserRequest{
		Address:                r.Address,
		TrancheKey:             r.TrancheKey,
		CalcWithdrawableShares: r.CalcWithdrawableShares,
	}
}

func TranslateLimitOrderTrancheUserAll(r model.LimitOrderTrancheUserAllRequest) *wire.LimitOrderTrancheUserAllRequest {
	return &wire.LimitOrderTrancheUserAllRequest{Pagination: PageRequestToWire(r.Pagination)}
}

func TranslateAllUserLimitOrders(r model.AllUserLimitOrdersRequest) *wire.AllUserLimitOrdersRequest {
	return &wire.AllUserLimitOrdersRequest{
		Address:    r.Address,
		Pagination: PageRequestToWire(r.Pagination),
	}
}

func TranslateGetLimitOrderTranche(r model.GetLimitOrderTrancheRequest) *wire.GetLimitOrderTrancheRequest {
	return &wire.GetLimitOrderTrancheRequest{
		PairID:     r.PairID,
		TickIndex:  r.TickIndex,
		TokenIn:    r.TokenIn,
		TrancheKey: r.TrancheKey,
	}
}

func TranslateAllLimitOrderTranche(r model.AllLimitOrderTrancheRequest) *wire.AllLimitOrderTrancheRequest {
	return &wire.AllLimitOrderTrancheRequest{PairPageRequest: pairPage(r.PairID, r.TokenIn, r.Pagination)}
}

func TranslateAllUserDeposits(r model.AllUserDepositsRequest) *wire.AllUserDepositsRequest {
	return &wire.AllUserDepositsRequest{
		Address:    r.Address,
		Pagination: PageRequestToWire(r.Pagination),
	}
}

func TranslateAllTickLiquidity(r model.AllTickLiquidityRequest) *wire.AllTickLiquidityRequest {
	return &wire.AllTickLiquidityRequest{PairPageRequest: pairPage(r.PairID, r.TokenIn, r.Pagination)}
}

func TranslateGetInactiveLimitOrderTranche(r model.GetInactiveLimitOrderTrancheRequest) *wire.GetInactiveLimitOrderTrancheRequest {
	return &wire.GetInactiveLimitOrderTrancheRequest{
		PairID:     r.PairID,
		TokenIn:    r.TokenIn,
		TickIndex:  r.TickIndex,
		TrancheKey: r.TrancheKey,
	}
}

func TranslateAllInactiveLimitOrderTranche(r model.AllInactiveLimitOrderTrancheRequest) *wire.AllInactiveLimitOrderTrancheRequest {
	return &wire.AllInactiveLimitOrderTrancheRequest{Pagination: PageRequestToWire(r.Pagination)}
}

func TranslateAllPoolReserves(r model.AllPoolReservesRequest) *wire.AllPoolReservesRequest {
	return &wire.AllPoolReservesRequest{PairPageRequest: pairPage(r.PairID, r.TokenIn, r.Pagination)}
}

func TranslateGetPoolReserves(r model.GetPoolReservesRequest) *wire.GetPoolReservesRequest {
	return &wire.GetPoolReservesRequest{
		PairID:    r.PairID,
		TokenIn:   r.TokenIn,
		TickIndex: r.TickIndex,
		Fee:       r.Fee,
	}
}

// TranslateEstimateMultiHopSwap wraps every route, empty ones included, in order.
func TranslateEstimateMultiHopSwap(r model.EstimateMultiHopSwapRequest) *wire.EstimateMultiHopSwapRequest {
	routes := make([]wire.MultiHopRoute, len(r.Routes))
	for i, hops := range r.Routes {
		routes[i] = wire.MultiHopRoute{Hops: hops}
	}
	return &wire.EstimateMultiHopSwapRequest{
		Creator:        r.Creator,
		Receiver:       r.Receiver,
		Routes:         routes,
		AmountIn:       r.AmountIn,
		ExitLimitPrice: r.ExitLimitPrice,
		PickBestRoute:  r.PickBestRoute,
	}
}

// TranslateEstimatePlaceLimitOrder leaves an absent expiration unset on the wire and
// sends an absent max_amount_out as the empty string.
func TranslateEstimatePlaceLimitOrder(r model.EstimatePlaceLimitOrderRequest) *wire.EstimatePlaceLimitOrderRequest {
	out := &wire.EstimatePlaceLimitOrderRequest{
		Creator:          r.Creator,
		Receiver:         r.Receiver,
		TokenIn:          r.TokenIn,
		TokenOut:         r.TokenOut,
		TickIndexInToOut: r.TickIndexInToOut,
		AmountIn:         r.AmountIn,
		OrderType:        EncodeOrderType(r.OrderType),
	}
	if r.ExpirationTime != nil {
		out.ExpirationTime = wire.TimestampFromUnix(*r.ExpirationTime)
	}
	if r.MaxAmountOut != nil {
		out.MaxAmountOut = *r.MaxAmountOut
	}
	return out
}

func TranslatePool(r model.PoolRequest) *wire.PoolRequest {
	return &wire.PoolRequest{PairID: r.PairID, TickIndex: r.TickIndex, Fee: r.Fee}
}

func TranslatePoolByID(r model.PoolByIDRequest) *wire.PoolByIDRequest {
	return &wire.PoolByIDRequest{PoolID: r.PoolID}
}

func TranslateGetPoolMetadata(r model.GetPoolMetadataRequest) *wire.GetPoolMetadataRequest {
	return &wire.GetPoolMetadataRequest{ID: r.ID}
}

func TranslateAllPoolMetadata(r model.AllPoolMetadataRequest) *wire.AllPoolMetadataRequest {
	return &wire.AllPoolMetadataRequest{Pagination: PageRequestToWire(r.Pagination)}
}

func pairPage(pairID, tokenIn string, page *model.PageRequest) wire.PairPageRequest {
	return wire.PairPageRequest{PairID: pairID, TokenIn: tokenIn, Pagination: PageRequestToWire(page)}
}
