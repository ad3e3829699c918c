package dex

import (
	"context"
	"encoding/json"
	"fmt"

	"dexQuery/internal/model"
	"dexQuery/internal/wire"
)

// Dispatcher forwards an encoded query to the chain and returns the proto3 JSON
// rendering of the response.
type Dispatcher interface {
	Query(ctx context.Context, route string, data []byte) ([]byte, error)
}

// Querier runs caller requests through translation, dispatch and normalization.
type Querier struct {
	dispatcher Dispatcher
}

func NewQuerier(dispatcher Dispatcher) *Querier {
	return &Querier{dispatcher: dispatcher}
}

// Run executes the registered kind with a JSON-encoded caller request.
func (q *Querier) Run(ctx context.Context, kind string, request json.RawMessage) (any, error) {
	k, ok := LookupKind(kind)
	if !ok {
		return nil, fmt.Errorf("unknown query kind: %s", kind)
	}
	return k.query(ctx, q.dispatcher, request)
}

func (q *Querier) Params(ctx context.Context, r model.ParamsRequest) (model.ParamsResponse, error) {
	return roundTrip(ctx, q.dispatcher, TranslateParams(r), NormalizeParams)
}

func (q *Querier) LimitOrderTrancheUser(ctx context.Context, r model.LimitOrderTrancheUserRequest) (model.LimitOrderTrancheUserResponse, error) {
	return roundTrip(ctx, q.dispatcher, TranslateLimitOrderTrancheUser(r), NormalizeLimitOrderTrancheUser)
}

func (q *Querier) LimitOrderTrancheUserAll(ctx context.Context, r model.LimitOrderTrancheUserAllRequest) (model.LimitOrderTrancheUserAllResponse, error) {
	return roundTrip(ctx, q.dispatcher, TranslateLimitOrderTrancheUserAll(r), NormalizeLimitOrderTrancheUserAll)
}

func (q *Querier) AllUserLimitOrders(ctx context.Context, r model.AllUserLimitOrdersRequest) (model.AllUserLimitOrdersResponse, error) {
	return roundTrip(ctx, q.dispatcher, TranslateAllUserLimitOrders(r), NormalizeAllUserLimitOrders)
}

func (q *Querier) GetLimitOrderTranche(ctx context.Context, r model.GetLimitOrderTrancheRequest) (model.GetLimitOrderTrancheResponse, error) {
	return roundTrip(ctx, q.dispatcher, TranslateGetLimitOrderTranche(r), NormalizeGetLimitOrderTranche)
}

func (q *Querier) AllLimitOrderTranche(ctx context.Context, r model.AllLimitOrderTrancheRequest) (model.AllLimitOrderTrancheResponse, error) {
	return roundTrip(ctx, q.dispatcher, TranslateAllLimitOrderTranche(r), NormalizeAllLimitOrderTranche)
}

func (q *Querier) AllUserDeposits(ctx context.Context, r model.AllUserDepositsRequest) (model.AllUserDepositsResponse, error) {
	return roundTrip(ctx, q.dispatcher, TranslateAllUserDeposits(r), NormalizeAllUserDeposits)
}

func (q *Querier) AllTickLiquidity(ctx context.Context, r model.AllTickLiquidityRequest) (model.AllTickLiquidityResponse, error) {
	return roundTrip(ctx, q.dispatcher, TranslateAllTickLiquidity(r), NormalizeAllTickLiquidity)
}

func (q *Querier) GetInactiveLimitOrderTranche(ctx context.Context, r model.GetInactiveLimitOrderTrancheRequest) (model.GetInactiveLimitOrderTrancheResponse, error) {
	return roundTrip(ctx, q.dispatcher, TranslateGetInactiveLimitOrderTranche(r), NormalizeGetInactiveLimitOrderTranche)
}

func (q *Querier) AllInactiveLimitOrderTranche(ctx context.Context, r model.AllInactiveLimitOrderTrancheRequest) (model.AllInactiveLimitOrderTrancheResponse, error) {
	return roundTrip(ctx, q.dispatcher, TranslateAllInactiveLimitOrderTranche(r), NormalizeAllInactiveLimitOrderTranche)
}

func (q *Querier) AllPoolReserves(ctx context.Context, r model.AllPoolReservesRequest) (model.AllPoolReservesResponse, error) {
	return roundTrip(ctx, q.dispatcher, TranslateAllPoolReserves(r), NormalizeAllPoolReserves)
}

func (q *Querier) GetPoolReserves(ctx context.Context, r model.GetPoolReservesRequest) (model.GetPoolReservesResponse, error) {
	return roundTrip(ctx, q.dispatcher, TranslateGetPoolReserves(r), NormalizeGetPoolReserves)
}

func (q *Querier) EstimateMultiHopSwap(ctx context.Context, r model.EstimateMultiHopSwapRequest) (model.EstimateMultiHopSwapResponse, error) {
	return roundTrip(ctx, q.dispatcher, TranslateEstimateMultiHopSwap(r), NormalizeEstimateMultiHopSwap)
}

func (q *Querier) EstimatePlaceLimitOrder(ctx context.Context, r model.EstimatePlaceLimitOrderRequest) (model.EstimatePlaceLimitOrderResponse, error) {
	return roundTrip(ctx, q.dispatcher, TranslateEstimatePlaceLimitOrder(r), NormalizeEstimatePlaceLimitOrder)
}

func (q *Querier) Pool(ctx context.Context, r model.PoolRequest) (model.PoolResponse, error) {
	return roundTrip(ctx, q.dispatcher, TranslatePool(r), NormalizePool)
}

func (q *Querier) PoolByID(ctx context.Context, r model.PoolByIDRequest) (model.PoolResponse, error) {
	return roundTrip(ctx, q.dispatcher, TranslatePoolByID(r), NormalizePool)
}

func (q *Querier) GetPoolMetadata(ctx context.Context, r model.GetPoolMetadataRequest) (model.GetPoolMetadataResponse, error) {
	return roundTrip(ctx, q.dispatcher, TranslateGetPoolMetadata(r), NormalizeGetPoolMetadata)
}

func (q *Querier) AllPoolMetadata(ctx context.Context, r model.AllPoolMetadataRequest) (model.AllPoolMetadataResponse, error) {
	return roundTrip(ctx, q.dispatcher, TranslateAllPoolMetadata(r), NormalizeAllPoolMetadata)
}

func (q *Querier) MarketmapParams(ctx context.Context, r model.MarketmapParamsRequest) (model.MarketmapParamsResponse, error) {
	return roundTrip(ctx, q.dispatcher, TranslateMarketmapParams(r), NormalizeMarketmapParams)
}

func (q *Querier) MarketMap(ctx context.Context, r model.MarketMapRequest) (model.MarketMapResponse, error) {
	return roundTrip(ctx, q.dispatcher, TranslateMarketMap(r), NormalizeMarketMap)
}

func (q *Querier) Market(ctx context.Context, r model.MarketRequest) (model.MarketResponse, error) {
	return roundTrip(ctx, q.dispatcher, TranslateMarket(r), NormalizeMarket)
}

func (q *Querier) LastUpdated(ctx context.Context, r model.LastUpdatedRequest) (model.LastUpdatedResponse, error) {
	return roundTrip(ctx, q.dispatcher, TranslateLastUpdated(r), NormalizeLastUpdated)
}

func (q *Querier) MinInterchainQueryDeposit(ctx context.Context, r model.MinInterchainQueryDepositRequest) (model.MinInterchainQueryDepositResponse, error) {
	return roundTrip(ctx, q.dispatcher, TranslateMinInterchainQueryDeposit(r), NormalizeMinInterchainQueryDeposit)
}

// roundTrip passes dispatcher errors through untouched.
func roundTrip[W, M any](ctx context.Context, d Dispatcher, req wire.Request, normalize func(W) (M, error)) (M, error) {
	var zero M
	route := req.Route()
	body, err := req.Marshal()
	if err != nil {
		return zero, fmt.Errorf("encode %s: %w", route, err)
	}
	raw, err := d.Query(ctx, route, body)
	if err != nil {
		return zero, err
	}
	return decodeResponse(route, raw, normalize)
}

func decodeResponse[W, M any](route string, raw []byte, normalize func(W) (M, error)) (M, error) {
	var zero M
	var w W
	if err := json.Unmarshal(raw, &w); err != nil {
		return zero, fmt.Errorf("decode %s response: %w", route, err)
	}
	out, err := normalize(w)
	if err != nil {
		return zero, fmt.Errorf("normalize %s response: %w", route, err)
	}
	return out, nil
}
