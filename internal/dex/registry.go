package dex

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"dexQuery/internal/wire"
)

// Kind is a registered query kind. It knows how to run a JSON caller request end to
// end and how to normalize a recorded wire response offline.
type Kind struct {
	Name  string
	Route string

	query     func(ctx context.Context, d Dispatcher, request json.RawMessage) (any, error)
	normalize func(response []byte) (any, error)
}

// Normalize converts a recorded proto3 JSON response of this kind.
func (k Kind) Normalize(response []byte) (any, error) {
	return k.normalize(response)
}

var kinds = map[string]Kind{}

func register[Req any, R wire.Request, W, M any](name string, translate func(Req) R, normalize func(W) (M, error)) {
	var zero Req
	route := translate(zero).Route()
	kinds[name] = Kind{
		Name:  name,
		Route: route,
		query: func(ctx context.Context, d Dispatcher, request json.RawMessage) (any, error) {
			var req Req
			if len(request) > 0 {
				if err := json.Unmarshal(request, &req); err != nil {
					return nil, fmt.Errorf("parse %s request: %w", name, err)
				}
			}
			out, err := roundTrip(ctx, d, translate(req), normalize)
			if err != nil {
				return nil, err
			}
			return out, nil
		},
		normalize: func(response []byte) (any, error) {
			out, err := decodeResponse(route, response, normalize)
			if err != nil {
				return nil, err
			}
			return out, nil
		},
	}
}

func init() {
	register("params", TranslateParams, NormalizeParams)
	register("limit_order_tranche_user", TranslateLimitOrderTrancheUser, NormalizeLimitOrderTrancheUser)
	register("limit_order_tranche_user_all", TranslateLimitOrderTrancheUserAll, NormalizeLimitOrderTrancheUserAll)
	register("all_user_limit_orders", TranslateAllUserLimitOrders, NormalizeAllUserLimitOrders)
	register("get_limit_order_tranche", TranslateGetLimitOrderTranche, NormalizeGetLimitOrderTranche)
	register("all_limit_order_tranche", TranslateAllLimitOrderTranche, NormalizeAllLimitOrderTranche)
	register("all_user_deposits", TranslateAllUserDeposits, NormalizeAllUserDeposits)
	register("all_tick_liquidity", TranslateAllTickLiquidity, NormalizeAllTickLiquidity)
	register("get_inactive_limit_order_tranche", TranslateGetInactiveLimitOrderTranche, NormalizeGetInactiveLimitOrderTranche)
	register("all_inactive_limit_order_tranche", TranslateAllInactiveLimitOrderTranche, NormalizeAllInactiveLimitOrderTranche)
	register("all_pool_reserves", TranslateAllPoolReserves, NormalizeAllPoolReserves)
	register("get_pool_reserves", TranslateGetPoolReserves, NormalizeGetPoolReserves)
	register("estimate_multi_hop_swap", TranslateEstimateMultiHopSwap, NormalizeEstimateMultiHopSwap)
	register("estimate_place_limit_order", TranslateEstimatePlaceLimitOrder, NormalizeEstimatePlaceLimitOrder)
	register("pool", TranslatePool, NormalizePool)
	register("pool_by_id", TranslatePoolByID, NormalizePool)
	register("get_pool_metadata", TranslateGetPoolMetadata, NormalizeGetPoolMetadata)
	register("all_pool_metadata", TranslateAllPoolMetadata, NormalizeAllPoolMetadata)

	register("marketmap_params", TranslateMarketmapParams, NormalizeMarketmapParams)
	register("market_map", TranslateMarketMap, NormalizeMarketMap)
	register("market", TranslateMarket, NormalizeMarket)
	register("last_updated", TranslateLastUpdated, NormalizeLastUpdated)

	register("min_interchain_query_deposit", TranslateMinInterchainQueryDeposit, NormalizeMinInterchainQueryDeposit)
}

// LookupKind returns the registered kind by name.
func LookupKind(name string) (Kind, bool) {
	k, ok := kinds[name]
	return k, ok
}

// KindNames lists every registered kind, sorted.
func KindNames() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupRoute returns the kind registered for a gRPC route.
func LookupRoute(route string) (Kind, bool) {
	for _, k := range kinds {
		if k.Route == route {
			return k, true
		}
	}
	return Kind{}, false
}
