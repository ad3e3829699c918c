package dex

import (
	"fmt"

	"dexQuery/internal/model"
	"dexQuery/internal/wire"
)

// Normalize* functions convert wire responses into caller responses. The first
// element that fails to convert fails the whole response.

func NormalizeParams(r wire.ParamsResponse) (model.ParamsResponse, error) {
	var tiers []uint64
	if r.Params.FeeTiers != nil {
		tiers = make([]uint64, len(r.Params.FeeTiers))
		for i, tier := range r.Params.FeeTiers {
			tiers[i] = uint64(tier)
		}
	}
	return model.ParamsResponse{Params: model.Params{
		FeeTiers:           tiers,
		MaxTrueTakerSpread: r.Params.MaxTrueTakerSpread,
	}}, nil
}

func NormalizeLimitOrderTrancheUser(r wire.LimitOrderTrancheUserResponse) (model.LimitOrderTrancheUserResponse, error) {
	out := model.LimitOrderTrancheUserResponse{WithdrawableShares: r.WithdrawableShares}
	if r.LimitOrderTrancheUser != nil {
		user, err := normalizeTrancheUser(*r.LimitOrderTrancheUser)
		if err != nil {
			return model.LimitOrderTrancheUserResponse{}, fmt.Errorf("limit_order_tranche_user: %w", err)
		}
		out.LimitOrderTrancheUser = &user
	}
	return out, nil
}

func NormalizeLimitOrderTrancheUserAll(r wire.LimitOrderTrancheUserAllResponse) (model.LimitOrderTrancheUserAllResponse, error) {
	users, err := normalizeTrancheUsers("limit_order_tranche_user", r.LimitOrderTrancheUser)
	if err != nil {
		return model.LimitOrderTrancheUserAllResponse{}, err
	}
	return model.LimitOrderTrancheUserAllResponse{
		LimitOrderTrancheUser: users,
		Pagination:            PageResponseFromWire(r.Pagination),
	}, nil
}

func NormalizeAllUserLimitOrders(r wire.AllUserLimitOrdersResponse) (model.AllUserLimitOrdersResponse, error) {
	orders, err := normalizeTrancheUsers("limit_orders", r.LimitOrders)
	if err != nil {
		return model.AllUserLimitOrdersResponse{}, err
	}
	return model.AllUserLimitOrdersResponse{
		LimitOrders: orders,
		Pagination:  PageResponseFromWire(r.Pagination),
	}, nil
}

func NormalizeGetLimitOrderTranche(r wire.GetLimitOrderTrancheResponse) (model.GetLimitOrderTrancheResponse, error) {
	var out model.GetLimitOrderTrancheResponse
	if r.LimitOrderTranche != nil {
		tranche, err := normalizeTranche(*r.LimitOrderTranche)
		if err != nil {
			return model.GetLimitOrderTrancheResponse{}, fmt.Errorf("limit_order_tranche: %w", err)
		}
		out.LimitOrderTranche = &tranche
	}
	return out, nil
}

func NormalizeAllLimitOrderTranche(r wire.AllLimitOrderTrancheResponse) (model.AllLimitOrderTrancheResponse, error) {
	tranches, err := normalizeTranches("limit_order_tranche", r.LimitOrderTranche)
	if err != nil {
		return model.AllLimitOrderTrancheResponse{}, err
	}
	return model.AllLimitOrderTrancheResponse{
		LimitOrderTranche: tranches,
		Pagination:        PageResponseFromWire(r.Pagination),
	}, nil
}

func NormalizeAllUserDeposits(r wire.AllUserDepositsResponse) (model.AllUserDepositsResponse, error) {
	var deposits []model.DepositRecord
	if r.Deposits != nil {
		deposits = make([]model.DepositRecord, len(r.Deposits))
		for i, d := range r.Deposits {
			deposits[i] = normalizeDeposit(d)
		}
	}
	return model.AllUserDepositsResponse{
		Deposits:   deposits,
		Pagination: PageResponseFromWire(r.Pagination),
	}, nil
}

func NormalizeAllTickLiquidity(r wire.AllTickLiquidityResponse) (model.AllTickLiquidityResponse, error) {
	liquidity, err := normalizeLiquidityList(r.TickLiquidity)
	if err != nil {
		return model.AllTickLiquidityResponse{}, err
	}
	return model.AllTickLiquidityResponse{
		TickLiquidity: liquidity,
		Pagination:    PageResponseFromWire(r.Pagination),
	}, nil
}

func NormalizeGetInactiveLimitOrderTranche(r wire.GetInactiveLimitOrderTrancheResponse) (model.GetInactiveLimitOrderTrancheResponse, error) {
	tranche, err := normalizeTranche(r.InactiveLimitOrderTranche)
	if err != nil {
		return model.GetInactiveLimitOrderTrancheResponse{}, fmt.Errorf("inactive_limit_order_tranche: %w", err)
	}
	return model.GetInactiveLimitOrderTrancheResponse{InactiveLimitOrderTranche: tranche}, nil
}

func NormalizeAllInactiveLimitOrderTranche(r wire.AllInactiveLimitOrderTrancheResponse) (model.AllInactiveLimitOrderTrancheResponse, error) {
	tranches, err := normalizeTranches("inactive_limit_order_tranche", r.InactiveLimitOrderTranche)
	if err != nil {
		return model.AllInactiveLimitOrderTrancheResponse{}, err
	}
	return model.AllInactiveLimitOrderTrancheResponse{
		InactiveLimitOrderTranche: tranches,
		Pagination:                PageResponseFromWire(r.Pagination),
	}, nil
}

func NormalizeAllPoolReserves(r wire.AllPoolReservesResponse) (model.AllPoolReservesResponse, error) {
	var reserves []model.PoolReserves
	if r.PoolReserves != nil {
		reserves = make([]model.PoolReserves, len(r.PoolReserves))
		for i, pr := range r.PoolReserves {
			reserves[i] = normalizePoolReserves(pr)
		}
	}
	return model.AllPoolReservesResponse{
		PoolReserves: reserves,
		Pagination:   PageResponseFromWire(r.Pagination),
	}, nil
}

func NormalizeGetPoolReserves(r wire.GetPoolReservesResponse) (model.GetPoolReservesResponse, error) {
	return model.GetPoolReservesResponse{PoolReserves: normalizePoolReserves(r.PoolReserves)}, nil
}

func NormalizeEstimateMultiHopSwap(r wire.EstimateMultiHopSwapResponse) (model.EstimateMultiHopSwapResponse, error) {
	return model.EstimateMultiHopSwapResponse{CoinOut: normalizeCoin(r.CoinOut)}, nil
}

func NormalizeEstimatePlaceLimitOrder(r wire.EstimatePlaceLimitOrderResponse) (model.EstimatePlaceLimitOrderResponse, error) {
	return model.EstimatePlaceLimitOrderResponse{
		TotalInCoin: normalizeCoin(r.TotalInCoin),
		SwapInCoin:  normalizeCoin(r.SwapInCoin),
		SwapOutCoin: normalizeCoin(r.SwapOutCoin),
	}, nil
}

// NormalizePool serves both the by-tick and the by-id pool queries.
func NormalizePool(r wire.PoolResponse) (model.PoolResponse, error) {
	pool := model.Pool{ID: uint64(r.Pool.ID)}
	if r.Pool.LowerTick0 != nil {
		lower := normalizePoolReserves(*r.Pool.LowerTick0)
		pool.LowerTick0 = &lower
	}
	if r.Pool.UpperTick1 != nil {
		upper := normalizePoolReserves(*r.Pool.UpperTick1)
		pool.UpperTick1 = &upper
	}
	return model.PoolResponse{Pool: pool}, nil
}

func NormalizeGetPoolMetadata(r wire.GetPoolMetadataResponse) (model.GetPoolMetadataResponse, error) {
	return model.GetPoolMetadataResponse{PoolMetadata: normalizePoolMetadata(r.PoolMetadata)}, nil
}

func NormalizeAllPoolMetadata(r wire.AllPoolMetadataResponse) (model.AllPoolMetadataResponse, error) {
	var metadata []model.PoolMetadata
	if r.PoolMetadata != nil {
		metadata = make([]model.PoolMetadata, len(r.PoolMetadata))
		for i, m := range r.PoolMetadata {
			metadata[i] = normalizePoolMetadata(m)
		}
	}
	return model.AllPoolMetadataResponse{
		PoolMetadata: metadata,
		Pagination:   PageResponseFromWire(r.Pagination),
	}, nil
}

func normalizeTranche(t wire.LimitOrderTranche) (model.LimitOrderTranche, error) {
	expiration, err := DecodeExpiration(t.ExpirationTime)
	if err != nil {
		return model.LimitOrderTranche{}, fmt.Errorf("expiration_time: %w", err)
	}
	return model.LimitOrderTranche{
		Key: model.LimitOrderTrancheKey{
			TradePairID:           normalizeTradePair(t.Key.TradePairID),
			TickIndexTakerToMaker: int64(t.Key.TickIndexTakerToMaker),
			TrancheKey:            t.Key.TrancheKey,
		},
		ReservesMakerDenom: t.ReservesMakerDenom,
		ReservesTakerDenom: t.ReservesTakerDenom,
		TotalMakerDenom:    t.TotalMakerDenom,
		TotalTakerDenom:    t.TotalTakerDenom,
		ExpirationTime:     expiration,
		PriceTakerToMaker:  t.PriceTakerToMaker,
	}, nil
}

func normalizeTranches(field string, in []wire.LimitOrderTranche) ([]model.LimitOrderTranche, error) {
	if in == nil {
		return nil, nil
	}
	out := make([]model.LimitOrderTranche, len(in))
	for i, t := range in {
		tranche, err := normalizeTranche(t)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", field, i, err)
		}
		out[i] = tranche
	}
	return out, nil
}

func normalizeTrancheUser(u wire.LimitOrderTrancheUser) (model.LimitOrderTrancheUser, error) {
	orderType, err := decodeWireOrderType(u.OrderType)
	if err != nil {
		return model.LimitOrderTrancheUser{}, fmt.Errorf("order_type: %w", err)
	}
	return model.LimitOrderTrancheUser{
		TradePairID:           normalizeTradePair(u.TradePairID),
		TickIndexTakerToMaker: int64(u.TickIndexTakerToMaker),
		TrancheKey:            u.TrancheKey,
		Address:               u.Address,
		SharesOwned:           u.SharesOwned,
		SharesWithdrawn:       u.SharesWithdrawn,
		SharesCancelled:       u.SharesCancelled,
		OrderType:             orderType,
	}, nil
}

func normalizeTrancheUsers(field string, in []wire.LimitOrderTrancheUser) ([]model.LimitOrderTrancheUser, error) {
	if in == nil {
		return nil, nil
	}
	out := make([]model.LimitOrderTrancheUser, len(in))
	for i, u := range in {
		user, err := normalizeTrancheUser(u)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", field, i, err)
		}
		out[i] = user
	}
	return out, nil
}

func normalizePoolReserves(r wire.PoolReserves) model.PoolReserves {
	out := model.PoolReserves{
		Key: model.PoolReservesKey{
			TradePairID:           normalizeTradePair(r.Key.TradePairID),
			TickIndexTakerToMaker: int64(r.Key.TickIndexTakerToMaker),
		},
		ReservesMakerDenom:        r.ReservesMakerDenom,
		PriceTakerToMaker:         r.PriceTakerToMaker,
		PriceOppositeTakerToMaker: r.PriceOppositeTakerToMaker,
	}
	if r.Key.Fee != nil {
		fee := uint64(*r.Key.Fee)
		out.Key.Fee = &fee
	}
	return out
}

func normalizePoolMetadata(m wire.PoolMetadata) model.PoolMetadata {
	return model.PoolMetadata{
		ID:     uint64(m.ID),
		Tick:   int64(m.Tick),
		Fee:    uint64(m.Fee),
		PairID: model.PairID{Token0: m.PairID.Token0, Token1: m.PairID.Token1},
	}
}

func normalizeDeposit(d wire.DepositRecord) model.DepositRecord {
	out := model.DepositRecord{
		PairID:          model.PairID{Token0: d.PairID.Token0, Token1: d.PairID.Token1},
		SharesOwned:     d.SharesOwned,
		CenterTickIndex: int64(d.CenterTickIndex),
		LowerTickIndex:  int64(d.LowerTickIndex),
		UpperTickIndex:  int64(d.UpperTickIndex),
	}
	if d.Fee != nil {
		fee := int64(*d.Fee)
		out.Fee = &fee
	}
	return out
}

func normalizeTradePair(p wire.TradePairID) model.TradePairID {
	return model.TradePairID{MakerDenom: p.MakerDenom, TakerDenom: p.TakerDenom}
}

func normalizeCoin(c wire.Coin) model.Coin {
	return model.Coin{Denom: c.Denom, Amount: c.Amount}
}
