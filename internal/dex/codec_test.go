package dex

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dexQuery/internal/model"
	"dexQuery/internal/wire"
)

func TestOrderTypeRoundTrip(t *testing.T) {
	for _, v := range []model.LimitOrderType{
		model.GoodTilCancelled,
		model.FillOrKill,
		model.ImmediateOrCancel,
		model.JustInTime,
		model.GoodTilTime,
	} {
		decoded, err := DecodeOrderType(EncodeOrderType(v))
		require.NoError(t, err)
		assert.Equal(t, v, decoded)
	}
}

func TestDecodeOrderTypeOutOfRange(t *testing.T) {
	for _, code := range []int32{5, -1, 42, -2147483648, 2147483647} {
		_, err := DecodeOrderType(code)
		require.Error(t, err, "code %d", code)
		assert.True(t, errors.Is(err, ErrInvalidEnum))

		var enumErr *InvalidEnumError
		require.True(t, errors.As(err, &enumErr))
		assert.Equal(t, int64(code), enumErr.Value)
		assert.Equal(t, "0-4", enumErr.ValidRange)
		assert.Contains(t, err.Error(), "0-4")
	}
}

func TestDecodeWireOrderTypeByName(t *testing.T) {
	got, err := decodeWireOrderType(wire.EnumValue{Name: "JUST_IN_TIME"})
	require.NoError(t, err)
	assert.Equal(t, model.JustInTime, got)

	_, err = decodeWireOrderType(wire.EnumValue{Name: "GOOD_TIL_FOREVER"})
	assert.ErrorIs(t, err, ErrInvalidEnum)
	assert.Contains(t, err.Error(), "GOOD_TIL_CANCELLED, FILL_OR_KILL, IMMEDIATE_OR_CANCEL, JUST_IN_TIME, GOOD_TIL_TIME")
	assert.NotContains(t, err.Error(), "0-4")
}

func TestNormalizeOrderTypeBeyondInt32(t *testing.T) {
	for _, raw := range []string{
		`{"limit_orders":[{"order_type":99999999999}]}`,
		`{"limit_orders":[{"order_type":"-99999999999"}]}`,
	} {
		var resp wire.AllUserLimitOrdersResponse
		require.NoError(t, json.Unmarshal([]byte(raw), &resp))

		_, err := NormalizeAllUserLimitOrders(resp)
		var enumErr *InvalidEnumError
		require.True(t, errors.As(err, &enumErr), "raw %s: %v", raw, err)
		assert.Contains(t, []int64{99999999999, -99999999999}, enumErr.Value)
		assert.Equal(t, "0-4", enumErr.ValidRange)
	}
}

func strPtr(s string) *string { return &s }

func TestDecodeExpiration(t *testing.T) {
	got, err := DecodeExpiration(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = DecodeExpiration(strPtr("0001-01-01T00:00:00Z"))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(0), *got)

	got, err = DecodeExpiration(strPtr("2023-06-01T12:00:00Z"))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(1685620800), *got)

	got, err = DecodeExpiration(strPtr("2023-06-01T14:00:00+02:00"))
	require.NoError(t, err)
	assert.Equal(t, int64(1685620800), *got)
}

func TestDecodeExpirationRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"not-a-date", "", "2023-06-01", "0001-01-01 00:00:00"} {
		_, err := DecodeExpiration(strPtr(raw))
		require.Error(t, err, raw)
		var timeErr *TimeParseError
		require.True(t, errors.As(err, &timeErr))
		assert.Equal(t, raw, timeErr.Raw)
		assert.ErrorIs(t, err, ErrTimeParse)
	}
}

func TestDecodeExpirationOnlyExactSentinelIsZero(t *testing.T) {
	got, err := DecodeExpiration(strPtr("0001-01-01T00:00:00.000Z"))
	require.NoError(t, err)
	assert.NotEqual(t, int64(0), *got)
}

func TestPageRequestToWire(t *testing.T) {
	assert.Nil(t, PageRequestToWire(nil))

	for _, p := range []model.PageRequest{
		{},
		{Key: []byte{0xde, 0xad}, Offset: 3, Limit: 50, CountTotal: true, Reverse: true},
		{Offset: ^uint64(0), Limit: ^uint64(0)},
	} {
		w := PageRequestToWire(&p)
		require.NotNil(t, w)
		assert.Equal(t, p.Key, w.Key)
		assert.Equal(t, p.Offset, w.Offset)
		assert.Equal(t, p.Limit, w.Limit)
		assert.Equal(t, p.CountTotal, w.CountTotal)
		assert.Equal(t, p.Reverse, w.Reverse)
	}
}

func TestPageResponseFromWire(t *testing.T) {
	assert.Nil(t, PageResponseFromWire(nil))

	total := wire.Uint64(12)
	got := PageResponseFromWire(&wire.PageResponse{NextKey: []byte{0x01}, Total: &total})
	require.NotNil(t, got)
	assert.Equal(t, []byte{0x01}, got.NextKey)
	require.NotNil(t, got.Total)
	assert.Equal(t, uint64(12), *got.Total)
	assert.True(t, got.HasNext())

	last := PageResponseFromWire(&wire.PageResponse{})
	assert.Nil(t, last.Total)
	assert.False(t, last.HasNext())
}

func TestTranslateEstimateMultiHopSwap(t *testing.T) {
	got := TranslateEstimateMultiHopSwap(model.EstimateMultiHopSwapRequest{
		Creator:        "neutron1creator",
		Receiver:       "neutron1receiver",
		Routes:         [][]string{{"uatom", "uosmo"}, {"uatom", "uusdc", "uosmo"}},
		AmountIn:       "1000",
		ExitLimitPrice: "0.5",
		PickBestRoute:  true,
	})
	require.Len(t, got.Routes, 2)
	assert.Equal(t, []string{"uatom", "uosmo"}, got.Routes[0].Hops)
	assert.Equal(t, []string{"uatom", "uusdc", "uosmo"}, got.Routes[1].Hops)
	assert.True(t, got.PickBestRoute)
	assert.Equal(t, "neutron1creator", got.Creator)
	assert.Equal(t, "neutron1receiver", got.Receiver)
	assert.Equal(t, "1000", got.AmountIn)
	assert.Equal(t, "0.5", got.ExitLimitPrice)
	assert.Equal(t, "/neutron.dex.Query/EstimateMultiHopSwap", got.Route())
}

func TestTranslateEstimateMultiHopSwapEmptyRoutes(t *testing.T) {
	got := TranslateEstimateMultiHopSwap(model.EstimateMultiHopSwapRequest{Routes: [][]string{}})
	assert.Empty(t, got.Routes)

	got = TranslateEstimateMultiHopSwap(model.EstimateMultiHopSwapRequest{Routes: [][]string{{}, {"a"}}})
	require.Len(t, got.Routes, 2)
	assert.Empty(t, got.Routes[0].Hops)
	assert.Equal(t, []string{"a"}, got.Routes[1].Hops)
}

func TestTranslateEstimatePlaceLimitOrder(t *testing.T) {
	req := model.EstimatePlaceLimitOrderRequest{
		Creator:          "c",
		Receiver:         "r",
		TokenIn:          "untrn",
		TokenOut:         "uatom",
		TickIndexInToOut: -120,
		AmountIn:         "500",
		OrderType:        model.GoodTilTime,
	}
	got := TranslateEstimatePlaceLimitOrder(req)
	assert.Nil(t, got.ExpirationTime)
	assert.Equal(t, "", got.MaxAmountOut)
	assert.Equal(t, int32(4), got.OrderType)
	assert.Equal(t, int64(-120), got.TickIndexInToOut)

	expiry := int64(1700000000)
	maxOut := "42"
	req.ExpirationTime = &expiry
	req.MaxAmountOut = &maxOut
	got = TranslateEstimatePlaceLimitOrder(req)
	require.NotNil(t, got.ExpirationTime)
	assert.Equal(t, expiry, got.ExpirationTime.GetSeconds())
	assert.Equal(t, int32(0), got.ExpirationTime.GetNanos())
	assert.Equal(t, "42", got.MaxAmountOut)
}

func TestTranslateCopiesScalarsVerbatim(t *testing.T) {
	page := &model.PageRequest{Limit: 5}

	user := TranslateLimitOrderTrancheUser(model.LimitOrderTrancheUserRequest{Address: "a", TrancheKey: "k", CalcWithdrawableShares: true})
	assert.Equal(t, wire.LimitOrderTrancheUserRequest{Address: "a", TrancheKey: "k", CalcWithdrawableShares: true}, *user)

	tranche := TranslateGetLimitOrderTranche(model.GetLimitOrderTrancheRequest{PairID: "p", TickIndex: -9, TokenIn: "t", TrancheKey: "k"})
	assert.Equal(t, wire.GetLimitOrderTrancheRequest{PairID: "p", TickIndex: -9, TokenIn: "t", TrancheKey: "k"}, *tranche)

	all := TranslateAllTickLiquidity(model.AllTickLiquidityRequest{PairID: "p", TokenIn: "t", Pagination: page})
	assert.Equal(t, "p", all.PairID)
	assert.Equal(t, "t", all.TokenIn)
	assert.Equal(t, uint64(5), all.Pagination.Limit)

	reserves := TranslateGetPoolReserves(model.GetPoolReservesRequest{PairID: "p", TokenIn: "t", TickIndex: 3, Fee: 30})
	assert.Equal(t, wire.GetPoolReservesRequest{PairID: "p", TokenIn: "t", TickIndex: 3, Fee: 30}, *reserves)

	inactive := TranslateGetInactiveLimitOrderTranche(model.GetInactiveLimitOrderTrancheRequest{PairID: "p", TokenIn: "t", TickIndex: 1, TrancheKey: "k"})
	assert.Equal(t, wire.GetInactiveLimitOrderTrancheRequest{PairID: "p", TokenIn: "t", TickIndex: 1, TrancheKey: "k"}, *inactive)

	assert.Equal(t, uint64(7), TranslatePoolByID(model.PoolByIDRequest{PoolID: 7}).PoolID)
	assert.Equal(t, uint64(8), TranslateGetPoolMetadata(model.GetPoolMetadataRequest{ID: 8}).ID)
	assert.Equal(t, wire.PoolRequest{PairID: "p", TickIndex: -1, Fee: 1}, *TranslatePool(model.PoolRequest{PairID: "p", TickIndex: -1, Fee: 1}))
	assert.Equal(t, "a", TranslateAllUserDeposits(model.AllUserDepositsRequest{Address: "a"}).Address)
	assert.Nil(t, TranslateAllPoolMetadata(model.AllPoolMetadataRequest{}).Pagination)
}

func TestNormalizeLiquidity(t *testing.T) {
	_, err := NormalizeLiquidity(wire.TickLiquidity{
		PoolReserves:      &wire.PoolReserves{},
		LimitOrderTranche: &wire.LimitOrderTranche{},
	})
	var malformed *MalformedLiquidityError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, 2, malformed.Populated)

	_, err = NormalizeLiquidity(wire.TickLiquidity{})
	assert.ErrorIs(t, err, ErrMalformedLiquidity)

	got, err := NormalizeLiquidity(wire.TickLiquidity{LimitOrderTranche: &wire.LimitOrderTranche{ExpirationTime: strPtr("0001-01-01T00:00:00Z")}})
	require.NoError(t, err)
	assert.Equal(t, model.LiquidityLimitOrderTranche, got.Kind())
	assert.Equal(t, int64(0), *got.LimitOrderTranche.ExpirationTime)
}

func TestNormalizeAllTickLiquidityFailsWhole(t *testing.T) {
	_, err := NormalizeAllTickLiquidity(wire.AllTickLiquidityResponse{TickLiquidity: []wire.TickLiquidity{
		{PoolReserves: &wire.PoolReserves{}},
		{LimitOrderTranche: &wire.LimitOrderTranche{ExpirationTime: strPtr("tomorrow")}},
	}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeParse)
	assert.Contains(t, err.Error(), "tick_liquidity[1]")
}

func TestNormalizeTrancheUserRejectsUnknownOrderType(t *testing.T) {
	_, err := NormalizeAllUserLimitOrders(wire.AllUserLimitOrdersResponse{LimitOrders: []wire.LimitOrderTrancheUser{
		{OrderType: wire.EnumValue{Number: 1}},
		{OrderType: wire.EnumValue{Number: 9}},
	}})
	var enumErr *InvalidEnumError
	require.True(t, errors.As(err, &enumErr))
	assert.Equal(t, int64(9), enumErr.Value)
}

func TestNormalizePool(t *testing.T) {
	fee := wire.Uint64(5)
	got, err := NormalizePool(wire.PoolResponse{Pool: wire.Pool{
		ID:         3,
		LowerTick0: &wire.PoolReserves{Key: wire.PoolReservesKey{TickIndexTakerToMaker: -4, Fee: &fee}},
	}})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), got.Pool.ID)
	require.NotNil(t, got.Pool.LowerTick0)
	assert.Equal(t, int64(-4), got.Pool.LowerTick0.Key.TickIndexTakerToMaker)
	assert.Equal(t, uint64(5), *got.Pool.LowerTick0.Key.Fee)
	assert.Nil(t, got.Pool.UpperTick1)
}
