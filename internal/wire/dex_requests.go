package wire

import "google.golang.org/protobuf/types/known/timestamppb"

const dexService = "/neutron.dex.Query/"

type ParamsRequest struct{}

func (*ParamsRequest) Route() string            { return dexService + "Params" }
func (*ParamsRequest) Marshal() ([]byte, error) { return []byte{}, nil }

type LimitOrderTrancheUserRequest struct {
	Address                string
	TrancheKey             string
	CalcWithdrawableShares bool
}

func (*LimitOrderTrancheUserRequest) Route() string { return dexService + "LimitOrderTrancheUser" }

func (r *LimitOrderTrancheUserRequest) Marshal() ([]byte, error) {
	var e encoder
	e.string(1, r.Address)
	e.string(2, r.TrancheKey)
	e.bool(3, r.CalcWithdrawableShares)
	return e.finish()
}

type LimitOrderTrancheUserAllRequest struct {
	Pagination *PageRequest
}

func (*LimitOrderTrancheUserAllRequest) Route() string {
	return dexService + "LimitOrderTrancheUserAll"
}

func (r *LimitOrderTrancheUserAllRequest) Marshal() ([]byte, error) {
	var e encoder
	e.page(1, r.Pagination)
	return e.finish()
}

type AllUserLimitOrdersRequest struct {
	Address    string
	Pagination *PageRequest
}

func (*AllUserLimitOrdersRequest) Route() string {
	return dexService + "LimitOrderTrancheUserAllByAddress"
}

func (r *AllUserLimitOrdersRequest) Marshal() ([]byte, error) {
	var e encoder
	e.string(1, r.Address)
	e.page(2, r.Pagination)
	return e.finish()
}

type GetLimitOrderTrancheRequest struct {
	PairID     string
	TickIndex  int64
	TokenIn    string
	TrancheKey string
}

func (*GetLimitOrderTrancheRequest) Route() string { return dexService + "LimitOrderTranche" }

func (r *GetLimitOrderTrancheRequest) Marshal() ([]byte, error) {
	var e encoder
	e.string(1, r.PairID)
	e.int64(2, r.TickIndex)
	e.string(3, r.TokenIn)
	e.string(4, r.TrancheKey)
	return e.finish()
}

// PairPageRequest is the shape shared by the pair-scoped list queries.
type PairPageRequest struct {
	PairID     string
	TokenIn    string
	Pagination *PageRequest
}

func (r *PairPageRequest) Marshal() ([]byte, error) {
	var e encoder
	e.string(1, r.PairID)
	e.string(2, r.TokenIn)
	e.page(3, r.Pagination)
	return e.finish()
}

type AllLimitOrderTrancheRequest struct{ PairPageRequest }

func (*AllLimitOrderTrancheRequest) Route() string { return dexService + "LimitOrderTrancheAll" }

type AllTickLiquidityRequest struct{ PairPageRequest }

func (*AllTickLiquidityRequest) Route() string { return dexService + "TickLiquidityAll" }

type AllPoolReservesRequest struct{ PairPageRequest }

func (*AllPoolReservesRequest) Route() string { return dexService + "PoolReservesAll" }

type AllUserDepositsRequest struct {
	Address    string
	Pagination *PageRequest
}

func (*AllUserDepositsRequest) Route() string { return dexService + "UserDepositsAll" }

func (r *AllUserDepositsRequest) Marshal() ([]byte, error) {
	var e encoder
	e.string(1, r.Address)
	e.page(2, r.Pagination)
	return e.finish()
}

type GetInactiveLimitOrderTrancheRequest struct {
	PairID     string
	TokenIn    string
	TickIndex  int64
	TrancheKey string
}

func (*GetInactiveLimitOrderTrancheRequest) Route() string {
	return dexService + "InactiveLimitOrderTranche"
}

func (r *GetInactiveLimitOrderTrancheRequest) Marshal() ([]byte, error) {
	var e encoder
	e.string(1, r.PairID)
	e.string(2, r.TokenIn)
	e.int64(3, r.TickIndex)
	e.string(4, r.TrancheKey)
	return e.finish()
}

type AllInactiveLimitOrderTrancheRequest struct {
	Pagination *PageRequest
}

func (*AllInactiveLimitOrderTrancheRequest) Route() string {
	return dexService + "InactiveLimitOrderTrancheAll"
}

func (r *AllInactiveLimitOrderTrancheRequest) Marshal() ([]byte, error) {
	var e encoder
	e.page(1, r.Pagination)
	return e.finish()
}

type GetPoolReservesRequest struct {
	PairID    string
	TokenIn   string
	TickIndex int64
	Fee       uint64
}

func (*GetPoolReservesRequest) Route() string { return dexService + "PoolReserves" }

func (r *GetPoolReservesRequest) Marshal() ([]byte, error) {
	var e encoder
	e.string(1, r.PairID)
	e.string(2, r.TokenIn)
	e.int64(3, r.TickIndex)
	e.uint64(4, r.Fee)
	return e.finish()
}

// MultiHopRoute is one candidate path of denoms.
type MultiHopRoute struct {
	Hops []string
}

func (r MultiHopRoute) Marshal() ([]byte, error) {
	var e encoder
	e.repeatedString(1, r.Hops)
	return e.finish()
}

type EstimateMultiHopSwapRequest struct {
	Creator        string
	Receiver       string
	Routes         []MultiHopRoute
	AmountIn       string
	ExitLimitPrice string
	PickBestRoute  bool
}

func (*EstimateMultiHopSwapRequest) Route() string { return dexService + "EstimateMultiHopSwap" }

func (r *EstimateMultiHopSwapRequest) Marshal() ([]byte, error) {
	var e encoder
	e.string(1, r.Creator)
	e.string(2, r.Receiver)
	for _, route := range r.Routes {
		body, err := route.Marshal()
		e.message(3, body, err)
	}
	e.string(4, r.AmountIn)
	e.string(5, r.ExitLimitPrice)
	e.bool(6, r.PickBestRoute)
	return e.finish()
}

type EstimatePlaceLimitOrderRequest struct {
	Creator          string
	Receiver         string
	TokenIn          string
	TokenOut         string
	TickIndexInToOut int64
	AmountIn         string
	OrderType        int32
	ExpirationTime   *timestamppb.Timestamp
	MaxAmountOut     string
}

func (*EstimatePlaceLimitOrderRequest) Route() string {
	return dexService + "EstimatePlaceLimitOrder"
}

func (r *EstimatePlaceLimitOrderRequest) Marshal() ([]byte, error) {
	var e encoder
	e.string(1, r.Creator)
	e.string(2, r.Receiver)
	e.string(3, r.TokenIn)
	e.string(4, r.TokenOut)
	e.int64(5, r.TickIndexInToOut)
	e.string(6, r.AmountIn)
	e.enum(7, r.OrderType)
	e.timestamp(8, r.ExpirationTime)
	e.string(9, r.MaxAmountOut)
	return e.finish()
}

type PoolRequest struct {
	PairID    string
	TickIndex int64
	Fee       uint64
}

func (*PoolRequest) Route() string { return dexService + "Pool" }

func (r *PoolRequest) Marshal() ([]byte, error) {
	var e encoder
	e.string(1, r.PairID)
	e.int64(2, r.TickIndex)
	e.uint64(3, r.Fee)
	return e.finish()
}

type PoolByIDRequest struct {
	PoolID uint64
}

func (*PoolByIDRequest) Route() string { return dexService + "PoolByID" }

func (r *PoolByIDRequest) Marshal() ([]byte, error) {
	var e encoder
	e.uint64(1, r.PoolID)
	return e.finish()
}

type GetPoolMetadataRequest struct {
	ID uint64
}

func (*GetPoolMetadataRequest) Route() string { return dexService + "PoolMetadata" }

func (r *GetPoolMetadataRequest) Marshal() ([]byte, error) {
	var e encoder
	e.uint64(1, r.ID)
	return e.finish()
}

type AllPoolMetadataRequest struct {
	Pagination *PageRequest
}

func (*AllPoolMetadataRequest) Route() string { return dexService + "PoolMetadataAll" }

func (r *AllPoolMetadataRequest) Marshal() ([]byte, error) {
	var e encoder
	e.page(1, r.Pagination)
	return e.finish()
}
