package dex

import (
	"dexQuery/internal/model"
	"dexQuery/internal/wire"
)

// TranslateMinInterchainQueryDeposit reads the deposit from the interchainqueries
// module parameters.
func TranslateMinInterchainQueryDeposit(model.MinInterchainQueryDepositRequest) *wire.InterchainQueriesParamsRequest {
	return &wire.InterchainQueriesParamsRequest{}
}

func NormalizeMinInterchainQueryDeposit(r wire.InterchainQueriesParamsResponse) (model.MinInterchainQueryDepositResponse, error) {
	deposit := make([]model.Coin, 0, len(r.Params.QueryDeposit))
	for _, c := range r.Params.QueryDeposit {
		deposit = append(deposit, normalizeCoin(c))
	}
	return model.MinInterchainQueryDepositResponse{QueryDeposit: deposit}, nil
}
