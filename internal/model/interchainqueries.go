package model

// MinInterchainQueryDepositRequest asks for the deposit required to register an
// interchain query.
type MinInterchainQueryDepositRequest struct{}

type MinInterchainQueryDepositResponse struct {
	QueryDeposit []Coin `json:"query_deposit"`
}
