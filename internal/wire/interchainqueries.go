package wire

const interchainqueriesService = "/neutron.interchainqueries.Query/"

// InterchainQueriesParams are the interchainqueries module parameters.
type InterchainQueriesParams struct {
	QuerySubmitTimeout  Uint64 `json:"query_submit_timeout"`
	QueryDeposit        []Coin `json:"query_deposit"`
	TxQueryRemovalLimit Uint64 `json:"tx_query_removal_limit"`
}

type InterchainQueriesParamsRequest struct{}

func (*InterchainQueriesParamsRequest) Route() string {
	return interchainqueriesService + "Params"
}
func (*InterchainQueriesParamsRequest) Marshal() ([]byte, error) { return []byte{}, nil }

type InterchainQueriesParamsResponse struct {
	Params InterchainQueriesParams `json:"params"`
}
