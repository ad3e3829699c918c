package wire

const marketmapService = "/slinky.marketmap.v1.Query/"

// CurrencyPair uses the capitalised keys of the connect/slinky oracle types.
type CurrencyPair struct {
	Base  string `json:"Base"`
	Quote string `json:"Quote"`
}

func (c CurrencyPair) Marshal() ([]byte, error) {
	var e encoder
	e.string(1, c.Base)
	e.string(2, c.Quote)
	return e.finish()
}

type Ticker struct {
	CurrencyPair     CurrencyPair `json:"currency_pair"`
	Decimals         Uint64       `json:"decimals"`
	MinProviderCount Uint64       `json:"min_provider_count"`
	Enabled          bool         `json:"enabled"`
	MetadataJSON     string       `json:"metadata_JSON"`
}

type ProviderConfig struct {
	Name            string        `json:"name"`
	OffChainTicker  string        `json:"off_chain_ticker"`
	NormalizeByPair *CurrencyPair `json:"normalize_by_pair"`
	Invert          bool          `json:"invert"`
	MetadataJSON    string        `json:"metadata_JSON"`
}

type Market struct {
	Ticker          Ticker           `json:"ticker"`
	ProviderConfigs []ProviderConfig `json:"provider_configs"`
}

type MarketMap struct {
	Markets map[string]Market `json:"markets"`
}

type MarketmapParams struct {
	Version           Uint64   `json:"version"`
	MarketAuthorities []string `json:"market_authorities"`
	Admin             string   `json:"admin"`
}

type MarketmapParamsRequest struct{}

func (*MarketmapParamsRequest) Route() string            { return marketmapService + "Params" }
func (*MarketmapParamsRequest) Marshal() ([]byte, error) { return []byte{}, nil }

type MarketmapParamsResponse struct {
	Params MarketmapParams `json:"params"`
}

type MarketMapRequest struct{}

func (*MarketMapRequest) Route() string            { return marketmapService + "MarketMap" }
func (*MarketMapRequest) Marshal() ([]byte, error) { return []byte{}, nil }

type MarketMapResponse struct {
	MarketMap   MarketMap `json:"market_map"`
	LastUpdated Uint64    `json:"last_updated"`
	ChainID     string    `json:"chain_id"`
}

type MarketRequest struct {
	CurrencyPair CurrencyPair
}

func (*MarketRequest) Route() string { return marketmapService + "Market" }

func (r *MarketRequest) Marshal() ([]byte, error) {
	var e encoder
	body, err := r.CurrencyPair.Marshal()
	e.message(1, body, err)
	return e.finish()
}

type MarketResponse struct {
	Market Market `json:"market"`
}

type LastUpdatedRequest struct{}

func (*LastUpdatedRequest) Route() string            { return marketmapService + "LastUpdated" }
func (*LastUpdatedRequest) Marshal() ([]byte, error) { return []byte{}, nil }

type LastUpdatedResponse struct {
	LastUpdated Uint64 `json:"last_updated"`
}
