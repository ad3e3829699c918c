package model

// CurrencyPair is a base/quote ticker pair, e.g. BTC/USD.
type CurrencyPair struct {
	Base  string `json:"base"`
	Quote string `json:"quote"`
}

func (c CurrencyPair) String() string {
	return c.Base + "/" + c.Quote
}

// Ticker is the on-chain configuration of a market's ticker.
type Ticker struct {
	CurrencyPair     CurrencyPair `json:"currency_pair"`
	Decimals         uint64       `json:"decimals"`
	MinProviderCount uint64       `json:"min_provider_count"`
	Enabled          bool         `json:"enabled"`
	MetadataJSON     string       `json:"metadata_json"`
}

// ProviderConfig describes how one price provider quotes a ticker.
type ProviderConfig struct {
	Name            string        `json:"name"`
	OffChainTicker  string        `json:"off_chain_ticker"`
	NormalizeByPair *CurrencyPair `json:"normalize_by_pair"`
	Invert          bool          `json:"invert"`
	MetadataJSON    string        `json:"metadata_json"`
}

type Market struct {
	Ticker          Ticker           `json:"ticker"`
	ProviderConfigs []ProviderConfig `json:"provider_configs"`
}

// MarketMap is keyed by the ticker string (BASE/QUOTE).
type MarketMap struct {
	Markets map[string]Market `json:"markets"`
}

type MarketmapParams struct {
	Version           uint64   `json:"version"`
	MarketAuthorities []string `json:"market_authorities"`
	Admin             string   `json:"admin,omitempty"`
}

type MarketmapParamsRequest struct{}

type MarketmapParamsResponse struct {
	Params MarketmapParams `json:"params"`
}

type MarketMapRequest struct{}

type MarketMapResponse struct {
	MarketMap   MarketMap `json:"market_map"`
	LastUpdated uint64    `json:"last_updated"`
	ChainID     string    `json:"chain_id"`
}

type MarketRequest struct {
	CurrencyPair CurrencyPair `json:"currency_pair"`
}

type MarketResponse struct {
	Market Market `json:"market"`
}

type LastUpdatedRequest struct{}

type LastUpdatedResponse struct {
	LastUpdated uint64 `json:"last_updated"`
}
