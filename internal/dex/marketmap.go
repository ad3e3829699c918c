package dex

import (
	"dexQuery/internal/model"
	"dexQuery/internal/wire"
)

func TranslateMarketmapParams(model.MarketmapParamsRequest) *wire.MarketmapParamsRequest {
	return &wire.MarketmapParamsRequest{}
}

func TranslateMarketMap(model.MarketMapRequest) *wire.MarketMapRequest {
	return &wire.MarketMapRequest{}
}

func TranslateMarket(r model.MarketRequest) *wire.MarketRequest {
	return &wire.MarketRequest{CurrencyPair: wire.CurrencyPair{Base: r.CurrencyPair.Base, Quote: r.CurrencyPair.Quote}}
}

func TranslateLastUpdated(model.LastUpdatedRequest) *wire.LastUpdatedRequest {
	return &wire.LastUpdatedRequest{}
}

func NormalizeMarketmapParams(r wire.MarketmapParamsResponse) (model.MarketmapParamsResponse, error) {
	return model.MarketmapParamsResponse{Params: model.MarketmapParams{
		Version:           uint64(r.Params.Version),
		MarketAuthorities: r.Params.MarketAuthorities,
		Admin:             r.Params.Admin,
	}}, nil
}

func NormalizeMarketMap(r wire.MarketMapResponse) (model.MarketMapResponse, error) {
	var markets map[string]model.Market
	if r.MarketMap.Markets != nil {
		markets = make(map[string]model.Market, len(r.MarketMap.Markets))
		for ticker, m := range r.MarketMap.Markets {
			markets[ticker] = normalizeMarket(m)
		}
	}
	return model.MarketMapResponse{
		MarketMap:   model.MarketMap{Markets: markets},
		LastUpdated: uint64(r.LastUpdated),
		ChainID:     r.ChainID,
	}, nil
}

func NormalizeMarket(r wire.MarketResponse) (model.MarketResponse, error) {
	return model.MarketResponse{Market: normalizeMarket(r.Market)}, nil
}

func NormalizeLastUpdated(r wire.LastUpdatedResponse) (model.LastUpdatedResponse, error) {
	return model.LastUpdatedResponse{LastUpdated: uint64(r.LastUpdated)}, nil
}

func normalizeMarket(m wire.Market) model.Market {
	out := model.Market{
		Ticker: model.Ticker{
			CurrencyPair:     normalizeCurrencyPair(m.Ticker.CurrencyPair),
			Decimals:         uint64(m.Ticker.Decimals),
			MinProviderCount: uint64(m.Ticker.MinProviderCount),
			Enabled:          m.Ticker.Enabled,
			MetadataJSON:     m.Ticker.MetadataJSON,
		},
	}
	if m.ProviderConfigs != nil {
		out.ProviderConfigs = make([]model.ProviderConfig, len(m.ProviderConfigs))
		for i, p := range m.ProviderConfigs {
			cfg := model.ProviderConfig{
				Name:           p.Name,
				OffChainTicker: p.OffChainTicker,
				Invert:         p.Invert,
				MetadataJSON:   p.MetadataJSON,
			}
			if p.NormalizeByPair != nil {
				pair := normalizeCurrencyPair(*p.NormalizeByPair)
				cfg.NormalizeByPair = &pair
			}
			out.ProviderConfigs[i] = cfg
		}
	}
	return out
}

func normalizeCurrencyPair(p wire.CurrencyPair) model.CurrencyPair {
	return model.CurrencyPair{Base: p.Base, Quote: p.Quote}
}
