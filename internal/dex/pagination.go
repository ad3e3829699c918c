package dex

import (
	"dexQuery/internal/model"
	"dexQuery/internal/wire"
)

// PageRequestToWire copies a caller page request field for field.
func PageRequestToWire(p *model.PageRequest) *wire.PageRequest {
	if p == nil {
		return nil
	}
	return &wire.PageRequest{
		Key:        p.Key,
		Offset:     p.Offset,
		Limit:      p.Limit,
		CountTotal: p.CountTotal,
		Reverse:    p.Reverse,
	}
}

// PageResponseFromWire copies a wire page response field for field.
func PageResponseFromWire(p *wire.PageResponse) *model.PageResponse {
	if p == nil {
		return nil
	}
	out := &model.PageResponse{NextKey: p.NextKey}
	if p.Total != nil {
		total := uint64(*p.Total)
		out.Total = &total
	}
	return out
}
