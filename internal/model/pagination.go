package model

// PageRequest is the caller-facing cursor pagination descriptor.
type PageRequest struct {
	Key        []byte `json:"key"`
	Offset     uint64 `json:"offset"`
	Limit      uint64 `json:"limit"`
	CountTotal bool   `json:"count_total"`
	Reverse    bool   `json:"reverse"`
}

// PageResponse carries the cursor for the next page and the optional total count.
type PageResponse struct {
	NextKey []byte  `json:"next_key,omitempty"`
	Total   *uint64 `json:"total,omitempty"`
}

// HasNext reports whether another page can be requested.
func (p *PageResponse) HasNext() bool {
	return p != nil && len(p.NextKey) > 0
}
