package wire

import "google.golang.org/protobuf/encoding/protowire"

// PageRequest is cosmos.base.query.v1beta1.PageRequest.
type PageRequest struct {
	Key        []byte
	Offset     uint64
	Limit      uint64
	CountTotal bool
	Reverse    bool
}

func (p *PageRequest) Marshal() ([]byte, error) {
	var e encoder
	e.bytes(1, p.Key)
	e.uint64(2, p.Offset)
	e.uint64(3, p.Limit)
	e.bool(4, p.CountTotal)
	e.bool(5, p.Reverse)
	return e.finish()
}

// PageResponse is cosmos.base.query.v1beta1.PageResponse in proto3 JSON.
type PageResponse struct {
	NextKey []byte  `json:"next_key"`
	Total   *Uint64 `json:"total"`
}

func (e *encoder) page(num protowire.Number, p *PageRequest) {
	if p == nil {
		return
	}
	body, err := p.Marshal()
	e.message(num, body, err)
}
