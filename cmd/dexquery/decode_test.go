package main

import (
	"encoding/json"
	"strings"
	"testing"

	"dexQuery/internal/model"
)

type memoryWriter struct {
	values []interface{}
}

func (m *memoryWriter) Write(value interface{}) error {
	m.values = append(m.values, value)
	return nil
}

func TestDecodeRecorded(t *testing.T) {
	input := strings.Join([]string{
		`{"kind":"get_pool_metadata","response":{"Pool_metadata":{"id":"1","tick":"2","fee":"3","pair_id":{"token0":"a","token1":"b"}}}}`,
		``,
		`{"route":"/neutron.dex.Query/LimitOrderTrancheAll","response":{"limit_order_tranche":[{"expiration_time":"soon"}]}}`,
		`not json`,
		`{"response":{"params":{"fee_tiers":["0","1","2"]}}}`,
		`{"kind":"unknown","response":{}}`,
	}, "\n")

	out, errs := &memoryWriter{}, &memoryWriter{}
	stats, err := decodeRecorded(strings.NewReader(input), "params", out, errs)
	if err != nil {
		t.Fatalf("decodeRecorded: %v", err)
	}
	if stats.total != 5 || stats.decoded != 2 || stats.failed != 3 {
		t.Fatalf("unexpected stats %+v", stats)
	}

	first := out.values[0].(model.NormalizedResponse)
	if first.Kind != "get_pool_metadata" || first.Line != 1 {
		t.Fatalf("unexpected first record %+v", first)
	}
	meta := first.Response.(model.GetPoolMetadataResponse)
	if meta.PoolMetadata.ID != 1 || meta.PoolMetadata.PairID.Token1 != "b" {
		t.Fatalf("unexpected metadata %+v", meta)
	}

	params := out.values[1].(model.NormalizedResponse)
	if params.Kind != "params" || params.Line != 5 {
		t.Fatalf("unexpected params record %+v", params)
	}

	routeErr := errs.values[0].(model.DecodeError)
	if routeErr.Line != 3 || routeErr.Route != "/neutron.dex.Query/LimitOrderTrancheAll" {
		t.Fatalf("unexpected decode error %+v", routeErr)
	}
	if !strings.Contains(routeErr.Error, "RFC 3339") {
		t.Fatalf("expected timestamp error, got %s", routeErr.Error)
	}
	if errs.values[1].(model.DecodeError).Line != 4 {
		t.Fatalf("unexpected line for invalid json: %+v", errs.values[1])
	}
	if errs.values[2].(model.DecodeError).Kind != "unknown" {
		t.Fatalf("unexpected unknown-kind error %+v", errs.values[2])
	}
}

func TestBuildRequestExpiration(t *testing.T) {
	raw, err := buildRequest("estimate_place_limit_order", `{"token_in":"untrn","order_type":"GOOD_TIL_TIME"}`, "2023-06-01T12:00:00Z")
	if err != nil {
		t.Fatalf("buildRequest: %v", err)
	}
	var req model.EstimatePlaceLimitOrderRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		t.Fatalf("decode request: %v", err)
	}
	if req.ExpirationTime == nil || *req.ExpirationTime != 1685620800 {
		t.Fatalf("unexpected expiration %v", req.ExpirationTime)
	}
	if req.OrderType != model.GoodTilTime || req.TokenIn != "untrn" {
		t.Fatalf("request fields lost: %+v", req)
	}

	if _, err := buildRequest("params", `{}`, "1700000000"); err == nil {
		t.Fatalf("expected error for expiration on another kind")
	}

	raw, err = buildRequest("params", `{}`, "")
	if err != nil || string(raw) != `{}` {
		t.Fatalf("unexpected passthrough %s %v", raw, err)
	}
}
