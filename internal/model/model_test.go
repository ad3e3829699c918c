package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestLimitOrderTypeJSONByName(t *testing.T) {
	payload := LimitOrderTrancheUser{
		TrancheKey: "tk",
		OrderType:  ImmediateOrCancel,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded["order_type"] != "IMMEDIATE_OR_CANCEL" {
		t.Fatalf("order_type should be encoded by name, got %v", decoded["order_type"])
	}

	var back LimitOrderTrancheUser
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal back failed: %v", err)
	}
	if back.OrderType != ImmediateOrCancel {
		t.Fatalf("order type mismatch: %v", back.OrderType)
	}
}

func TestLimitOrderTypeRejectsUnknown(t *testing.T) {
	var v LimitOrderType
	if err := json.Unmarshal([]byte(`"GOOD_TIL_FOREVER"`), &v); err == nil {
		t.Fatalf("expected error for unknown name")
	}
	if err := json.Unmarshal([]byte(`2`), &v); err == nil {
		t.Fatalf("expected error for numeric value")
	}
	if _, err := json.Marshal(LimitOrderType(9)); err == nil {
		t.Fatalf("expected error marshalling undeclared variant")
	}
	if got := LimitOrderType(9).String(); got != "LimitOrderType(9)" {
		t.Fatalf("unexpected string: %s", got)
	}
}

func TestLimitOrderTypeTable(t *testing.T) {
	if LimitOrderTypeCount != 5 {
		t.Fatalf("expected 5 order types, got %d", LimitOrderTypeCount)
	}
	for code := int32(0); code < int32(LimitOrderTypeCount); code++ {
		v, ok := LimitOrderTypeFromCode(code)
		if !ok {
			t.Fatalf("code %d should be declared", code)
		}
		byName, ok := LimitOrderTypeFromName(v.String())
		if !ok || byName != v {
			t.Fatalf("name lookup mismatch for %s", v)
		}
	}
	if _, ok := LimitOrderTypeFromCode(5); ok {
		t.Fatalf("code 5 should not be declared")
	}
}

func TestTrancheAmounts(t *testing.T) {
	tranche := LimitOrderTranche{
		ReservesMakerDenom: "1000",
		ReservesTakerDenom: "0",
		TotalMakerDenom:    "1250",
		TotalTakerDenom:    "250",
		PriceTakerToMaker:  "1.00010000500010000100001000",
	}
	amounts, err := tranche.Amounts()
	if err != nil {
		t.Fatalf("amounts: %v", err)
	}
	if amounts.PriceTakerToMaker.String() != "1.00010000500010000100001" {
		t.Fatalf("unexpected price %s", amounts.PriceTakerToMaker.String())
	}
	if amounts.TotalMakerDenom.Sub(amounts.ReservesMakerDenom).String() != "250" {
		t.Fatalf("unexpected filled amount")
	}

	tranche.TotalTakerDenom = ""
	_, err = tranche.Amounts()
	if err == nil || !strings.Contains(err.Error(), "total_taker_denom") {
		t.Fatalf("expected total_taker_denom error, got %v", err)
	}
}

func TestSnapshotRecordKey(t *testing.T) {
	fee := uint64(3)
	pair := TradePairID{MakerDenom: "untrn", TakerDenom: "uatom"}
	cases := []struct {
		name   string
		record SnapshotRecord
		want   string
	}{
		{
			name:   "pool metadata",
			record: SnapshotRecord{PoolMetadata: &PoolMetadata{ID: 7}},
			want:   "pool/7",
		},
		{
			name: "tranche",
			record: SnapshotRecord{LimitOrderTranche: &LimitOrderTranche{
				Key: LimitOrderTrancheKey{TradePairID: pair, TickIndexTakerToMaker: -5, TrancheKey: "abc"},
			}},
			want: "tranche/untrn/uatom/-5/abc",
		},
		{
			name: "reserves",
			record: SnapshotRecord{Liquidity: &Liquidity{PoolReserves: &PoolReserves{
				Key: PoolReservesKey{TradePairID: pair, TickIndexTakerToMaker: 10, Fee: &fee},
			}}},
			want: "reserves/untrn/uatom/10/3",
		},
	}

	for _, tc := range cases {
		if got := tc.record.Key(); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestLiquidityKind(t *testing.T) {
	if (Liquidity{PoolReserves: &PoolReserves{}}).Kind() != LiquidityPoolReserves {
		t.Fatalf("expected pool reserves kind")
	}
	if (Liquidity{LimitOrderTranche: &LimitOrderTranche{}}).Kind() != LiquidityLimitOrderTranche {
		t.Fatalf("expected limit order tranche kind")
	}
	if kind := (Liquidity{}).Kind(); kind != "" {
		t.Fatalf("empty element should have no kind, got %q", kind)
	}
}
