package model

import (
	"encoding/json"
	"fmt"
)

// LimitOrderType is the closed set of dex limit order types. The numeric values are
// the wire codes and must not be renumbered.
type LimitOrderType int32

const (
	GoodTilCancelled  LimitOrderType = 0
	FillOrKill        LimitOrderType = 1
	ImmediateOrCancel LimitOrderType = 2
	JustInTime        LimitOrderType = 3
	GoodTilTime       LimitOrderType = 4
)

// limitOrderTypeNames is indexed by wire code. Both directions of the order type
// mapping read from this table.
var limitOrderTypeNames = [...]string{
	GoodTilCancelled:  "GOOD_TIL_CANCELLED",
	FillOrKill:        "FILL_OR_KILL",
	ImmediateOrCancel: "IMMEDIATE_OR_CANCEL",
	JustInTime:        "JUST_IN_TIME",
	GoodTilTime:       "GOOD_TIL_TIME",
}

// LimitOrderTypeCount is the number of declared order types.
const LimitOrderTypeCount = len(limitOrderTypeNames)

// LimitOrderTypeNames lists the variant names in wire code order.
func LimitOrderTypeNames() []string {
	return append([]string(nil), limitOrderTypeNames[:]...)
}

// LimitOrderTypeFromCode returns the variant declared for code.
func LimitOrderTypeFromCode(code int32) (LimitOrderType, bool) {
	if code < 0 || int(code) >= len(limitOrderTypeNames) {
		return 0, false
	}
	return LimitOrderType(code), true
}

// LimitOrderTypeFromName returns the variant with the given SCREAMING_SNAKE_CASE name.
func LimitOrderTypeFromName(name string) (LimitOrderType, bool) {
	for code, candidate := range limitOrderTypeNames {
		if candidate == name {
			return LimitOrderType(code), true
		}
	}
	return 0, false
}

// Valid reports whether t is one of the declared variants.
func (t LimitOrderType) Valid() bool {
	_, ok := LimitOrderTypeFromCode(int32(t))
	return ok
}

func (t LimitOrderType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("LimitOrderType(%d)", int32(t))
	}
	return limitOrderTypeNames[t]
}

// MarshalJSON encodes the variant by name.
func (t LimitOrderType) MarshalJSON() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid limit order type %d", int32(t))
	}
	return json.Marshal(limitOrderTypeNames[t])
}

// UnmarshalJSON accepts the SCREAMING_SNAKE_CASE variant name.
func (t *LimitOrderType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("limit order type must be a string: %w", err)
	}
	parsed, ok := LimitOrderTypeFromName(name)
	if !ok {
		return fmt.Errorf("unknown limit order type %q", name)
	}
	*t = parsed
	return nil
}
