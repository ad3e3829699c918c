package dex

import (
	"fmt"
	"math"

	"dexQuery/internal/model"
	"dexQuery/internal/wire"
)

var orderTypeRange = fmt.Sprintf("0-%d", model.LimitOrderTypeCount-1)

// EncodeOrderType returns the wire tag of an order type.
func EncodeOrderType(t model.LimitOrderType) int32 {
	return int32(t)
}

// DecodeOrderType maps a wire tag back to its order type. Tags outside the declared
// variants yield *InvalidEnumError.
func DecodeOrderType(code int32) (model.LimitOrderType, error) {
	t, ok := model.LimitOrderTypeFromCode(code)
	if !ok {
		return 0, &InvalidEnumError{Type: "LimitOrderType", Value: int64(code), ValidRange: orderTypeRange}
	}
	return t, nil
}

func decodeWireOrderType(v wire.EnumValue) (model.LimitOrderType, error) {
	if v.Name == "" {
		if v.Number < math.MinInt32 || v.Number > math.MaxInt32 {
			return 0, &InvalidEnumError{Type: "LimitOrderType", Value: v.Number, ValidRange: orderTypeRange}
		}
		return DecodeOrderType(int32(v.Number))
	}
	t, ok := model.LimitOrderTypeFromName(v.Name)
	if !ok {
		return 0, &InvalidEnumError{Type: "LimitOrderType", Name: v.Name, ValidRange: orderTypeRange, ValidNames: model.LimitOrderTypeNames()}
	}
	return DecodeOrderType(EncodeOrderType(t))
}
