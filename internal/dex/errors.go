package dex

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidEnum        = errors.New("invalid enum value")
	ErrTimeParse          = errors.New("invalid timestamp")
	ErrMalformedLiquidity = errors.New("malformed tick liquidity")
)

// InvalidEnumError is returned when a wire enum falls outside the declared variants.
// Name and ValidNames are set instead of Value when the wire carried the enum by name.
type InvalidEnumError struct {
	Type       string
	Value      int64
	Name       string
	ValidRange string
	ValidNames []string
}

func (e *InvalidEnumError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("invalid name for %s: %q, expected one of %s", e.Type, e.Name, strings.Join(e.ValidNames, ", "))
	}
	return fmt.Sprintf("invalid numeric value for %s: %d, expected %s", e.Type, e.Value, e.ValidRange)
}

func (e *InvalidEnumError) Is(target error) bool { return target == ErrInvalidEnum }

// TimeParseError is returned when a wire timestamp is neither the zero-time sentinel
// nor a valid RFC 3339 date time.
type TimeParseError struct {
	Raw string
	Err error
}

func (e *TimeParseError) Error() string {
	return fmt.Sprintf("invalid timestamp %q: expected an RFC 3339 formatted date time", e.Raw)
}

func (e *TimeParseError) Unwrap() error { return e.Err }

func (e *TimeParseError) Is(target error) bool { return target == ErrTimeParse }

// MalformedLiquidityError is returned for a tick liquidity element that does not carry
// exactly one payload. Populated counts the payloads that were present.
type MalformedLiquidityError struct {
	Populated int
}

func (e *MalformedLiquidityError) Error() string {
	return fmt.Sprintf("tick liquidity must carry exactly one of pool_reserves or limit_order_tranche, got %d", e.Populated)
}

func (e *MalformedLiquidityError) Is(target error) bool { return target == ErrMalformedLiquidity }
