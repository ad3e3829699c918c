package wire

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Int64 is an int64 that proto3 JSON renders as a decimal string. Bare numbers are
// accepted as well.
type Int64 int64

func (v Int64) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatInt(int64(v), 10))
}

func (v *Int64) UnmarshalJSON(data []byte) error {
	raw, ok, err := numericText(data)
	if err != nil || !ok {
		return err
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid int64 %s: %w", data, err)
	}
	*v = Int64(n)
	return nil
}

// Uint64 is the unsigned counterpart of Int64.
type Uint64 uint64

func (v Uint64) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatUint(uint64(v), 10))
}

func (v *Uint64) UnmarshalJSON(data []byte) error {
	raw, ok, err := numericText(data)
	if err != nil || !ok {
		return err
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid uint64 %s: %w", data, err)
	}
	*v = Uint64(n)
	return nil
}

// EnumValue holds a proto3 JSON enum, which may arrive either by number or by name.
// Number is kept at 64 bits so out-of-range values reach the enum validator.
type EnumValue struct {
	Number int64
	Name   string
}

func (v EnumValue) MarshalJSON() ([]byte, error) {
	if v.Name != "" {
		return json.Marshal(v.Name)
	}
	return json.Marshal(v.Number)
}

func (v *EnumValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			*v = EnumValue{Number: n}
			return nil
		}
		*v = EnumValue{Name: s}
		return nil
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid enum value %s: %w", data, err)
	}
	*v = EnumValue{Number: n}
	return nil
}

// numericText strips optional quotes. ok is false for JSON null.
func numericText(data []byte) (string, bool, error) {
	if string(data) == "null" {
		return "", false, nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", false, err
		}
		return s, true, nil
	}
	return string(data), true, nil
}
