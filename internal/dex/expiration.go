package dex

import "time"

// zeroTime is how the chain renders a tranche that never expires.
const zeroTime = "0001-01-01T00:00:00Z"

// DecodeExpiration converts a wire expiration into unix seconds. The zero-time
// sentinel maps to 0; any other value must be RFC 3339.
func DecodeExpiration(raw *string) (*int64, error) {
	if raw == nil {
		return nil, nil
	}
	if *raw == zeroTime {
		zero := int64(0)
		return &zero, nil
	}
	parsed, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil, &TimeParseError{Raw: *raw, Err: err}
	}
	seconds := parsed.Unix()
	return &seconds, nil
}
