package model

import "encoding/json"

// RecordedResponse is one captured wire response awaiting offline normalization.
// Either Kind or Route identifies how to read Response.
type RecordedResponse struct {
	Kind     string          `json:"kind,omitempty"`
	Route    string          `json:"route,omitempty"`
	Response json.RawMessage `json:"response"`
}

// NormalizedResponse is the caller-facing form of a recorded response.
type NormalizedResponse struct {
	Line     int    `json:"line"`
	Kind     string `json:"kind"`
	Response any    `json:"response"`
}
