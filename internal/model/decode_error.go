package model

// DecodeError records a normalization failure for a recorded response line.
type DecodeError struct {
	Line  int    `json:"line"`
	Kind  string `json:"kind"`
	Route string `json:"route,omitempty"`
	Error string `json:"error"`
}
