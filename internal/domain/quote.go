package domain

import "encoding/json"

// QuoteRequest is the validated input of a quote workflow execution.
// Value is kept as raw JSON so the workflow receives exactly what the client sent.
type QuoteRequest struct {
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Value json.RawMessage `json:"value"`
}

// QuoteResult is the premium computed for a declared value.
type QuoteResult struct {
	Quote float64 `json:"quote"`
}
