package services

import "fmt"

// Custom errors
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "Validation error" }

// ConfigurationError means the server is missing a required setting, most
// importantly the upstream API credential. Every request fails identically
// until the configuration is fixed.
type ConfigurationError struct{ Message string }

func (e *ConfigurationError) Error() string { return e.Message }

// UpstreamError is a transport-level or non-2xx failure from the model API.
// StatusCode is zero when the call never produced an HTTP response.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Message)
	}
	return e.Message
}

// EmptyResponseError means the model API answered 2xx but the body carried
// no usable candidate text (empty candidates, safety-filtered reply, empty
// text). Kept distinct from UpstreamError so callers can tell "upstream
// down" apart from "upstream answered nothing".
type EmptyResponseError struct{ Message string }

func (e *EmptyResponseError) Error() string { return e.Message }
