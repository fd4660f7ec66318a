package models

import (
	"errors"
	"fmt"
)

// Common errors used throughout the application
var (
	ErrUnknownCategory  = errors.New("unknown category")
	ErrUnknownSource    = errors.New("unknown source")
	ErrEventNotFound    = errors.New("event not found")
	ErrInvalidCartInput = errors.New("invalid event for cart")
)

// UpstreamError represents a non-success HTTP response from a provider API.
// It carries the status code and a snippet of the response body; upstream
// failures are surfaced to the caller, never retried.
type UpstreamError struct {
	Source     Source
	StatusCode int
	Snippet    string
}

func (e *UpstreamError) Error() string {
	if e.Snippet == "" {
		return fmt.Sprintf("%s: upstream returned %d", e.Source, e.StatusCode)
	}
	return fmt.Sprintf("%s: upstream returned %d: %s", e.Source, e.StatusCode, e.Snippet)
}
