package ai

import (
	"errors"
	"fmt"
)

// ErrNotConfigured means no API key was supplied, so the provider is never
// contacted.
var ErrNotConfigured = errors.New("llm api key not configured")

var errEmptyCompletion = errors.New("completion has no content")

// UpstreamError covers every failure after a request to the provider was
// attempted: transport errors, non-2xx statuses, malformed or empty
// payloads and timeouts.
type UpstreamError struct {
	Op      string
	Timeout bool
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("llm %s timed out: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("llm %s failed: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
