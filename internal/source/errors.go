package source

import (
	"errors"
	"fmt"
)

// ErrInvalidSubject reports a slug with no source mapping. No fetch is attempted.
var ErrInvalidSubject = errors.New("invalid subject")

// ErrFetch matches every fetch-layer failure: upstream status, transport and
// malformed payloads. Use errors.Is(err, ErrFetch).
var ErrFetch = errors.New("fetch failed")

// UpstreamError is a non-success status from the external source.
type UpstreamError struct {
	Community  string
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s returned status %d", e.Community, e.StatusCode)
}

func (e *UpstreamError) Is(target error) bool { return target == ErrFetch }

// TransportError wraps timeouts, DNS and connection failures.
type TransportError struct {
	Community string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error fetching %s: %v", e.Community, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrFetch }

// MalformedResponseError is a payload that does not match the expected shape.
type MalformedResponseError struct {
	Community string
	Err       error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %v", e.Community, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

func (e *MalformedResponseError) Is(target error) bool { return target == ErrFetch }
