package provider

import "errors"

// ErrUnavailable marks a record-store failure (connectivity, backend error).
// View services recover from it by serving locally generated fallback data;
// it must never reach an HTTP response.
var ErrUnavailable = errors.New("record store unavailable")

// Source labels where a served dataset came from. The HTTP contract exposes
// data only; the label exists so orchestration code and tests can assert
// which path executed.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)
