package domain

import "errors"

var (
	// ErrNotFound is returned when a required record does not exist at the source.
	ErrNotFound = errors.New("not found")
	// ErrFetchFailed covers whole-query failures: transport, status, decode, timeout.
	ErrFetchFailed = errors.New("fetch failed")
)
