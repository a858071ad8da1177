package adapter

import "errors"

var (
	// ErrInvalidUpstreamURL is returned when the route's upstream cannot be
	// parsed into an absolute base URL.
	ErrInvalidUpstreamURL = errors.New("invalid upstream url")

	// ErrReadingRequestBody is returned when the downstream body cannot be read.
	ErrReadingRequestBody = errors.New("error reading request body")

	// ErrUpstreamTimeout is returned when the upstream did not answer in time.
	ErrUpstreamTimeout = errors.New("upstream timed out")

	// ErrUpstreamUnavailable is returned for connection-level failures.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
