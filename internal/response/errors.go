// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package response

import "errors"

// Sentinel errors returned by the response PDK. Detailed errors wrap one of
// these values, so callers should match with [errors.Is].
var (
	// ErrValidation is returned when a caller supplies a malformed argument:
	// a status code outside [100, 599], an invalid header name or value, an
	// unsupported body type or a malformed header map. No state is mutated
	// when it is returned.
	ErrValidation = errors.New("invalid argument")

	// ErrState is returned by every mutating and terminal operation once the
	// response has been transmitted to the client.
	ErrState = errors.New("response has already been sent")

	// ErrNoDelayedResponse is returned by [Response.Flush] when no deferred
	// exit has been recorded on the request context.
	ErrNoDelayedResponse = errors.New("no delayed response recorded")

	// ErrBodyAccessUnsupported is returned by the response body accessors,
	// which are reserved for a content-type aware parsing layer.
	ErrBodyAccessUnsupported = errors.New("response body access is not supported")
)
