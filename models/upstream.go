package models

import "net/http"

// UpstreamResponse is the response received from a route's upstream.
type UpstreamResponse struct {
	// Status is the upstream status code.
	Status int

	// Header holds the upstream response headers, hop-by-hop headers
	// already removed.
	Header http.Header

	// Body is the raw upstream payload, forwarded verbatim.
	Body []byte
}
