// Package utils holds small helpers shared by the gateway's transport
// layers: the upstream HTTP client, JSON response writing and request id
// generation.
package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps a resty.Client configured for proxying. It never follows
// redirects: a 3xx from an upstream is returned to the caller as-is.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent proxy client. A positive timeout
// bounds each request.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		})).
		SetRetryCount(0)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
