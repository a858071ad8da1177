// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter forwards downstream requests to route upstreams.
//
// The primary abstraction is [UpstreamAdapter], which decouples the request
// runloop from the protocol used to reach upstreams. The package ships an
// HTTP implementation built on resty ([NewHTTPUpstreamAdapter]).
//
// Transport failures are mapped by mapTransportError onto the sentinel
// values in errors.go so callers can match them with [errors.Is].
package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-gatekeeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/upstream_adapter_mock.go -package=mock

// UpstreamAdapter proxies one request to an upstream service.
type UpstreamAdapter interface {
	// Forward sends req to upstreamURL joined with the request path and
	// query. Hop-by-hop headers are not forwarded in either direction.
	// Any status returned by the upstream is a successful result; an error
	// means no usable response was received.
	Forward(ctx context.Context, req *http.Request, upstreamURL string) (*models.UpstreamResponse, error)
}
