// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/go-gatekeeper/internal/response"
	"github.com/MKhiriev/go-gatekeeper/internal/runloop"
)

// withAllowedMethods restricts a route to methods. Other methods are
// answered with 405 through the response PDK and an Allow header listing
// methods. An empty methods list allows every method.
//
// Route matching is done on the path only, so a path may be matched by a
// route that does not accept the request's method; the route's own method
// list decides.
func withAllowedMethods(methods []string, opts response.Options) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if len(methods) == 0 {
			return next
		}

		allow := strings.Join(methods, ", ")
		notAllowed := runloop.MethodNotAllowed(opts)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if slices.Contains(methods, r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Allow", allow)
			notAllowed.ServeHTTP(w, r)
		})
	}
}
