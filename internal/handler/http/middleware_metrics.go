package http

import (
	"net/http"
	"time"
)

// withMetrics records the method, status and duration of every request.
// It is a no-op when the handler has no metrics.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	if h.metrics == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		mw := wrapResponseWriter(w)
		next.ServeHTTP(mw, r)

		h.metrics.RecordHTTPRequest(r.Method, mw.statusOrDefault(), time.Since(start))
	})
}
