package http

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-gatekeeper/internal/logger"
)

// withLogging writes one access log entry per request. Server errors are
// logged at warn level so that they survive an info-level filter.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		uri := r.RequestURI

		lw := wrapResponseWriter(w)
		next.ServeHTTP(lw, r)

		status := lw.statusOrDefault()
		logger.FromRequest(r).WithLevel(accessLogLevel(status)).
			Str("uri", uri).
			Str("method", r.Method).
			Str("remote_addr", r.RemoteAddr).
			Str("user_agent", r.UserAgent()).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Msg("request served")
	})
}

func accessLogLevel(status int) zerolog.Level {
	if status >= http.StatusInternalServerError {
		return zerolog.WarnLevel
	}
	return zerolog.InfoLevel
}
