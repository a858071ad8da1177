// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-gatekeeper/internal/config"
	"github.com/MKhiriev/go-gatekeeper/internal/logger"
)

func newTestAdapter(t *testing.T, timeout time.Duration) UpstreamAdapter {
	t.Helper()
	return NewHTTPUpstreamAdapter(config.Adapter{RequestTimeout: timeout}, logger.Nop())
}

// ── Forward ─────────────────────────────────────────────────────────────────

func TestForward_ProxiesRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders/42", r.URL.Path)
		assert.Equal(t, "expand=items", r.URL.RawQuery)
		assert.Equal(t, "abc", r.Header.Get("X-Correlation-ID"))
		assert.Empty(t, r.Header.Get("X-Hop"))
		assert.Empty(t, r.Header.Get("Proxy-Authorization"))
		assert.Equal(t, "192.0.2.1", r.Header.Get("X-Forwarded-For"))
		assert.Equal(t, "gateway.example", r.Header.Get("X-Forwarded-Host"))
		assert.Equal(t, "http", r.Header.Get("X-Forwarded-Proto"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Equal(t, `{"qty":1}`, string(body))

		w.Header().Set("X-Upstream", "orders")
		w.Header().Set("Keep-Alive", "timeout=5")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":42}`))
	}))
	defer srv.Close()

	req := httptest.NewRequest(http.MethodPost, "http://gateway.example/orders/42?expand=items", strings.NewReader(`{"qty":1}`))
	req.RemoteAddr = "192.0.2.1:51234"
	req.Header.Set("X-Correlation-ID", "abc")
	req.Header.Set("Connection", "X-Hop")
	req.Header.Set("X-Hop", "1")
	req.Header.Set("Proxy-Authorization", "secret")

	got, err := newTestAdapter(t, time.Second).Forward(context.Background(), req, srv.URL+"/api")

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, got.Status)
	assert.Equal(t, `{"id":42}`, string(got.Body))
	assert.Equal(t, "orders", got.Header.Get("X-Upstream"))
	assert.Empty(t, got.Header.Get("Keep-Alive"))
	assert.Empty(t, got.Header.Get("Content-Length"))
}

func TestForward_UpstreamErrorStatusIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, time.Second).Forward(context.Background(), httptest.NewRequest(http.MethodGet, "/x", nil), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.Equal(t, "boom\n", string(got.Body))
}

func TestForward_Redirect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/elsewhere", http.StatusMovedPermanently)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, time.Second).Forward(context.Background(), httptest.NewRequest(http.MethodGet, "/x", nil), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, http.StatusMovedPermanently, got.Status)
	assert.Equal(t, "/elsewhere", got.Header.Get("Location"))
}

func TestForward_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, time.Second).Forward(context.Background(), httptest.NewRequest(http.MethodGet, "/x", nil), addr)

	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestForward_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	_, err := newTestAdapter(t, 50*time.Millisecond).Forward(context.Background(), httptest.NewRequest(http.MethodGet, "/x", nil), srv.URL)

	assert.ErrorIs(t, err, ErrUpstreamTimeout)
}

func TestForward_InvalidUpstream(t *testing.T) {
	_, err := newTestAdapter(t, time.Second).Forward(context.Background(), httptest.NewRequest(http.MethodGet, "/x", nil), "  ")

	assert.ErrorIs(t, err, ErrInvalidUpstreamURL)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

func TestForward_BodyReadError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/x", failingReader{})

	_, err := newTestAdapter(t, time.Second).Forward(context.Background(), req, "http://127.0.0.1:1")

	assert.ErrorIs(t, err, ErrReadingRequestBody)
}

// ── helpers ─────────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "http://orders:8080", want: "http://orders:8080"},
		{name: "trailing slash", raw: "https://orders/api/", want: "https://orders/api"},
		{name: "no scheme", raw: "orders:8080", want: "http://orders:8080"},
		{name: "query dropped", raw: "http://orders/api?x=1", want: "http://orders/api"},
		{name: "empty", raw: " ", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTargetURL(t *testing.T) {
	downstream, err := url.Parse("/orders/a%2Fb?q=1")
	require.NoError(t, err)

	got, err := targetURL("http://orders/api/", downstream)

	require.NoError(t, err)
	assert.Equal(t, "http://orders/api/orders/a%2Fb?q=1", got)
}

func TestForwardHeaders_AppendsForwardedFor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "https://gateway.example/x", nil)
	req.RemoteAddr = "10.0.0.2:4000"
	req.Header.Set("X-Forwarded-For", "203.0.113.9")

	header := http.Header(forwardHeaders(req))

	assert.Equal(t, "203.0.113.9, 10.0.0.2", header.Get("X-Forwarded-For"))
	assert.Equal(t, "https", header.Get("X-Forwarded-Proto"))
}

func TestMapTransportError(t *testing.T) {
	assert.ErrorIs(t, mapTransportError(context.Canceled), context.Canceled)
	assert.NotErrorIs(t, mapTransportError(context.Canceled), ErrUpstreamUnavailable)
	assert.ErrorIs(t, mapTransportError(context.DeadlineExceeded), ErrUpstreamTimeout)
	assert.ErrorIs(t, mapTransportError(errors.New("refused")), ErrUpstreamUnavailable)
}
