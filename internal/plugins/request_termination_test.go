package plugins

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-gatekeeper/internal/runloop"
	"github.com/stretchr/testify/assert"
)

func TestRequestTermination(t *testing.T) {
	tests := []struct {
		name            string
		config          map[string]any
		wantStatus      int
		wantBody        string
		wantContentType string
		wantHeaders     map[string]string
	}{
		{
			name:            "defaults",
			config:          nil,
			wantStatus:      http.StatusServiceUnavailable,
			wantBody:        `{"message":"Service Unavailable"}`,
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name:            "custom message",
			config:          map[string]any{"status_code": 403, "message": "So long and thanks for all the fish!"},
			wantStatus:      http.StatusForbidden,
			wantBody:        `{"message":"So long and thanks for all the fish!"}`,
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name:            "raw body with content type",
			config:          map[string]any{"status_code": 451, "body": "<h1>gone</h1>", "content_type": "text/html"},
			wantStatus:      http.StatusUnavailableForLegalReasons,
			wantBody:        "<h1>gone</h1>",
			wantContentType: "text/html",
		},
		{
			name: "extra headers",
			config: map[string]any{
				"status_code": 429,
				"headers":     map[string]any{"Retry-After": "60", "X-Limits": []any{"a", "b"}},
			},
			wantStatus:      http.StatusTooManyRequests,
			wantBody:        `{"message":"Too Many Requests"}`,
			wantContentType: "application/json; charset=utf-8",
			wantHeaders:     map[string]string{"Retry-After": "60", "X-Limits": "a"},
		},
		{
			name:            "unknown status text",
			config:          map[string]any{"status_code": 599},
			wantStatus:      599,
			wantBody:        `{"message":"Status 599"}`,
			wantContentType: "application/json; charset=utf-8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustNew(t, RequestTerminationName, tt.config)

			rr := run(t, httptest.NewRequest(http.MethodGet, "/orders", nil), p)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantBody, rr.Body.String())
			assert.Equal(t, tt.wantContentType, rr.Header().Get("Content-Type"))
			for k, v := range tt.wantHeaders {
				assert.Equal(t, v, rr.Header().Get(k))
			}
		})
	}
}

func TestRequestTermination_IsDeferred(t *testing.T) {
	p := mustNew(t, RequestTerminationName, nil)
	pdk, rr := newPDK(httptest.NewRequest(http.MethodGet, "/orders", nil))
	pdk.Ctx.DelayMode = true

	res, err := p.(runloop.Accessor).Access(pdk)

	assert.NoError(t, err)
	assert.True(t, res.Suspended())
	assert.False(t, pdk.Response.Sent())
	assert.Empty(t, rr.Body.String())
	assert.NotNil(t, pdk.Ctx.DelayedResponse)
}

func TestRequestTermination_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		config map[string]any
	}{
		{name: "status too low", config: map[string]any{"status_code": 42}},
		{name: "status too high", config: map[string]any{"status_code": 600}},
		{name: "message and body", config: map[string]any{"message": "m", "body": "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(RequestTerminationName, tt.config)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
