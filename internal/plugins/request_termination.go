package plugins

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-gatekeeper/internal/response"
	"github.com/MKhiriev/go-gatekeeper/internal/runloop"
)

// RequestTerminationName is the registry name of the request-termination
// plugin.
const RequestTerminationName = "request-termination"

type requestTerminationConfig struct {
	StatusCode  int            `json:"status_code"`
	Message     string         `json:"message"`
	Body        string         `json:"body"`
	ContentType string         `json:"content_type"`
	Headers     map[string]any `json:"headers"`
}

// requestTermination answers every request of its route with a fixed
// response, without contacting the upstream.
type requestTermination struct {
	status  int
	body    any
	headers map[string]any
}

func newRequestTermination(config map[string]any) (runloop.Plugin, error) {
	var cfg requestTerminationConfig
	if err := decodeConfig(config, &cfg); err != nil {
		return nil, err
	}

	if cfg.StatusCode == 0 {
		cfg.StatusCode = http.StatusServiceUnavailable
	}
	if cfg.StatusCode < response.MinStatus || cfg.StatusCode > response.MaxStatus {
		return nil, fmt.Errorf("%w: status_code must be between %d and %d", ErrInvalidConfig, response.MinStatus, response.MaxStatus)
	}
	if cfg.Message != "" && cfg.Body != "" {
		return nil, fmt.Errorf("%w: message and body are mutually exclusive", ErrInvalidConfig)
	}

	p := &requestTermination{status: cfg.StatusCode, headers: cfg.Headers}
	switch {
	case cfg.Body != "":
		p.body = []byte(cfg.Body)
		if cfg.ContentType != "" {
			if p.headers == nil {
				p.headers = make(map[string]any, 1)
			}
			p.headers["Content-Type"] = cfg.ContentType
		}
	case cfg.Message != "":
		p.body = map[string]string{"message": cfg.Message}
	default:
		p.body = map[string]string{"message": defaultMessage(cfg.StatusCode)}
	}

	return p, nil
}

func defaultMessage(status int) string {
	if text := http.StatusText(status); text != "" {
		return text
	}
	return fmt.Sprintf("Status %d", status)
}

func (p *requestTermination) Name() string { return RequestTerminationName }

// Access exits with the configured response.
func (p *requestTermination) Access(pdk *runloop.PDK) (response.Result, error) {
	return pdk.Response.Exit(p.status, p.body, p.headers)
}
