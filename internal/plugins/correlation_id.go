package plugins

import (
	"github.com/MKhiriev/go-gatekeeper/internal/response"
	"github.com/MKhiriev/go-gatekeeper/internal/runloop"
	"github.com/google/uuid"
)

// CorrelationIDName is the registry name of the correlation-id plugin.
const CorrelationIDName = "correlation-id"

const defaultCorrelationHeader = "X-Correlation-ID"

type correlationIDConfig struct {
	HeaderName     string `json:"header_name"`
	EchoDownstream *bool  `json:"echo_downstream"`
}

// correlationID tags each request with an identifier in a header, keeping
// the one supplied by the client, and echoes it on the response.
type correlationID struct {
	header string
	echo   bool
}

func newCorrelationID(config map[string]any) (runloop.Plugin, error) {
	var cfg correlationIDConfig
	if err := decodeConfig(config, &cfg); err != nil {
		return nil, err
	}

	p := &correlationID{header: defaultCorrelationHeader, echo: true}
	if cfg.HeaderName != "" {
		p.header = cfg.HeaderName
	}
	if cfg.EchoDownstream != nil {
		p.echo = *cfg.EchoDownstream
	}

	return p, nil
}

func (p *correlationID) Name() string { return CorrelationIDName }

// Rewrite sets the correlation header on the request forwarded upstream.
func (p *correlationID) Rewrite(pdk *runloop.PDK) (response.Result, error) {
	if pdk.Request.Header.Get(p.header) == "" {
		pdk.Request.Header.Set(p.header, uuid.NewString())
	}

	return response.Continue, nil
}

// HeaderFilter echoes the correlation header to the client.
func (p *correlationID) HeaderFilter(pdk *runloop.PDK) (response.Result, error) {
	if !p.echo {
		return response.Continue, nil
	}

	id := pdk.Request.Header.Get(p.header)
	if id == "" {
		return response.Continue, nil
	}

	return response.Continue, pdk.Response.SetHeader(p.header, id)
}
