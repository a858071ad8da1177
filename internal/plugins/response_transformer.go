package plugins

import (
	"fmt"
	"net/http"

	"golang.org/x/net/http/httpguts"

	"github.com/MKhiriev/go-gatekeeper/internal/response"
	"github.com/MKhiriev/go-gatekeeper/internal/runloop"
)

// ResponseTransformerName is the registry name of the response-transformer
// plugin.
const ResponseTransformerName = "response-transformer"

type responseTransformerConfig struct {
	Remove  []string          `json:"remove"`
	Rename  map[string]string `json:"rename"`
	Replace map[string]any    `json:"replace"`
	Add     map[string]any    `json:"add"`
	Append  map[string]any    `json:"append"`
}

// responseTransformer edits the response headers before they are sent.
// Operations apply in order: remove, rename, replace (only present headers),
// add (only absent headers), append.
type responseTransformer struct {
	cfg responseTransformerConfig
}

func newResponseTransformer(config map[string]any) (runloop.Plugin, error) {
	var cfg responseTransformerConfig
	if err := decodeConfig(config, &cfg); err != nil {
		return nil, err
	}

	for from, to := range cfg.Rename {
		if !httpguts.ValidHeaderFieldName(from) || !httpguts.ValidHeaderFieldName(to) {
			return nil, fmt.Errorf("%w: invalid rename %q -> %q", ErrInvalidConfig, from, to)
		}
	}

	return &responseTransformer{cfg: cfg}, nil
}

func (p *responseTransformer) Name() string { return ResponseTransformerName }

// HeaderFilter applies the configured header operations.
func (p *responseTransformer) HeaderFilter(pdk *runloop.PDK) (response.Result, error) {
	resp := pdk.Response

	for _, name := range p.cfg.Remove {
		if err := resp.ClearHeader(name); err != nil {
			return response.Result{}, err
		}
	}

	for from, to := range p.cfg.Rename {
		if err := rename(resp, from, to); err != nil {
			return response.Result{}, err
		}
	}

	if err := p.setWhere(resp, p.cfg.Replace, true); err != nil {
		return response.Result{}, err
	}
	if err := p.setWhere(resp, p.cfg.Add, false); err != nil {
		return response.Result{}, err
	}

	for name, value := range p.cfg.Append {
		values, ok := stringValues(value)
		if !ok {
			return response.Result{}, response.ErrValidation
		}
		for _, v := range values {
			if err := resp.AddHeader(name, v); err != nil {
				return response.Result{}, err
			}
		}
	}

	return response.Continue, nil
}

// rename moves every value of from to to. The target is written before the
// source is cleared, so a failed write leaves the headers unchanged.
func rename(resp *response.Response, from, to string) error {
	if http.CanonicalHeaderKey(from) == http.CanonicalHeaderKey(to) {
		return nil
	}

	value, ok, err := resp.HeaderValues(from)
	if err != nil || !ok {
		return err
	}
	if err := resp.SetHeaders(map[string]any{to: value.Values()}); err != nil {
		return err
	}

	return resp.ClearHeader(from)
}

// setWhere sets the headers of values whose presence matches present.
func (p *responseTransformer) setWhere(resp *response.Response, values map[string]any, present bool) error {
	if len(values) == 0 {
		return nil
	}

	selected := make(map[string]any, len(values))
	for name, value := range values {
		_, ok, err := resp.Header(name)
		if err != nil {
			return err
		}
		if ok == present {
			selected[name] = value
		}
	}

	return resp.SetHeaders(selected)
}

// stringValues accepts a string or a list of strings decoded from JSON.
func stringValues(v any) ([]string, bool) {
	switch value := v.(type) {
	case string:
		return []string{value}, true
	case []any:
		out := make([]string, 0, len(value))
		for _, item := range value {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}
