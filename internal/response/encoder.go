package response

import (
	jsoniter "github.com/json-iterator/go"
)

// Encoder serializes response bodies for the content negotiator.
// Encode reports false when v cannot be represented as JSON; the send
// pipeline then falls back to text emission.
type Encoder interface {
	Encode(v any) ([]byte, bool)
}

// JSONEncoder is the default [Encoder]. It produces the same output as
// encoding/json (sorted map keys, HTML escaping).
type JSONEncoder struct {
	api jsoniter.API
}

// NewJSONEncoder returns a [JSONEncoder] compatible with encoding/json.
func NewJSONEncoder() *JSONEncoder {
	return &JSONEncoder{api: jsoniter.ConfigCompatibleWithStandardLibrary}
}

// Encode implements [Encoder].
func (e *JSONEncoder) Encode(v any) ([]byte, bool) {
	data, err := e.api.Marshal(v)
	if err != nil {
		return nil, false
	}
	return data, true
}
