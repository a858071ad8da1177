package response

import (
	"strings"
)

const (
	headerContentType = "Content-Type"
	headerServer      = "Server"

	headerContentEncoding = "Content-Encoding"
	headerContentLength   = "Content-Length"

	jsonMediaType   = "application/json"
	jsonContentType = "application/json; charset=utf-8"
)

// Stringable is implemented by body values that provide their own textual
// representation. It is used when a body cannot be emitted as JSON and when
// a scrubbed 500 body is logged.
type Stringable interface {
	String() string
}

// stringOf returns the text of an error or [Stringable] body. Error wins
// when a value implements both.
func stringOf(body any) (string, bool) {
	switch v := body.(type) {
	case error:
		return v.Error(), true
	case Stringable:
		return v.String(), true
	}
	return "", false
}

// acceptsJSON reports whether a body may be JSON-encoded under contentType.
func acceptsJSON(contentType string) bool {
	return contentType == "" || strings.Contains(strings.ToLower(contentType), jsonMediaType)
}

// jsonPayload wraps non-structured bodies into a {"message": ...} object.
func jsonPayload(body any, kind bodyKind) any {
	switch kind {
	case bodyText:
		return map[string]string{"message": textOf(body)}
	case bodyStringable:
		text, _ := stringOf(body)
		return map[string]string{"message": text}
	default:
		return body
	}
}

// negotiate decides how body is emitted based on the current Content-Type
// and returns the bytes to write. ok is false when nothing is emitted.
//
// Raw []byte bodies are treated as already serialized and are returned as is.
// Otherwise, when the Content-Type is absent or names JSON, the body is
// JSON-encoded and a missing Content-Type is set; if that is not possible
// text bodies are emitted as is and error or Stringable bodies through
// Error or String.
func (r *Response) negotiate(body any) ([]byte, bool) {
	kind := kindOf(body)
	switch kind {
	case bodyEmpty, bodyInvalid:
		return nil, false
	case bodyRaw:
		return body.([]byte), true
	}

	header := r.transport.Header()
	contentType := header.Get(headerContentType)

	if acceptsJSON(contentType) {
		if encoded, ok := r.encoder.Encode(jsonPayload(body, kind)); ok {
			if contentType == "" {
				header.Set(headerContentType, jsonContentType)
			}
			return encoded, true
		}
		r.logger.Debug().
			Str("body_type", typeName(body)).
			Msg("response body is not JSON-encodable, falling back to text")
	}

	if kind == bodyText {
		return []byte(textOf(body)), true
	}
	if text, ok := stringOf(body); ok {
		return []byte(text), true
	}

	return nil, false
}
