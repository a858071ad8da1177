package response

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	"golang.org/x/net/http/httpguts"
)

const (
	// MinStatus and MaxStatus bound every status code accepted by the PDK.
	MinStatus = 100
	MaxStatus = 599

	// DefaultMaxHeaders is the enumeration cap callers pass to
	// [Response.Headers] when they have no specific limit.
	DefaultMaxHeaders = 100

	// MaxHeadersLimit is the largest cap accepted by [Response.Headers].
	MaxHeadersLimit = 1000
)

// headerEntry is one validated header of a bulk update. An empty values
// slice removes the header.
type headerEntry struct {
	name   string
	values []string
}

func validateStatus(code int) error {
	if code < MinStatus || code > MaxStatus {
		return fmt.Errorf("%w: code must be an integer between %d and %d, got %d", ErrValidation, MinStatus, MaxStatus, code)
	}
	return nil
}

func validateHeaderName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: header name must be a non-empty string", ErrValidation)
	}
	if !httpguts.ValidHeaderFieldName(name) {
		return fmt.Errorf("%w: invalid header name %q", ErrValidation, name)
	}
	return nil
}

func validateHeaderValue(name, value string) error {
	if !httpguts.ValidHeaderFieldValue(value) {
		return fmt.Errorf("%w: invalid value for header %q", ErrValidation, name)
	}
	return nil
}

func validateHeader(name, value string) error {
	if err := validateHeaderName(name); err != nil {
		return err
	}
	return validateHeaderValue(name, value)
}

// headerValues accepts a string, a []string, or a []any holding only strings.
func headerValues(name string, value any) ([]string, error) {
	var values []string

	switch v := value.(type) {
	case string:
		values = []string{v}
	case []string:
		values = append(values, v...)
	case []any:
		values = make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: invalid value for header %q: list element %d must be a string, got %T", ErrValidation, name, i, item)
			}
			values = append(values, s)
		}
	default:
		return nil, fmt.Errorf("%w: invalid value for header %q: must be a string or a list of strings, got %T", ErrValidation, name, value)
	}

	for _, s := range values {
		if err := validateHeaderValue(name, s); err != nil {
			return nil, err
		}
	}

	return values, nil
}

// parseHeaders validates the whole map before anything is applied. Entries
// are sorted by name so that names differing only in case are applied in a
// deterministic order.
func parseHeaders(headers map[string]any) ([]headerEntry, error) {
	if len(headers) == 0 {
		return nil, nil
	}

	entries := make([]headerEntry, 0, len(headers))
	for name, value := range headers {
		if err := validateHeaderName(name); err != nil {
			return nil, err
		}
		values, err := headerValues(name, value)
		if err != nil {
			return nil, err
		}
		entries = append(entries, headerEntry{name: name, values: values})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].name < entries[j].name
	})

	return entries, nil
}

// bodyKind classifies the bodies accepted by the send pipeline.
type bodyKind int

const (
	bodyInvalid bodyKind = iota - 1
	bodyEmpty
	bodyText
	bodyRaw
	bodyStringable
	bodyStructured
)

func kindOf(body any) bodyKind {
	if body == nil {
		return bodyEmpty
	}

	switch body.(type) {
	case string:
		return bodyText
	case []byte:
		return bodyRaw
	case json.Marshaler:
		return bodyStructured
	case error:
		return bodyStringable
	}

	rv := reflect.ValueOf(body)
	if isStructuredKind(rv.Type()) {
		return bodyStructured
	}
	if _, ok := body.(Stringable); ok {
		return bodyStringable
	}
	if rv.Kind() == reflect.String {
		return bodyText
	}

	return bodyInvalid
}

func isStructuredKind(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return true
	default:
		return false
	}
}

func validateBody(body any) error {
	if kindOf(body) == bodyInvalid {
		return fmt.Errorf("%w: body must be nil, a string, raw bytes or a structured value, got %T", ErrValidation, body)
	}
	return nil
}

// textOf returns the text of a bodyText value, including named string types.
func textOf(body any) string {
	if s, ok := body.(string); ok {
		return s
	}
	return reflect.ValueOf(body).String()
}
