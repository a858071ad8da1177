package response

import "strings"

// emptyHeaderPlaceholder replaces empty header values so that the header
// stays present in the store. net/http writes it as an empty value.
const emptyHeaderPlaceholder = " "

// HeaderValue is the value of a response header: either a single string or
// an ordered list of strings when the header was added more than once.
type HeaderValue struct {
	values []string
}

// Single returns a single-valued [HeaderValue].
func Single(value string) HeaderValue {
	return HeaderValue{values: []string{value}}
}

// Multi returns a multi-valued [HeaderValue] preserving the order of values.
func Multi(values ...string) HeaderValue {
	return HeaderValue{values: append([]string(nil), values...)}
}

// IsMulti reports whether the header carries more than one value.
func (v HeaderValue) IsMulti() bool {
	return len(v.values) > 1
}

// First returns the first value, or an empty string for a zero HeaderValue.
func (v HeaderValue) First() string {
	if len(v.values) == 0 {
		return ""
	}
	return v.values[0]
}

// Values returns a copy of all values in order.
func (v HeaderValue) Values() []string {
	return append([]string(nil), v.values...)
}

// String joins the values the way they would be folded on the wire.
func (v HeaderValue) String() string {
	return strings.Join(v.values, ", ")
}

// headerValueOf converts the values stored in an [http.Header] entry.
func headerValueOf(values []string) HeaderValue {
	if len(values) == 1 {
		return Single(values[0])
	}
	return Multi(values...)
}

func normalizeHeaderValue(value string) string {
	if value == "" {
		return emptyHeaderPlaceholder
	}
	return value
}
