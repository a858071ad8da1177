package response

import (
	"fmt"
	"net/http"
	"sort"
)

// Headers returns a snapshot of at most max response headers, keyed by
// canonical header name. Headers are enumerated in name order, so the same
// subset is returned for the same header set.
//
// It fails with [ErrValidation] unless 1 <= max <= 1000. Pass
// [DefaultMaxHeaders] when no specific limit is needed.
func (r *Response) Headers(max int) (map[string]HeaderValue, error) {
	if max < 1 || max > MaxHeadersLimit {
		return nil, fmt.Errorf("%w: max must be an integer between 1 and %d, got %d", ErrValidation, MaxHeadersLimit, max)
	}

	header := r.transport.Header()
	names := make([]string, 0, len(header))
	for name, values := range header {
		if len(values) == 0 {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	if len(names) > max {
		names = names[:max]
	}

	snapshot := make(map[string]HeaderValue, len(names))
	for _, name := range names {
		snapshot[name] = headerValueOf(header[name])
	}

	return snapshot, nil
}

// Header returns the value of the named header, or its first value when the
// header is multi-valued. ok is false when the header is absent.
//
// It fails with [ErrValidation] when name is not a valid header name.
func (r *Response) Header(name string) (value string, ok bool, err error) {
	if err := validateHeaderName(name); err != nil {
		return "", false, err
	}

	values := r.transport.Header().Values(name)
	if len(values) == 0 {
		return "", false, nil
	}

	return values[0], true, nil
}

// HeaderValues returns every value of the named header. Unlike
// [Response.Headers] it is not subject to an enumeration cap.
//
// It fails with [ErrValidation] when name is not a valid header name.
func (r *Response) HeaderValues(name string) (value HeaderValue, ok bool, err error) {
	if err := validateHeaderName(name); err != nil {
		return HeaderValue{}, false, err
	}

	values := r.transport.Header().Values(name)
	if len(values) == 0 {
		return HeaderValue{}, false, nil
	}

	return headerValueOf(values), true, nil
}

// SetHeader overwrites the named header. An empty value is stored as a
// single space so the header stays present on the wire.
//
// It fails with [ErrValidation] on an invalid name or value and with
// [ErrState] if the response has already been sent.
func (r *Response) SetHeader(name, value string) error {
	if err := validateHeader(name, value); err != nil {
		return err
	}
	if err := r.checkNotSent(); err != nil {
		return err
	}

	r.transport.Header().Set(name, normalizeHeaderValue(value))
	return nil
}

// AddHeader appends value to the named header, turning a single value into
// an ordered list. Validation and state rules are those of [Response.SetHeader].
func (r *Response) AddHeader(name, value string) error {
	if err := validateHeader(name, value); err != nil {
		return err
	}
	if err := r.checkNotSent(); err != nil {
		return err
	}

	r.transport.Header().Add(name, normalizeHeaderValue(value))
	return nil
}

// ClearHeader removes every value of the named header.
//
// It fails with [ErrValidation] on an invalid name and with [ErrState] if
// the response has already been sent.
func (r *Response) ClearHeader(name string) error {
	if err := validateHeaderName(name); err != nil {
		return err
	}
	if err := r.checkNotSent(); err != nil {
		return err
	}

	r.transport.Header().Del(name)
	return nil
}

// SetHeaders overwrites every header in headers. Values must be a string, a
// []string, or a []any holding only strings; an empty list removes the
// header.
//
// The whole map is validated before any header is touched: on
// [ErrValidation] or [ErrState] the response headers are left unchanged.
func (r *Response) SetHeaders(headers map[string]any) error {
	entries, err := parseHeaders(headers)
	if err != nil {
		return err
	}
	if err := r.checkNotSent(); err != nil {
		return err
	}

	applyHeaders(r.transport.Header(), entries)
	return nil
}

func applyHeaders(header http.Header, entries []headerEntry) {
	for _, entry := range entries {
		header.Del(entry.name)
		for _, value := range entry.values {
			header.Add(entry.name, normalizeHeaderValue(value))
		}
	}
}
