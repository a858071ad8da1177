// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import (
	"fmt"
	"net/http"
)

// HTTPTransport is a [response.Transport] writing to an [http.ResponseWriter].
//
// WriteHeader is forwarded to the underlying writer exactly once, either on
// the first body write or on Terminate. After that the transport reports the
// headers as sent and the status can no longer change.
type HTTPTransport struct {
	w http.ResponseWriter

	// status is the pending status code until wroteHeader is set, then the
	// transmitted one.
	status int

	// wroteHeader reports whether WriteHeader has been forwarded.
	wroteHeader bool

	// terminated reports whether Terminate has been called.
	terminated bool

	// size is the running total of body bytes written.
	size int
}

// NewHTTPTransport wraps w. The pending status starts as 200 OK.
func NewHTTPTransport(w http.ResponseWriter) *HTTPTransport {
	return &HTTPTransport{w: w, status: http.StatusOK}
}

// HeadersSent implements [response.Transport].
func (t *HTTPTransport) HeadersSent() bool {
	return t.wroteHeader || t.terminated
}

// Status implements [response.Transport].
func (t *HTTPTransport) Status() int {
	return t.status
}

// WriteStatus implements [response.Transport]. It is a no-op once the
// headers have been sent.
func (t *HTTPTransport) WriteStatus(code int) {
	if t.HeadersSent() {
		return
	}
	t.status = code
}

// Header implements [response.Transport].
func (t *HTTPTransport) Header() http.Header {
	return t.w.Header()
}

// WriteBody implements [response.Transport]. Bodies of responses whose
// status does not allow one (1xx, 204, 304) are discarded.
func (t *HTTPTransport) WriteBody(body []byte) error {
	if t.terminated {
		return ErrTerminated
	}
	t.writeHeader()

	if !bodyAllowedForStatus(t.status) || len(body) == 0 {
		return nil
	}

	n, err := t.w.Write(body)
	t.size += n
	if err != nil {
		return fmt.Errorf("error writing body: %w", err)
	}

	return nil
}

// Terminate implements [response.Transport]. When nothing has been written
// yet the status line is emitted with code.
func (t *HTTPTransport) Terminate(code int) error {
	if t.terminated {
		return ErrTerminated
	}
	if !t.wroteHeader {
		t.status = code
		t.writeHeader()
	}
	t.terminated = true

	if f, ok := t.w.(http.Flusher); ok {
		f.Flush()
	}

	return nil
}

// Terminated reports whether the response has been finalized.
func (t *HTTPTransport) Terminated() bool {
	return t.terminated
}

// Size returns the number of body bytes written so far.
func (t *HTTPTransport) Size() int {
	return t.size
}

func (t *HTTPTransport) writeHeader() {
	if t.wroteHeader {
		return
	}
	t.wroteHeader = true
	t.w.WriteHeader(t.status)
}

func bodyAllowedForStatus(status int) bool {
	switch {
	case status >= 100 && status <= 199:
		return false
	case status == http.StatusNoContent:
		return false
	case status == http.StatusNotModified:
		return false
	}
	return true
}
