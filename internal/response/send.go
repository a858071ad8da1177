// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package response

import (
	"fmt"
	"net/http"
)

// defaultBodies holds the canonical texts substituted for special status
// codes. 204 and 405 always use them; 500 uses its text after the supplied
// body has been logged.
var defaultBodies = map[int]string{
	http.StatusNoContent:           "No Content",
	http.StatusMethodNotAllowed:    "Method Not Allowed",
	http.StatusInternalServerError: "Internal Server Error",
}

// send is the terminal pipeline: it sets status and headers, substitutes
// special bodies, negotiates the encoding, writes the body and terminates
// the transport. It returns an ActionTerminate result even when writing the
// body fails, since the response can no longer be changed.
func (r *Response) send(code int, body any, headers []headerEntry) (Result, error) {
	if err := r.checkNotSent(); err != nil {
		return Result{}, err
	}

	r.transport.WriteStatus(code)

	header := r.transport.Header()
	if r.serverHeader != "" {
		header.Set(headerServer, r.serverHeader)
	}
	applyHeaders(header, headers)

	body, substituted := r.substituteBody(code, body)
	if substituted {
		// entity headers of the replaced body do not describe the default text
		header.Del(headerContentEncoding)
		header.Del(headerContentLength)
	}

	var writeErr error
	if data, ok := r.negotiate(body); ok {
		if err := r.transport.WriteBody(data); err != nil {
			r.logger.Err(err).Int("status", code).Msg("error writing response body")
			writeErr = fmt.Errorf("error writing response body: %w", err)
		}
	}

	if err := r.transport.Terminate(code); err != nil {
		r.logger.Err(err).Int("status", code).Msg("error terminating response")
		if writeErr == nil {
			writeErr = fmt.Errorf("error terminating response: %w", err)
		}
	}

	r.recorder.ResponseSent(code)

	return Result{Action: ActionTerminate}, writeErr
}

// substituteBody applies the special-code body rules and reports whether
// the body was replaced. Detail supplied with a 500 is logged for operators
// and never reaches the client.
func (r *Response) substituteBody(code int, body any) (any, bool) {
	switch code {
	case http.StatusNoContent, http.StatusMethodNotAllowed:
		return defaultBodies[code], true
	case http.StatusInternalServerError:
		if body != nil {
			r.logger.Error().
				Int("status", code).
				Str("body", r.describeBody(body)).
				Msg("internal server error response body scrubbed")
			r.recorder.ErrorBodyScrubbed()
		}
		return defaultBodies[code], true
	}

	if body == nil {
		if text, ok := defaultBodies[code]; ok {
			return text, true
		}
	}

	return body, false
}

// describeBody renders body for the diagnostic log.
func (r *Response) describeBody(body any) string {
	switch kindOf(body) {
	case bodyText:
		return textOf(body)
	case bodyRaw:
		return string(body.([]byte))
	}

	if text, ok := stringOf(body); ok {
		return text
	}
	if encoded, ok := r.encoder.Encode(body); ok {
		return string(encoded)
	}

	return fmt.Sprintf("%+v", body)
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
