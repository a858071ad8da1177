package response

import (
	"maps"

	"github.com/MKhiriev/go-gatekeeper/models"
)

// Exit ends the request with code, an optional body and optional extra
// headers.
//
// All arguments are validated before anything is mutated: code must be in
// [100, 599], body must be nil, a string, raw bytes or a structured value,
// and headers values must be strings or lists of strings. It fails with
// [ErrState] if the response has already been sent.
//
// When the request context is in delay mode and no deferred response is
// recorded yet, the response is recorded and Exit returns an ActionSuspend
// result whose Resume flushes it; nothing is transmitted. Otherwise the
// response is sent immediately and an ActionTerminate result is returned.
// A deferred response that is already recorded is never overwritten.
func (r *Response) Exit(code int, body any, headers map[string]any) (Result, error) {
	if err := validateStatus(code); err != nil {
		return Result{}, err
	}
	if err := validateBody(body); err != nil {
		return Result{}, err
	}
	entries, err := parseHeaders(headers)
	if err != nil {
		return Result{}, err
	}
	if err := r.checkNotSent(); err != nil {
		return Result{}, err
	}

	if r.rctx.DelayMode {
		if r.rctx.DelayedResponse == nil {
			r.rctx.DelayedResponse = &models.DelayedResponse{
				Status:  code,
				Body:    body,
				Headers: maps.Clone(headers),
			}
			r.recorder.ResponseDelayed()
			r.logger.Debug().
				Int("status", code).
				Str("phase", r.rctx.Phase).
				Msg("exit deferred until the phase completes")

			return Result{Action: ActionSuspend, Resume: r.Flush}, nil
		}

		r.logger.Warn().
			Int("status", code).
			Int("delayed_status", r.rctx.DelayedResponse.Status).
			Str("phase", r.rctx.Phase).
			Msg("delayed response already recorded, sending exit immediately")
	}

	return r.send(code, body, entries)
}

// Flush transmits the deferred response recorded by [Response.Exit] and
// clears it from the request context. It is the continuation the runloop
// finalizer resumes, and it sends at most once.
func (r *Response) Flush() (Result, error) {
	if err := r.checkNotSent(); err != nil {
		return Result{}, err
	}

	delayed := r.rctx.DelayedResponse
	if delayed == nil {
		return Result{}, ErrNoDelayedResponse
	}
	r.rctx.DelayedResponse = nil

	entries, err := parseHeaders(delayed.Headers)
	if err != nil {
		return Result{}, err
	}

	return r.send(delayed.Status, delayed.Body, entries)
}
