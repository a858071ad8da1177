// Package response implements the response PDK used by gateway plugins to
// build and emit the HTTP response of a request.
//
// A [Response] is bound to one request: it reads and mutates the pending
// status and headers through a [Transport], negotiates the body encoding
// from the current Content-Type, and emits the response either immediately
// or, when the runloop has enabled delay mode for the current phase, records
// it on the [models.RequestContext] and suspends the calling plugin until the
// runloop finalizer calls [Response.Flush].
//
// Every mutating operation refuses to proceed once the transport reports the
// response as sent, and bulk operations validate all input before touching
// any state.
//
// Empty header values are stored as a single space so the header stays
// present in the store. net/http trims that space when writing the header,
// so on the wire the header is sent with an empty value.
package response
