package response

//go:generate mockgen -source=transport.go -destination=../mock/transport_mock.go -package=mock

import "net/http"

// Transport is the host side of a response: it owns the pending status and
// headers, the transmission state and the bytes written to the client.
//
// Implementations are not safe for concurrent use; a transport belongs to
// the goroutine serving its request.
type Transport interface {
	// HeadersSent reports whether the status line and headers have been
	// transmitted. Once true it never becomes false again.
	HeadersSent() bool

	// Status returns the pending (or transmitted) status code.
	Status() int

	// WriteStatus sets the pending status code.
	WriteStatus(code int)

	// Header returns the live header map of the pending response.
	Header() http.Header

	// WriteBody transmits status and headers if needed, then body bytes.
	WriteBody(body []byte) error

	// Terminate finalizes the response with code when nothing has been
	// transmitted yet. No further writes are accepted afterwards.
	Terminate(code int) error
}
