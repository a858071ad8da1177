package transport

import "errors"

// ErrTerminated is returned by [HTTPTransport.WriteBody] and
// [HTTPTransport.Terminate] once the response has been finalized.
var ErrTerminated = errors.New("response is already terminated")
