// Package transport adapts [net/http.ResponseWriter] to the
// [response.Transport] contract used by the response PDK.
//
// The transport keeps the status code pending until the first body write or
// until the response is terminated, so plugins can change status and headers
// right up to the moment the response is emitted.
package transport
