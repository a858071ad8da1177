// Package server wires and runs the gateway's listeners.
//
// It starts the proxy server and the optional status server, waits for a
// stop signal or a listener failure and shuts every server down
// gracefully.
package server
