package server

// Server defines the lifecycle contract of the gateway listeners.
//
// RunServer blocks until the server stops, either after SIGTERM, SIGINT or
// SIGQUIT or because a listener failed. Shutdown stops the server gracefully.
type Server interface {
	RunServer() error
	Shutdown()
}
