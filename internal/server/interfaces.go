package server

// Server defines the lifecycle contract of the chirpy server.
//
// RunServer blocks until shutdown is requested by a termination signal and
// Shutdown releases the listener and drains in-flight requests.
type Server interface {
	RunServer()
	Shutdown()
}
