// Package server wires and runs the chirpy HTTP server.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown with a bounded drain period.
package server
