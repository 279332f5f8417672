package server

import "context"

// Server is the lifecycle of the stub content server.
type Server interface {
	// RunServer serves until a termination signal arrives.
	RunServer()

	// Run serves until ctx is done or a termination signal arrives, then
	// shuts down gracefully.
	Run(ctx context.Context)

	// Addr is the bound listen address.
	Addr() string

	// Shutdown gracefully stops the server.
	Shutdown()
}
