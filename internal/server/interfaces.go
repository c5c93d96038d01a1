package server

import "context"

// Server defines the lifecycle contract of the stub API server.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives, then shuts
	// down gracefully.
	RunServer()

	// Run serves until ctx is cancelled or the listener fails.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
