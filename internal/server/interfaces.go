package server

import "context"

// Server defines the lifecycle contract of the ledger server.
type Server interface {
	// RunServer starts serving requests and blocks until ctx is cancelled or
	// the process receives SIGINT/SIGTERM, then shuts down gracefully.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting connections and waits for in-flight requests
	// until ctx expires.
	Shutdown(ctx context.Context) error
}
