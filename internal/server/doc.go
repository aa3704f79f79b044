// Package server runs the reference ledger server's HTTP transport.
//
// It owns the listener lifecycle: startup, SIGINT/SIGTERM handling and
// graceful shutdown that lets in-flight requests finish.
package server
