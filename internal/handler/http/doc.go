// Package http implements the REST surface of the reference ledger server.
//
// It exposes route wiring, request handlers, and middleware. Authentication,
// request tracing, access logging and response compression are handled in
// this package before requests are delegated to the service layer. Error
// bodies are the plain-text messages from package app so the client can map
// them back to typed errors.
package http
