// Package config loads, merges and validates configuration for the ledger
// client and the reference ledger server.
//
// Sources, highest priority first (a source only fills fields the previous
// ones left zero):
//  1. Environment variables (an optional .env file is loaded first)
//  2. Command-line flags
//  3. JSON config file (-c / -config / CONFIG)
//  4. Built-in defaults
//
// [GetClientConfig] and [GetServerConfig] return the validated views each
// binary needs.
package config
