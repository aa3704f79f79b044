package config

import "errors"

// Validation errors returned by the client and server config views.
var (
	// ErrInvalidAdapterConfigs: missing ledger service address or timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs: unknown driver or empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs: missing sign key, bad token lifetime or an
	// initial balance that is not a non-negative decimal.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs: missing listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
