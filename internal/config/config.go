// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// StructuredConfig is the merged configuration shared by both binaries.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: variable name for scalar fields.
type StructuredConfig struct {
	// App holds token and ledger settings of the server.
	App App `envPrefix:"APP_"`

	// Storage holds the server database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and request timeout of the server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address of the ledger service as seen by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional JSON config file.
	// Env: CONFIG, flags: -c, -config.
	JSONFilePath string `env:"CONFIG"`
}

type App struct {
	// TokenSignKey signs and verifies JWTs. Required by the server.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim. Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// InitialBalance credited to every new account, as a decimal string.
	// Env: APP_INITIAL_BALANCE
	InitialBalance string `env:"INITIAL_BALANCE"`
}

type Storage struct {
	DB DB `envPrefix:"DB_"`
}

type DB struct {
	// Driver is "sqlite3" or "postgres". Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is a sqlite file path or a postgres URL.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

type Server struct {
	// HTTPAddress to listen on, host:port. Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds handling of one inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

type Adapter struct {
	// HTTPAddress of the ledger service, with or without scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds one outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// defaultConfig is merged last and only fills what every other source left
// empty. TokenSignKey has no default on purpose.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:    "go-ledger",
			TokenDuration:  time.Hour,
			InitialBalance: "1000.00",
		},
		Storage: Storage{
			DB: DB{Driver: DriverSQLite, DSN: "ledger.db"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
	}
}

// GetStructuredConfig loads every source for the current process and merges
// them. The result is not validated; use the client or server view.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
