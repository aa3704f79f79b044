// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ServerApp holds token and ledger settings of the reference server.
type ServerApp struct {
	TokenSignKey   string
	TokenIssuer    string
	TokenDuration  time.Duration
	InitialBalance decimal.Decimal
}

// ServerStorage holds the database settings.
type ServerStorage struct {
	DB DB
}

// ServerConfig is everything the reference ledger server needs.
type ServerConfig struct {
	App     ServerApp
	Storage ServerStorage
	Server  Server
}

// GetServerConfig loads the merged config and returns the validated server
// view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	balance, err := decimal.NewFromString(cfg.App.InitialBalance)
	if err != nil {
		return nil, fmt.Errorf("%w: initial balance %q: %w", ErrInvalidAppConfigs, cfg.App.InitialBalance, err)
	}

	serverCfg := &ServerConfig{
		App: ServerApp{
			TokenSignKey:   cfg.App.TokenSignKey,
			TokenIssuer:    cfg.App.TokenIssuer,
			TokenDuration:  cfg.App.TokenDuration,
			InitialBalance: balance,
		},
		Storage: ServerStorage{DB: cfg.Storage.DB},
		Server:  cfg.Server,
	}

	return serverCfg, serverCfg.validate()
}
