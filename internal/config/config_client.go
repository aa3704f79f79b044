package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds the client's view of the ledger service endpoint.
type ClientAdapter struct {
	// HTTPAddress of the ledger service.
	HTTPAddress string
	// RequestTimeout bounds one outbound request.
	RequestTimeout time.Duration
}

// ClientConfig is everything the interactive client needs.
type ClientConfig struct {
	Adapter ClientAdapter
}

// GetClientConfig loads the merged config and returns the validated client
// view.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}

	return clientCfg, clientCfg.validate()
}
