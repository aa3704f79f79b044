package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so adapters can use the full resty API
// while sharing one place where common defaults are applied.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with JSON headers set on every
// request. Retries are disabled: each call is exactly one attempt.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "go-ledger-client")

	return &HTTPClient{Client: client}
}

// WithBaseURL sets the base URL and per-request timeout and returns c.
func (c *HTTPClient) WithBaseURL(baseURL string, timeout time.Duration) *HTTPClient {
	c.SetBaseURL(baseURL)
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return c
}
