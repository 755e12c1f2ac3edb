// Package http builds the outbound HTTP clients used to call the Nokair APIs.
package http

import (
	"net/http"
	"time"
)

const (
	DefaultTimeout             = 10 * time.Second
	DefaultMaxIdleConns        = 50
	DefaultMaxIdleConnsPerHost = 10
	DefaultIdleConnTimeout     = 90 * time.Second
	DefaultTLSHandshakeTimeout = 10 * time.Second
)

// ClientConfig configures NewClient. Zero values take the defaults above.
type ClientConfig struct {
	Timeout             time.Duration
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
	// DisableKeepAlives is set by one-shot CLI calls.
	DisableKeepAlives bool
}

// NewClient returns an http.Client with pooled transport settings.
func NewClient(cfg *ClientConfig) *http.Client {
	if cfg == nil {
		cfg = &ClientConfig{}
	}

	timeout := orDuration(cfg.Timeout, DefaultTimeout)
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        orInt(cfg.MaxIdleConns, DefaultMaxIdleConns),
		MaxIdleConnsPerHost: orInt(cfg.MaxIdleConnsPerHost, DefaultMaxIdleConnsPerHost),
		IdleConnTimeout:     orDuration(cfg.IdleConnTimeout, DefaultIdleConnTimeout),
		TLSHandshakeTimeout: DefaultTLSHandshakeTimeout,
		DisableKeepAlives:   cfg.DisableKeepAlives,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

func orDuration(v, def time.Duration) time.Duration {
	if v == 0 {
		return def
	}
	return v
}

func orInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
