package listener

import "time"

// Option defines a function type for configuring an HTTP listener.
type Option func(*Config)

// WithAddress sets the address for the HTTP listener.
func WithAddress(addr string) Option {
	return func(cfg *Config) {
		cfg.Address = addr
	}
}

// WithReadHeaderTimeout sets how long the listener waits for request headers.
func WithReadHeaderTimeout(timeout time.Duration) Option {
	return func(cfg *Config) {
		cfg.ReadHeaderTimeout = timeout
	}
}

// WithWriteTimeout caps the time spent writing one response.
func WithWriteTimeout(timeout time.Duration) Option {
	return func(cfg *Config) {
		cfg.WriteTimeout = timeout
	}
}

// WithIdleTimeout caps how long a keep-alive connection may sit unused.
func WithIdleTimeout(timeout time.Duration) Option {
	return func(cfg *Config) {
		cfg.IdleTimeout = timeout
	}
}
