// Package listener runs named HTTP listeners inside the Fx application, such as the model config inspection endpoint.
package listener

import (
	"errors"
	"time"
)

// DefaultAddress keeps the inspection port on loopback unless an address is given.
const DefaultAddress = "127.0.0.1:8080"

// Listener timeouts applied when the Config leaves them at zero.
const (
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultWriteTimeout      = 30 * time.Second
	DefaultIdleTimeout       = 2 * time.Minute
)

var (
	// ErrEmptyAddress is returned when the address is empty.
	ErrEmptyAddress = errors.New("address must not be empty")
	// ErrInvalidTimeout is returned when a configured timeout is negative.
	ErrInvalidTimeout = errors.New("timeout must not be negative")
	// ErrListenFailed is returned when the server cannot bind its address.
	ErrListenFailed = errors.New("failed to listen")
	// ErrShutdownFailed is returned when the server does not drain before the stop deadline.
	ErrShutdownFailed = errors.New("shutdown failed")
	// ErrEmptyName is returned when the listener name is empty.
	ErrEmptyName = errors.New("listener name must not be empty")
	// ErrNilHandler is returned when a nil http.Handler is provided.
	ErrNilHandler = errors.New("handler must not be nil")
)

// Config holds the configuration for an HTTP listener.
type Config struct {
	Address           string
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	if c.Address == "" {
		c.Address = DefaultAddress
	}

	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = DefaultReadHeaderTimeout
	}

	if c.WriteTimeout == 0 {
		c.WriteTimeout = DefaultWriteTimeout
	}

	if c.IdleTimeout == 0 {
		c.IdleTimeout = DefaultIdleTimeout
	}
}

// Validate validates the Config.
func (c *Config) Validate() error {
	if c.Address == "" {
		return ErrEmptyAddress
	}

	for _, timeout := range []time.Duration{c.ReadHeaderTimeout, c.WriteTimeout, c.IdleTimeout} {
		if timeout < 0 {
			return ErrInvalidTimeout
		}
	}

	return nil
}
