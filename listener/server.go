package listener

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
)

// Server runs one named HTTP listener. It binds in Start and serves in the background
// until Stop drains it.
type Server struct {
	name    string
	config  Config
	logger  *slog.Logger
	http    *http.Server
	onFatal func(error)

	mu    sync.Mutex
	bound net.Listener
}

// NewServer validates cfg after filling defaults and prepares the http.Server.
// net/http's own error log is routed to logger at Warn. A nil logger uses slog.Default().
// onFatal, if non-nil, receives the error when serving stops for any reason other than Stop.
func NewServer(name string, handler http.Handler, cfg Config, logger *slog.Logger, onFatal func(error)) (*Server, error) {
	switch {
	case name == "":
		return nil, ErrEmptyName
	case handler == nil:
		return nil, ErrNilHandler
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("listener %q: %w", name, err)
	}

	logger = srvLogger(logger).With(slog.String("listener", name))

	return &Server{
		name:   name,
		config: cfg,
		logger: logger,
		http: &http.Server{ //nolint:exhaustruct // only relevant fields needed
			Addr:              cfg.Address,
			Handler:           handler,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
		onFatal: onFatal,
	}, nil
}

// Start binds the configured address and serves in a background goroutine.
// Binding errors are returned, so a taken port fails application start.
func (s *Server) Start(ctx context.Context) error {
	listenCfg := net.ListenConfig{} //nolint:exhaustruct // zero-value defaults are fine

	bound, err := listenCfg.Listen(ctx, "tcp", s.config.Address)
	if err != nil {
		s.logger.Error("failed to listen", slog.String("address", s.config.Address), slog.Any("error", err))

		return fmt.Errorf("%w on %s: %w", ErrListenFailed, s.config.Address, err)
	}

	s.mu.Lock()
	s.bound = bound
	s.mu.Unlock()

	s.logger.Info("HTTP listener started", slog.String("address", bound.Addr().String()))

	go s.serve(bound)

	return nil
}

func (s *Server) serve(bound net.Listener) {
	err := s.http.Serve(bound)
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return
	}

	s.logger.Error("HTTP listener stopped unexpectedly", slog.Any("error", err))

	if s.onFatal != nil {
		s.onFatal(err)
	}
}

// Addr returns the bound address once started, or the configured address before that.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.bound != nil {
		return s.bound.Addr().String()
	}

	return s.config.Address
}

// Stop stops accepting connections and waits for in-flight lookups until ctx is done.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("stopping HTTP listener")

	err := s.http.Shutdown(ctx)
	if err != nil {
		s.logger.Error("HTTP listener shutdown failed", slog.Any("error", err))

		return fmt.Errorf("%w: %w", ErrShutdownFailed, err)
	}

	return nil
}
