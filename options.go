package modelconfig

import (
	"io"
	"os"
	"time"

	"github.com/0xalexb/hjarta-modelconfig/listener"

	"go.uber.org/fx"
)

// Options collects what NewApp puts into the Fx graph and how it logs.
type Options struct {
	Modules     []fx.Option
	LogLevel    string
	LogFormat   string
	LogOutput   io.Writer
	StopTimeout time.Duration
}

// Option configures NewApp.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithModelConfig provides *ModelConfig, falling back to developmentConfig
// when no PathSource in the graph reports a path.
func WithModelConfig(developmentConfig string) Option {
	return WithModules(NewModule(developmentConfig))
}

// WithHTTPListener adds a named HTTP listener. It serves the http.Handler provided under the same name.
func WithHTTPListener(name string, opts ...listener.Option) Option {
	return WithModules(listener.NewModule(name, opts...))
}

// WithLogLevel sets debug, info, warn or error. Anything else logs at info.
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat selects "json" (default) or "text" log output.
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithLogOutput redirects log output, which defaults to stderr.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogOutput = w
	}
}

// WithStopTimeout bounds the graceful stop performed by App.Run. Defaults to DefaultStopTimeout.
func WithStopTimeout(timeout time.Duration) Option {
	return func(opts *Options) {
		opts.StopTimeout = timeout
	}
}

func (o *Options) logOutput() io.Writer {
	if o.LogOutput != nil {
		return o.LogOutput
	}

	return os.Stderr
}

func (o *Options) stopTimeout() time.Duration {
	if o.StopTimeout > 0 {
		return o.StopTimeout
	}

	return DefaultStopTimeout
}
