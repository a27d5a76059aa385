package listener

import (
	"fmt"
	"log/slog"
	"net/http"

	"go.uber.org/fx"
)

// NewModule wires a named HTTP listener into the Fx graph.
// The name is the module name and the `name:"..."` tag under which the module reads
// its http.Handler and Config and publishes its *Server. With options, the Config is
// built from them; otherwise another module must supply it. A *slog.Logger in the
// graph is used for server logs when present.
// A serve failure after start asks Fx to shut the application down.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	nameTag := fmt.Sprintf(`name:"%s"`, name)

	moduleOpts := []fx.Option{
		fx.Provide(fx.Annotate(
			newLifecycleServer(name),
			fx.ParamTags("", "", nameTag, nameTag, `optional:"true"`),
			fx.ResultTags(nameTag),
		)),
		// The server has no consumers of its own, so construct it to register its hooks.
		fx.Invoke(fx.Annotate(func(*Server) {}, fx.ParamTags(nameTag))),
	}

	if len(opts) > 0 {
		var cfg Config

		for _, apply := range opts {
			apply(&cfg)
		}

		moduleOpts = append(moduleOpts, fx.Supply(fx.Annotate(cfg, fx.ResultTags(nameTag))))
	}

	return fx.Module(name, moduleOpts...)
}

type serverConstructor func(fx.Lifecycle, fx.Shutdowner, http.Handler, Config, *slog.Logger) (*Server, error)

func newLifecycleServer(name string) serverConstructor {
	return func(lc fx.Lifecycle, shutdowner fx.Shutdowner, handler http.Handler, cfg Config, logger *slog.Logger) (*Server, error) {
		srv, err := NewServer(name, handler, cfg, logger, func(error) {
			shutdownErr := shutdowner.Shutdown(fx.ExitCode(1))
			if shutdownErr != nil {
				srvLogger(logger).Error("failed to trigger shutdown",
					slog.String("listener", name), slog.Any("error", shutdownErr))
			}
		})
		if err != nil {
			return nil, err
		}

		lc.Append(fx.StartStopHook(srv.Start, srv.Stop))

		return srv, nil
	}
}

func srvLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}

	return slog.Default()
}
