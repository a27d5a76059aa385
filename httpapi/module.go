package httpapi

import (
	"fmt"
	"log/slog"
	"net/http"

	modelconfig "github.com/0xalexb/hjarta-modelconfig"

	"go.uber.org/fx"
)

// NewModule provides the inspection handler under the DI name tag used by the listener of the same name.
// The container must supply *modelconfig.ModelConfig and *slog.Logger.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	return fx.Module("httpapi",
		fx.Provide(
			fx.Annotate(
				func(cfg *modelconfig.ModelConfig, logger *slog.Logger) (http.Handler, error) {
					return NewHandler(cfg, append([]Option{WithLogger(logger)}, opts...)...)
				},
				fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
			),
		),
	)
}
